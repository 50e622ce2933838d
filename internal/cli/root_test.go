package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"grievance-portal-go/pkg/logger"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(logger.Nop())
	require.NotNil(t, cmd)
	assert.Equal(t, "grievance-portal", cmd.Use)
	assert.NotNil(t, cmd.RunE, "root should fall back to serve")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(logger.Nop())
	commands := [][]string{
		{"serve"},
		{"migrate"},
		{"user", "create"},
		{"login"},
		{"dashboard", "list"},
		{"dashboard", "add"},
		{"dashboard", "remove"},
		{"dashboard", "resolve"},
		{"dashboard", "link"},
	}

	for _, path := range commands {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestUserCreateFlags(t *testing.T) {
	cmd := NewRootCommand(logger.Nop())
	createCmd, _, err := cmd.Find([]string{"user", "create"})
	require.NoError(t, err)

	for _, name := range []string{"username", "name", "password"} {
		require.NotNil(t, createCmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestDashboardFlags(t *testing.T) {
	t.Setenv("GRIEVANCE_SERVER", "")
	cmd := NewRootCommand(logger.Nop())
	dashCmd, _, err := cmd.Find([]string{"dashboard"})
	require.NoError(t, err)

	server := dashCmd.PersistentFlags().Lookup("server")
	require.NotNil(t, server)
	assert.Equal(t, defaultServer, server.DefValue)

	yes := dashCmd.PersistentFlags().Lookup("yes")
	require.NotNil(t, yes)
	assert.Equal(t, "y", yes.Shorthand)
	assert.Equal(t, "false", yes.DefValue)

	require.NotNil(t, dashCmd.PersistentFlags().Lookup("token"))
}

func TestDashboardRequiresToken(t *testing.T) {
	t.Setenv("GRIEVANCE_TOKEN", "")
	cmd := NewRootCommand(logger.Nop())
	cmd.SetArgs([]string{"dashboard", "list"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is required")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	ok, err := confirm(strings.NewReader("yes\n"), &out, "Delete?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Delete? [y/N]")

	ok, err = confirm(strings.NewReader("\n"), &out, "Delete?", false)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = confirm(strings.NewReader(""), &out, "Delete?", true)
	require.NoError(t, err)
	assert.True(t, ok)
}
