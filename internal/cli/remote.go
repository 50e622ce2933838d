package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// remoteOptions are shared by commands that talk to a running server.
type remoteOptions struct {
	Server  string
	Token   string
	BaseURL string
}

func (o *remoteOptions) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.Server, "server", envOr("GRIEVANCE_SERVER", defaultServer), "portal server URL")
	cmd.PersistentFlags().StringVar(&o.Token, "token", os.Getenv("GRIEVANCE_TOKEN"), "bearer token printed by the login command")
	cmd.PersistentFlags().StringVar(&o.BaseURL, "base-url", os.Getenv("BASE_URL"), "public URL used in share links (defaults to --server)")
}

func (o *remoteOptions) shareBaseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}
	return o.Server
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// readLine reads a single trimmed line; EOF with no input yields "".
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks question on out and accepts y/yes from in. assumeYes skips the prompt.
func confirm(in io.Reader, out io.Writer, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := readLine(in)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
