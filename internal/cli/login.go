package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"grievance-portal-go/internal/dashboard"
	"grievance-portal-go/pkg/logger"
)

type loginOptions struct {
	remoteOptions
	Username string
	Password string
}

// NewLoginCommand exchanges credentials for a bearer token and prints it.
func NewLoginCommand(log logger.Logger) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:          "login",
		Short:        "Log in to a running portal and print a bearer token",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password := opts.Password
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "password: ")
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = line
			}
			if password == "" {
				return errors.New("password is required")
			}

			client := dashboard.NewHTTPClient(opts.Server, "", nil)
			token, err := client.Login(cmd.Context(), opts.Username, password)
			if err != nil {
				log.Debug("cli.login: request failed", "err", err, "server", opts.Server)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "login name (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password; read from stdin when empty")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
