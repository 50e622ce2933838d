package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"grievance-portal-go/internal/app"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/pkg/logger"
)

type userCreateOptions struct {
	Username string
	Name     string
	Password string
}

// NewUserCommand groups owner account administration.
func NewUserCommand(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage owner accounts",
	}
	cmd.AddCommand(newUserCreateCommand(log))
	return cmd
}

func newUserCreateCommand(log logger.Logger) *cobra.Command {
	opts := &userCreateOptions{}

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Create an owner account in the configured storage",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(log)
			if err != nil {
				return err
			}

			storage, err := app.OpenStorage(cfg, log)
			if err != nil {
				return err
			}
			defer storage.Close()

			if _, err := storage.Migrate(log); err != nil {
				return err
			}

			users := userdomain.NewService(storage.Users)
			user, err := users.Register(cmd.Context(), userdomain.RegisterInput{
				Username: opts.Username,
				Name:     opts.Name,
				Password: opts.Password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
