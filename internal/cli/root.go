package cli

import (
	"github.com/spf13/cobra"
	"grievance-portal-go/pkg/logger"
)

// NewRootCommand creates the grievance-portal command tree. Running it
// without a subcommand starts the HTTP server.
func NewRootCommand(log logger.Logger) *cobra.Command {
	serve := NewServeCommand(log)

	cmd := &cobra.Command{
		Use:   "grievance-portal",
		Short: "Anonymous grievance portal",
		Long: `Owners create share links for the people in their life. Anyone holding a
link can leave an anonymous grievance, which the owner later resolves or
deletes from the dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand(log))
	cmd.AddCommand(NewUserCommand(log))
	cmd.AddCommand(NewLoginCommand(log))
	cmd.AddCommand(NewDashboardCommand(log))

	return cmd
}
