package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"grievance-portal-go/internal/app"
	"grievance-portal-go/pkg/logger"
)

func NewMigrateCommand(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Apply pending database migrations and exit",
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

			applied, err := storage.Migrate(log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}
}
