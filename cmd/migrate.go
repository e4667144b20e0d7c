package cmd

import (
	"os"

	"RPGLobby/config"

	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := config.NewLogger(cfg.LogFormat, cfg.LogLevel, os.Stdout)

			db, err := config.ConnectGORM(cfg, log)
			if err != nil {
				return err
			}
			defer config.CloseGORM(db)

			if err := config.MigrateDatabase(db); err != nil {
				return err
			}
			log.Info("database migrated", "driver", cfg.DBDriver)
			return nil
		},
	}
}
