package main

import (
	"github.com/goliatone/stockroom/config"
	"github.com/goliatone/stockroom/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			db, err := store.Connect(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.Migrate(cmd.Context(), db, cfg.Database.Driver); err != nil {
				return err
			}

			logrus.Info("migrations applied")
			return nil
		},
	}
}
