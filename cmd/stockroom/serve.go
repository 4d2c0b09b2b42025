package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/config"
	"github.com/goliatone/stockroom/handler"
	"github.com/goliatone/stockroom/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			logrus.Debugf("configuration: %s", print.MaybePrettyJSON(cfg))

			db, err := store.Connect(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.Migrate(cmd.Context(), db, cfg.Database.Driver); err != nil {
				return err
			}

			staff := store.NewStaffRepository(db)

			provider := auth.NewStaffProvider(staff).
				WithLogger(newLogger("auth"))

			tokens := auth.NewTokenService(
				[]byte(cfg.Auth.SigningKey),
				time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
				cfg.Auth.Issuer,
				newLogger("tokens"),
			)

			auther := auth.NewAuthenticator(provider, tokens).
				WithLogger(newLogger("auth"))

			app := fiber.New(fiber.Config{
				AppName: "stockroom",
			})

			handler.App{
				DB:       db,
				Auther:   auther,
				Staff:    staff,
				HashCost: cfg.Auth.BcryptCost,
				Logger:   newLogger("http"),
			}.RegisterRoutes(app)

			logrus.Infof("listening on %s", cfg.Server.Address)

			return app.Listen(cfg.Server.Address)
		},
	}
}
