package main

import (
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/config"
	"github.com/goliatone/stockroom/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func createAdminCommand() *cobra.Command {
	var (
		username  string
		email     string
		password  string
		firstname string
		lastname  string
		roleID    int64
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Register a staff principal from the command line",
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

			hasher := auth.BcryptHasher{Cost: cfg.Auth.BcryptCost}
			hash, err := hasher.HashPassword(password)
			if err != nil {
				return err
			}

			staff := store.NewStaffRepository(db)
			record, err := staff.Register(cmd.Context(), &store.Staff{
				FirstName:    firstname,
				LastName:     lastname,
				Username:     username,
				Email:        email,
				PasswordHash: hash,
				RoleID:       roleID,
			})
			if err != nil {
				return err
			}

			logrus.Infof("staff %q created with id %d", record.Username, record.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login username")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "plain text password, hashed before storage")
	cmd.Flags().StringVar(&firstname, "firstname", "", "first name")
	cmd.Flags().StringVar(&lastname, "lastname", "", "last name")
	cmd.Flags().Int64Var(&roleID, "role-id", 1, "role id, defaults to the seeded admin role")

	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("firstname")
	cmd.MarkFlagRequired("lastname")

	return cmd
}
