package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/winterarc/tracker/internal/config"
	"github.com/winterarc/tracker/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(database *sqlx.DB, driver string) error {
				return db.RunMigrations(database.DB, driver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(database *sqlx.DB, driver string) error {
				return db.MigrateDown(database.DB, driver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(database *sqlx.DB, driver string) error {
				version, err := db.Version(database.DB, driver)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			})
		},
	})

	return cmd
}

// withDB opens the configured database without migrating it.
func withDB(fn func(*sqlx.DB, string) error) error {
	cfg := config.Load()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer db.Close(database)

	return fn(database, cfg.DBDriver)
}
