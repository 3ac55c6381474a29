package main

import (
	"context"
	"fmt"

	"github.com/init-js/playlist-dl/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Wrote example configuration to %s\n", path)
	r.writePlain("Edit it to add your playlists, then run 'playlist-dl sync'\n")
	return nil
}

// Migrate initializes the history database and runs migrations.
func (r *Runner) Migrate(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("initializing database", "path", config.Main.Database)

	db, err := shared.NewDatabase(config.Main.Database)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", config.Main.Database)
	return nil
}

// Rollback rolls back the most recent database migration.
func (r *Runner) Rollback(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := shared.NewDatabase(config.Main.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	r.logger.Info("rolling back last migration", "path", config.Main.Database)
	if err := shared.RollbackMigration(db); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}
