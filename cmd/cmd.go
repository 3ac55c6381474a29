// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is the shared --config flag carried by every command that reads
// the configuration file.
func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// syncCommand runs the mirror pipeline over the configured playlists.
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Fetch, download and tag all configured playlists",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "root",
				Usage: "Override the root directory for playlist folders",
			},
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Sync only the named playlist",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Skip recording this run in the history database",
			},
		},
		Action: r.Sync,
	}
}

// playlistsCommand lists the configured playlists without doing any work.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"ls"},
		Usage:   "List configured playlists",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Playlists,
	}
}

// historyCommand shows recent sync runs from the history database.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent sync runs",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to show",
				Value: 20,
			},
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Show runs for the named playlist only",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
	}
}

// configCommand handles configuration and database setup.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination for the config file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:  "migrate",
				Usage: "Initialize the history database and run migrations",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.Migrate,
			},
			{
				Name:  "rollback",
				Usage: "Roll back the most recent database migration",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.Rollback,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive syncing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist syncing",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "root",
				Usage: "Override the root directory for playlist folders",
			},
		},
		Action: r.TUI,
	}
}
