package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Playlists prints the configured playlists without any network or file work.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	playlists, err := r.playlists(config, "", "")
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	for _, pl := range playlists {
		r.writePlain("[%s]\n", pl.Name)
		r.writePlain("genre = %s\n", pl.Genre)
		r.writePlain("url = %s\n", pl.URL)
		r.writePlain("root = %s\n\n", pl.Root)
	}

	return nil
}
