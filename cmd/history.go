package main

import (
	"context"
	"time"

	"github.com/init-js/playlist-dl/internal/models"
	"github.com/urfave/cli/v3"
)

// History lists recent sync runs from the history database, most recent first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, repo, err := r.openHistory(config)
	if err != nil {
		return err
	}
	defer db.Close()

	criteria := map[string]any{"limit": int(cmd.Int("limit"))}
	if name := cmd.String("playlist"); name != "" {
		criteria["playlist"] = name
	}

	runs, err := repo.List(criteria)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(runs, true)
	}

	if len(runs) == 0 {
		r.writePlain("No sync runs recorded.\n")
		return nil
	}

	for _, run := range runs {
		marker := "✓"
		if run.Status != models.RunOK {
			marker = "✗"
		}
		r.writePlain("%s %s  %s  %s\n", marker, run.StartedAt.Format(time.DateTime), run.Playlist, run.Status)
		r.writePlain("  %d entries, %d/%d files tagged, %d skipped\n",
			run.Entries, run.FilesTagged, run.FilesScanned, run.FilesSkipped)
		if run.Error != "" {
			r.writePlain("  error: %s\n", run.Error)
		}
	}

	return nil
}
