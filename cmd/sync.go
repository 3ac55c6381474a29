package main

import (
	"context"

	"github.com/init-js/playlist-dl/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Sync runs the mirror pipeline for all configured playlists, or a single one
// when --playlist is given.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	playlists, err := r.playlists(config, cmd.String("root"), cmd.String("playlist"))
	if err != nil {
		return err
	}

	var history tasks.Recorder
	if !cmd.Bool("no-history") {
		db, repo, err := r.openHistory(config)
		if err != nil {
			// History is bookkeeping; a broken database must not block the mirror.
			r.logger.Warn("history database unavailable, continuing without it", "err", err)
		} else {
			defer db.Close()
			history = repo
		}
	}

	engine := r.buildEngine(config, history)

	r.logger.Info("starting sync", "playlists", len(playlists))
	r.writePlain("Syncing %d playlist(s)...\n\n", len(playlists))

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.StartPlaylist:
				r.writePlain("▶ %s\n", update.Message)
			case tasks.FetchListing:
				r.writePlain("📄 %s\n", update.Message)
			case tasks.FetchMedia:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.Reconcile:
				r.writePlain("   %s\n", update.Message)
			case tasks.PlaylistDone:
				r.writePlain("%s\n\n", update.Message)
			}
		}
	}()

	result, err := engine.SyncAll(ctx, playlists, progressCh)
	close(progressCh)
	<-done

	r.writePlain("\n")
	r.writePlainHeader("Sync Summary")
	for _, pr := range result.Playlists {
		if pr.Err != nil {
			r.writePlain("✗ %s: %v\n", pr.Playlist.Name, pr.Err)
			continue
		}
		r.writePlain("✓ %s: %d entries, %d/%d files tagged, %d skipped\n",
			pr.Playlist.Name, pr.Entries, pr.FilesTagged, pr.FilesScanned, pr.FilesSkipped)
	}

	return err
}
