package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/init-js/playlist-dl/internal/shared"
	"github.com/init-js/playlist-dl/internal/tasks"
	"github.com/init-js/playlist-dl/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for playlist syncing.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	playlists, err := r.playlists(config, cmd.String("root"), "")
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/playlist-dl-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	var history tasks.Recorder
	if db, repo, err := r.openHistory(config); err != nil {
		r.logger.Warn("history database unavailable, continuing without it", "err", err)
	} else {
		defer db.Close()
		history = repo
	}

	engine := r.buildEngine(config, history)

	model := ui.NewModel(ctx, playlists, engine)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
