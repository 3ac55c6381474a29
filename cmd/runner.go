package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/init-js/playlist-dl/internal/playlist"
	"github.com/init-js/playlist-dl/internal/repositories"
	"github.com/init-js/playlist-dl/internal/shared"
	"github.com/init-js/playlist-dl/internal/tasks"
	"github.com/init-js/playlist-dl/internal/tools"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config // injected config for tests; nil means load from --config
	logger *log.Logger
	output io.Writer
	tools  tools.Runner
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
	Tools  tools.Runner
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Tools == nil {
		opts.Tools = &tools.ExecRunner{}
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		tools:  opts.Tools,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		syncCommand, playlistsCommand, historyCommand, configCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger, e.g. to redirect logs to a file
// while the TUI owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// loadConfig resolves the effective configuration: an injected config wins,
// otherwise the --config path is loaded.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	if r.config != nil {
		return r.config, nil
	}
	return shared.LoadConfig(cmd.String("config"))
}

// playlists converts the configured playlists into validated domain playlists.
//
// Every playlist is validated before any work starts so a bad entry aborts
// the whole run up front. When only is non-empty the result is narrowed to
// the named playlist.
func (r *Runner) playlists(config *shared.Config, rootOverride, only string) ([]playlist.Playlist, error) {
	resolved := config.Resolve(rootOverride)
	if len(resolved) == 0 {
		return nil, fmt.Errorf("%w: no playlists configured", shared.ErrInvalidConfig)
	}

	playlists := make([]playlist.Playlist, 0, len(resolved))
	for _, pc := range resolved {
		pl := playlist.Playlist{Name: pc.Name, Genre: pc.Genre, URL: pc.URL, Root: pc.Root}
		if err := pl.Validate(); err != nil {
			return nil, fmt.Errorf("playlist %q: %w", pc.Name, err)
		}
		playlists = append(playlists, pl)
	}

	if only == "" {
		return playlists, nil
	}
	for _, pl := range playlists {
		if pl.Name == only {
			return []playlist.Playlist{pl}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, only)
}

// openHistory opens the history database and ensures the schema is current.
// The caller owns closing the returned handle.
func (r *Runner) openHistory(config *shared.Config) (*sql.DB, *repositories.RunRepository, error) {
	db, err := shared.NewDatabase(config.Main.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return db, repositories.NewRunRepository(db), nil
}

// buildEngine wires the sync engine from the configured external tools.
func (r *Runner) buildEngine(config *shared.Config, history tasks.Recorder) *tasks.Engine {
	return tasks.NewEngine(tasks.EngineOpts{
		Fetcher: tools.NewFetcher(r.tools, config.Main.Downloader),
		Tagger:  tools.NewTagger(r.tools, config.Main.Tagger),
		History: history,
		Logger:  r.logger,
	})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
