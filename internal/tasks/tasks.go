package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/init-js/playlist-dl/internal/meta"
	"github.com/init-js/playlist-dl/internal/models"
	"github.com/init-js/playlist-dl/internal/playlist"
	"github.com/init-js/playlist-dl/internal/shared"
)

// Fetcher invokes the external downloader.
// This abstraction allows the pipeline to be tested without spawning processes.
type Fetcher interface {
	// FetchListing returns the raw line-delimited JSON listing for url.
	FetchListing(ctx context.Context, dir, url string) ([]byte, error)

	// FetchMedia downloads new entries of url into dir.
	FetchMedia(ctx context.Context, dir, url string) error
}

// TagEditor reads and writes a media file's metadata atoms.
type TagEditor interface {
	ReadAtoms(ctx context.Context, path string) (meta.Atoms, error)
	Apply(ctx context.Context, path string, changes []meta.Change) error
}

// Recorder persists sync run history. Satisfied by repositories.RunRepository.
type Recorder interface {
	Create(run *models.SyncRun) error
	Finish(run *models.SyncRun) error
}

// PlaylistResult summarizes one playlist's sync.
type PlaylistResult struct {
	Playlist     playlist.Playlist
	ListingFile  string // path of the snapshot written this run
	Entries      int    // distinct entries in the fetched listing
	FilesScanned int
	FilesTagged  int
	FilesSkipped int
	Err          error
}

// SyncResult aggregates a whole run over the configured playlists.
type SyncResult struct {
	Playlists []PlaylistResult
	Failed    int
}

// Engine sequences the sync stages for each playlist.
type Engine struct {
	fetcher Fetcher
	tagger  TagEditor
	history Recorder // optional; nil disables history recording
	logger  *log.Logger
}

// EngineOpts contains the collaborators for creating an Engine.
type EngineOpts struct {
	Fetcher Fetcher
	Tagger  TagEditor
	History Recorder
	Logger  *log.Logger
}

// NewEngine creates a new Engine with the provided collaborators.
func NewEngine(opts EngineOpts) *Engine {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &Engine{
		fetcher: opts.Fetcher,
		tagger:  opts.Tagger,
		history: opts.History,
		logger:  opts.Logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// SyncAll processes the playlists in the given order, one at a time. A
// playlist failure is reported and the run continues with the remaining
// playlists; the returned error is non-nil when any playlist failed so the
// process still exits non-zero.
func (e *Engine) SyncAll(ctx context.Context, playlists []playlist.Playlist, progress chan<- ProgressUpdate) (*SyncResult, error) {
	result := &SyncResult{}

	for i, pl := range playlists {
		sendProgress(progress, startPlaylistUpdate(i+1, len(playlists), pl))

		plResult, err := e.SyncPlaylist(ctx, pl, progress)
		if plResult == nil {
			plResult = &PlaylistResult{Playlist: pl}
		}
		plResult.Err = err
		result.Playlists = append(result.Playlists, *plResult)

		if err != nil {
			result.Failed++
			e.logger.Error("playlist sync failed", "playlist", pl.Name, "err", err)
			continue
		}
		sendProgress(progress, playlistDoneUpdate(i+1, len(playlists), plResult))
	}

	if result.Failed > 0 {
		return result, fmt.Errorf("%d of %d playlists failed", result.Failed, len(playlists))
	}
	return result, nil
}

// SyncPlaylist runs the four sync stages for one playlist and records the
// outcome in the history database when a Recorder is configured.
func (e *Engine) SyncPlaylist(ctx context.Context, pl playlist.Playlist, progress chan<- ProgressUpdate) (*PlaylistResult, error) {
	if err := pl.Validate(); err != nil {
		return nil, err
	}

	result := &PlaylistResult{Playlist: pl}

	run := models.NewSyncRun(pl.Name)
	if e.history != nil {
		if err := e.history.Create(run); err != nil {
			// History is bookkeeping; a broken database must not block the mirror.
			e.logger.Warn("failed to record sync run", "playlist", pl.Name, "err", err)
			run = nil
		}
	}

	err := e.sync(ctx, pl, result, progress)

	if run != nil {
		run.Entries = result.Entries
		run.FilesScanned = result.FilesScanned
		run.FilesTagged = result.FilesTagged
		run.FilesSkipped = result.FilesSkipped
		run.Finish(err)
		if herr := e.history.Finish(run); herr != nil {
			e.logger.Warn("failed to finalize sync run", "playlist", pl.Name, "err", herr)
		}
	}

	return result, err
}

func (e *Engine) sync(ctx context.Context, pl playlist.Playlist, result *PlaylistResult, progress chan<- ProgressUpdate) error {
	logger := e.logger.With("playlist", pl.Name)
	dir := pl.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create playlist directory %s: %w", dir, err)
	}

	listing, err := e.fetchListing(ctx, pl, dir, result, progress, logger)
	if err != nil {
		return err
	}

	sendProgress(progress, fetchMediaUpdate(pl.Name, listing.Len()))
	if err := e.fetcher.FetchMedia(ctx, dir, pl.URL); err != nil {
		return err
	}

	return e.reconcile(ctx, pl, dir, listing, result, progress, logger)
}

// fetchListing snapshots the raw listing output verbatim before importing it,
// so every fetch stays auditable even when parsing fails.
func (e *Engine) fetchListing(ctx context.Context, pl playlist.Playlist, dir string, result *PlaylistResult, progress chan<- ProgressUpdate, logger *log.Logger) (*playlist.Listing, error) {
	f, err := createListingFile(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result.ListingFile = f.Name()
	sendProgress(progress, fetchListingUpdate(pl.Name, f.Name()))
	logger.Info("writing playlist listing", "file", f.Name())

	raw, err := e.fetcher.FetchListing(ctx, dir, pl.URL)
	if err != nil {
		// The empty snapshot stays behind: names are write-once.
		return nil, err
	}
	if _, err := f.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to write listing snapshot %s: %w", f.Name(), err)
	}

	records, err := playlist.ParseListing(raw)
	if err != nil {
		return nil, err
	}

	listing := playlist.NewListing()
	listing.Populate(records)
	result.Entries = listing.Len()
	return listing, nil
}

// reconcile routes every local media file through the filename matcher and
// the metadata reconciler. Unrecognized or unlisted files are skipped; a tag
// tool failure aborts the playlist.
func (e *Engine) reconcile(ctx context.Context, pl playlist.Playlist, dir string, listing *playlist.Listing, result *PlaylistResult, progress chan<- ProgressUpdate, logger *log.Logger) error {
	files, err := mediaFiles(dir)
	if err != nil {
		return err
	}

	for i, name := range files {
		path := filepath.Join(dir, name)
		result.FilesScanned++

		id, ok := playlist.ExtractID(name)
		if !ok {
			logger.Warn("filename does not contain an id, skipping", "file", name)
			result.FilesSkipped++
			sendProgress(progress, fileSkippedUpdate(pl.Name, i+1, len(files), name, "no id in filename"))
			continue
		}

		entry, ok := listing.Get(id)
		if !ok {
			logger.Warn("file not part of playlist, skipping", "file", name, "id", id)
			result.FilesSkipped++
			sendProgress(progress, fileSkippedUpdate(pl.Name, i+1, len(files), name, "not in current listing"))
			continue
		}

		if _, _, ok := playlist.SplitArtist(entry.Title); !ok {
			logger.Warn("could not split artist from title", "title", entry.Title)
		}

		atoms, err := e.tagger.ReadAtoms(ctx, path)
		if err != nil {
			return err
		}

		changes := meta.Reconcile(pl, entry, listing.Len(), atoms)
		if len(changes) == 0 {
			logger.Info("attributes already present, skipping", "file", name)
			sendProgress(progress, fileSkippedUpdate(pl.Name, i+1, len(files), name, "up to date"))
			continue
		}

		if err := e.tagger.Apply(ctx, path, changes); err != nil {
			return err
		}
		result.FilesTagged++
		sendProgress(progress, fileTaggedUpdate(pl.Name, i+1, len(files), name, len(changes)))
	}

	return nil
}

// mediaFiles lists the media filenames directly under dir, sorted.
// The scan is deliberately non-recursive.
func mediaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), playlist.MediaExt) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}
