package tasks

import (
	"fmt"

	"github.com/init-js/playlist-dl/internal/playlist"
)

// ProgressUpdate represents a progress event during a sync.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase    Phase  // Sync stage
	Playlist string // Playlist being processed
	Step     int    // Current step number within phase
	Total    int    // Total steps in this phase
	Message  string // Human-readable message for display
	Data     any    // Optional phase-specific data for advanced UIs
}

// Sync stage enumeration
type Phase int

const (
	StartPlaylist Phase = iota
	FetchListing
	FetchMedia
	Reconcile
	PlaylistDone
)

func (p Phase) String() string {
	switch p {
	case StartPlaylist:
		return "start_playlist"
	case FetchListing:
		return "fetch_listing"
	case FetchMedia:
		return "fetch_media"
	case Reconcile:
		return "reconcile"
	case PlaylistDone:
		return "playlist_done"
	default:
		return ""
	}
}

func startPlaylistUpdate(step, total int, pl playlist.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:    StartPlaylist,
		Playlist: pl.Name,
		Step:     step,
		Total:    total,
		Message:  fmt.Sprintf("[%d/%d] Syncing %s...", step, total, pl.Name),
	}
}

func fetchListingUpdate(name, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:    FetchListing,
		Playlist: name,
		Step:     1,
		Total:    1,
		Message:  fmt.Sprintf("Writing playlist listing to %s", path),
	}
}

func fetchMediaUpdate(name string, entries int) ProgressUpdate {
	return ProgressUpdate{
		Phase:    FetchMedia,
		Playlist: name,
		Step:     1,
		Total:    1,
		Message:  fmt.Sprintf("Downloading media (%d entries listed)...", entries),
	}
}

func fileTaggedUpdate(name string, step, total int, file string, changes int) ProgressUpdate {
	return ProgressUpdate{
		Phase:    Reconcile,
		Playlist: name,
		Step:     step,
		Total:    total,
		Message:  fmt.Sprintf("[%d/%d] Updated %s (%d fields)", step, total, file, changes),
	}
}

func fileSkippedUpdate(name string, step, total int, file, reason string) ProgressUpdate {
	return ProgressUpdate{
		Phase:    Reconcile,
		Playlist: name,
		Step:     step,
		Total:    total,
		Message:  fmt.Sprintf("[%d/%d] %s: %s", step, total, file, reason),
	}
}

func playlistDoneUpdate(step, total int, result *PlaylistResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:    PlaylistDone,
		Playlist: result.Playlist.Name,
		Step:     step,
		Total:    total,
		Message: fmt.Sprintf("✓ %s: %d entries, %d files tagged, %d skipped",
			result.Playlist.Name, result.Entries, result.FilesTagged, result.FilesSkipped),
		Data: result,
	}
}
