package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const defaultDownloader = "yt-dlp"

// ArchiveFile is the per-directory download archive the media fetch maintains
// so already-downloaded entries are not fetched again across runs.
const ArchiveFile = "download.archive"

var listingArgs = []string{"--flat-playlist", "--yes-playlist", "-j"}

var mediaArgs = []string{
	"--download-archive", ArchiveFile,
	"--extract-audio",
	"--audio-format", "m4a",
	"--embed-thumbnail",
	"--prefer-ffmpeg",
}

// Fetcher invokes the external downloader for listing and media fetches.
//
// Consecutive invocations are gated by a rate limiter so a run over many
// playlists does not hammer the remote platform.
type Fetcher struct {
	runner  Runner
	tool    string
	limiter *rate.Limiter
	stdout  io.Writer // media fetch progress destination
}

// NewFetcher creates a Fetcher around the given process runner. tool defaults
// to yt-dlp when empty.
func NewFetcher(runner Runner, tool string) *Fetcher {
	if tool == "" {
		tool = defaultDownloader
	}
	return &Fetcher{
		runner:  runner,
		tool:    tool,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		stdout:  os.Stdout,
	}
}

// FetchListing fetches the playlist listing as line-delimited JSON, one
// record per entry, and returns the raw bytes verbatim for snapshotting.
func (f *Fetcher) FetchListing(ctx context.Context, dir, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	args := append(append([]string{}, listingArgs...), url)
	res, err := f.runner.Run(ctx, Invocation{Name: f.tool, Args: args, Dir: dir})
	if err != nil {
		return nil, fmt.Errorf("listing fetch for %s: %w", url, err)
	}
	return res.Stdout, nil
}

// FetchMedia downloads every new playlist entry as an m4a file into dir. The
// downloader keeps its own dedup record in the directory's download archive.
func (f *Fetcher) FetchMedia(ctx context.Context, dir, url string) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	args := append(append([]string{}, mediaArgs...), url)
	if _, err := f.runner.Run(ctx, Invocation{Name: f.tool, Args: args, Dir: dir, Stdout: f.stdout}); err != nil {
		return fmt.Errorf("media fetch for %s: %w", url, err)
	}
	return nil
}
