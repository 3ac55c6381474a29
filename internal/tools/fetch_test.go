package tools_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/init-js/playlist-dl/internal/shared"
	tu "github.com/init-js/playlist-dl/internal/testing"
	"github.com/init-js/playlist-dl/internal/tools"
)

func TestFetcher(t *testing.T) {
	ctx := context.Background()
	const url = "https://example.com/playlist?list=PLx"

	t.Run("FetchListing", func(t *testing.T) {
		t.Run("returns stdout verbatim", func(t *testing.T) {
			listing := []byte(`{"id": "dYGgqJiJZCA", "title": "Artist - Song"}` + "\n")
			runner := &tu.FakeRunner{
				Handler: func(inv tools.Invocation) (tools.Result, error) {
					return tools.Result{Stdout: listing}, nil
				},
			}
			fetcher := tools.NewFetcher(runner, "")

			raw, err := fetcher.FetchListing(ctx, "/tmp/pl", url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(raw) != string(listing) {
				t.Errorf("expected raw listing passthrough, got %q", raw)
			}

			inv := runner.Invocations[0]
			if inv.Name != "yt-dlp" {
				t.Errorf("expected default tool yt-dlp, got %s", inv.Name)
			}
			if inv.Dir != "/tmp/pl" {
				t.Errorf("expected working dir /tmp/pl, got %s", inv.Dir)
			}
			for _, arg := range []string{"--flat-playlist", "--yes-playlist", "-j"} {
				if !slices.Contains(inv.Args, arg) {
					t.Errorf("expected arg %s in %v", arg, inv.Args)
				}
			}
			if inv.Args[len(inv.Args)-1] != url {
				t.Errorf("expected url as final arg, got %v", inv.Args)
			}
		})

		t.Run("propagates tool failure", func(t *testing.T) {
			runner := &tu.FakeRunner{
				Handler: func(inv tools.Invocation) (tools.Result, error) {
					return tools.Result{}, &tools.ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: 1}
				},
			}
			fetcher := tools.NewFetcher(runner, "")

			if _, err := fetcher.FetchListing(ctx, "/tmp/pl", url); !errors.Is(err, shared.ErrToolFailed) {
				t.Errorf("expected ErrToolFailed, got %v", err)
			}
		})
	})

	t.Run("FetchMedia", func(t *testing.T) {
		t.Run("uses download archive and audio extraction", func(t *testing.T) {
			runner := &tu.FakeRunner{}
			fetcher := tools.NewFetcher(runner, "custom-dl")

			if err := fetcher.FetchMedia(ctx, "/tmp/pl", url); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			inv := runner.Invocations[0]
			if inv.Name != "custom-dl" {
				t.Errorf("expected configured tool custom-dl, got %s", inv.Name)
			}
			for _, arg := range []string{"--download-archive", tools.ArchiveFile, "--extract-audio", "m4a"} {
				if !slices.Contains(inv.Args, arg) {
					t.Errorf("expected arg %s in %v", arg, inv.Args)
				}
			}
			if inv.Stdout == nil {
				t.Error("expected media fetch to stream stdout")
			}
		})

		t.Run("propagates tool failure", func(t *testing.T) {
			runner := &tu.FakeRunner{
				Handler: func(inv tools.Invocation) (tools.Result, error) {
					return tools.Result{}, &tools.ToolError{Tool: inv.Name, ExitCode: 101}
				},
			}
			fetcher := tools.NewFetcher(runner, "")

			if err := fetcher.FetchMedia(ctx, "/tmp/pl", url); !errors.Is(err, shared.ErrToolFailed) {
				t.Errorf("expected ErrToolFailed, got %v", err)
			}
		})
	})
}
