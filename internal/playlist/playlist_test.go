package playlist

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/init-js/playlist-dl/internal/shared"
)

func TestPlaylist(t *testing.T) {
	valid := Playlist{Name: "chill", Genre: "Electronic", URL: "https://example.com/pl", Root: "/music"}

	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts complete playlist", func(t *testing.T) {
			if err := valid.Validate(); err != nil {
				t.Errorf("expected valid playlist, got %v", err)
			}
		})

		t.Run("rejects missing name", func(t *testing.T) {
			pl := valid
			pl.Name = ""
			if err := pl.Validate(); !errors.Is(err, shared.ErrMissingField) {
				t.Errorf("expected ErrMissingField, got %v", err)
			}
		})

		t.Run("rejects name with path separator", func(t *testing.T) {
			pl := valid
			pl.Name = "chill/../../etc"
			if err := pl.Validate(); !errors.Is(err, shared.ErrInvalidPlaylistName) {
				t.Errorf("expected ErrInvalidPlaylistName, got %v", err)
			}
		})

		t.Run("rejects name with NUL", func(t *testing.T) {
			pl := valid
			pl.Name = "chill\x00"
			if err := pl.Validate(); !errors.Is(err, shared.ErrInvalidPlaylistName) {
				t.Errorf("expected ErrInvalidPlaylistName, got %v", err)
			}
		})

		t.Run("rejects missing url, genre and root", func(t *testing.T) {
			for _, field := range []string{"url", "genre", "root"} {
				pl := valid
				switch field {
				case "url":
					pl.URL = ""
				case "genre":
					pl.Genre = ""
				case "root":
					pl.Root = ""
				}
				if err := pl.Validate(); !errors.Is(err, shared.ErrMissingField) {
					t.Errorf("%s: expected ErrMissingField, got %v", field, err)
				}
			}
		})
	})

	t.Run("Dir", func(t *testing.T) {
		if got, want := valid.Dir(), filepath.Join("/music", "chill"); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
