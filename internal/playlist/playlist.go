// package playlist models a configured remote playlist and its fetched entry listing.
package playlist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/init-js/playlist-dl/internal/shared"
)

// Playlist identifies one remote collection mirrored to a local folder.
//
// Name doubles as the folder name under Root, so it must be filesystem safe.
// Instances are constructed once from configuration and never mutated during a run.
type Playlist struct {
	Name  string
	Genre string
	URL   string
	Root  string
}

// Validate checks that the playlist is complete and its name is usable as a folder name.
func (p Playlist) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: playlist is unnamed, specify a 'name' key for each [[playlist]] section", shared.ErrMissingField)
	}
	if strings.ContainsAny(p.Name, "/\x00") || strings.ContainsRune(p.Name, filepath.Separator) {
		return fmt.Errorf("%w: %q", shared.ErrInvalidPlaylistName, p.Name)
	}
	for _, field := range []struct{ name, val string }{
		{"url", p.URL},
		{"genre", p.Genre},
		{"root", p.Root},
	} {
		if field.val == "" {
			return fmt.Errorf("%w: playlist %q is missing key %q", shared.ErrMissingField, p.Name, field.name)
		}
	}
	return nil
}

// Dir returns the local folder holding this playlist's media and listing snapshots.
func (p Playlist) Dir() string {
	return filepath.Join(p.Root, p.Name)
}
