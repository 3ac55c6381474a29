package tasks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/init-js/playlist-dl/internal/shared"
)

// createListingFile opens the next free listing.NNN.txt in dir for writing.
//
// Names are probed in order with O_EXCL so a snapshot can never clobber one
// written by a concurrently running instance: creation atomically fails when
// the name exists and the probe moves on. Listing files are write-once;
// exhausting all 1000 names is fatal for the playlist.
func createListingFile(dir string) (*os.File, error) {
	for n := 0; n <= 999; n++ {
		name := filepath.Join(dir, fmt.Sprintf("listing.%03d.txt", n))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create listing file %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("%w in %s", shared.ErrNamesExhausted, dir)
}
