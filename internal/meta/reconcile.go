// package meta computes the minimal metadata change set for one media file.
//
// The reconciliation policy is deliberately conservative: album, genre, title
// and artist are written only when the file carries no value for them, so
// manual corrections survive re-runs. The track number is the one field that
// always follows the remote listing, re-numbering files after a reorder.
package meta

import (
	"fmt"

	"github.com/init-js/playlist-dl/internal/playlist"
)

// Atom keys as printed by the tag tool for the fields this program manages.
const (
	AtomAlbum  = "©alb"
	AtomArtist = "©ART"
	AtomTitle  = "©nam"
	AtomGenre  = "©gen"
	AtomTrack  = "trkn"
)

// Atoms is the on-disk metadata snapshot for one media file, keyed by atom
// name. It is read fresh before every reconciliation decision and never
// cached across files.
type Atoms map[string]string

// Field identifies one managed tag field.
type Field int

const (
	FieldGenre Field = iota
	FieldAlbum
	FieldTitle
	FieldArtist
	FieldTrack
)

func (f Field) String() string {
	switch f {
	case FieldGenre:
		return "genre"
	case FieldAlbum:
		return "album"
	case FieldTitle:
		return "title"
	case FieldArtist:
		return "artist"
	case FieldTrack:
		return "track"
	default:
		return ""
	}
}

// Flag returns the tag tool's command line flag for this field.
func (f Field) Flag() string {
	switch f {
	case FieldGenre:
		return "--genre"
	case FieldAlbum:
		return "--album"
	case FieldTitle:
		return "--title"
	case FieldArtist:
		return "--artist"
	case FieldTrack:
		return "--tracknum"
	default:
		return ""
	}
}

// Change is one tag field write the reconciler decided on.
type Change struct {
	Field Field
	Value string
}

// Reconcile computes the tag changes for one file given its playlist entry
// and the file's current atoms. total is the distinct entry count of the
// listing, the denominator of the "pos/total" track number.
//
// An empty result means the file needs no write at all.
func Reconcile(pl playlist.Playlist, entry playlist.Entry, total int, atoms Atoms) []Change {
	var changes []Change

	if _, ok := atoms[AtomGenre]; !ok && pl.Genre != "" {
		changes = append(changes, Change{FieldGenre, pl.Genre})
	}
	if _, ok := atoms[AtomAlbum]; !ok && pl.Name != "" {
		changes = append(changes, Change{FieldAlbum, pl.Name})
	}

	artist, song, split := playlist.SplitArtist(entry.Title)
	if _, ok := atoms[AtomTitle]; !ok && song != "" {
		changes = append(changes, Change{FieldTitle, song})
	}
	if _, ok := atoms[AtomArtist]; !ok && split && artist != "" {
		changes = append(changes, Change{FieldArtist, artist})
	}

	track := fmt.Sprintf("%d/%d", entry.Pos, total)
	if atoms[AtomTrack] != track {
		changes = append(changes, Change{FieldTrack, track})
	}

	return changes
}
