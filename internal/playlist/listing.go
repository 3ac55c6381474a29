package playlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/init-js/playlist-dl/internal/shared"
)

// Record is one raw row of a listing fetch, decoded from line-delimited JSON.
// Extra fields emitted by the downloader are tolerated and dropped.
type Record struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Entry is one song of a playlist listing with its recovered track position.
type Entry struct {
	ID    string
	Title string
	Pos   int // 1-based position of the id's first occurrence in the listing
}

// Listing is the entry store for one playlist: a lookup from stable id to
// entry. The remote listing order survives only through Entry.Pos.
type Listing struct {
	entries map[string]Entry
}

// NewListing returns an empty Listing.
func NewListing() *Listing {
	return &Listing{entries: map[string]Entry{}}
}

// ParseListing decodes the line-delimited JSON output of a listing fetch.
//
// Blank lines are skipped. A line that is not valid JSON or lacks an id is an
// error: a truncated listing must not silently produce a partial store.
func ParseListing(data []byte) ([]Record, error) {
	var records []Record

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	n := 0
	for sc.Scan() {
		n++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", shared.ErrListingMalformed, n, err)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: line %d: record has no id", shared.ErrListingMalformed, n)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrListingMalformed, err)
	}

	return records, nil
}

// Populate consumes one complete listing fetch, replacing any previous
// contents. Positions are 1-based indexes into the given sequence; when an id
// appears more than once, the first occurrence fixes Pos and later duplicates
// only refresh the title.
func (l *Listing) Populate(records []Record) {
	l.entries = make(map[string]Entry, len(records))
	for i, rec := range records {
		if existing, ok := l.entries[rec.ID]; ok {
			existing.Title = rec.Title
			l.entries[rec.ID] = existing
			continue
		}
		l.entries[rec.ID] = Entry{ID: rec.ID, Title: rec.Title, Pos: i + 1}
	}
}

// Get resolves an id to its entry. A missing id is an ordinary outcome, not an error.
func (l *Listing) Get(id string) (Entry, bool) {
	e, ok := l.entries[id]
	return e, ok
}

// Len returns the number of distinct entries, the denominator in "X/Y" track numbers.
func (l *Listing) Len() int {
	return len(l.entries)
}
