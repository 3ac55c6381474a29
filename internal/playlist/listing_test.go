package playlist

import (
	"errors"
	"testing"

	"github.com/init-js/playlist-dl/internal/shared"
)

func TestParseListing(t *testing.T) {
	t.Run("decodes one record per line", func(t *testing.T) {
		data := []byte(`{"id": "dYGgqJiJZCA", "title": "Artist - Song", "url": "https://example.com/watch?v=dYGgqJiJZCA"}
{"id": "AAAAAAAAAAA", "title": "Another One"}
`)
		records, err := ParseListing(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].ID != "dYGgqJiJZCA" || records[0].Title != "Artist - Song" {
			t.Errorf("unexpected first record: %+v", records[0])
		}
	})

	t.Run("skips blank lines", func(t *testing.T) {
		data := []byte("\n{\"id\": \"a1\", \"title\": \"one\"}\n\n   \n{\"id\": \"b2\", \"title\": \"two\"}\n")
		records, err := ParseListing(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("tolerates unknown fields", func(t *testing.T) {
		data := []byte(`{"id": "a1", "title": "one", "duration": 213, "uploader": "someone"}`)
		records, err := ParseListing(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if records[0].ID != "a1" {
			t.Errorf("expected id a1, got %s", records[0].ID)
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		data := []byte(`{"id": "a1", "title": "one"}
{"id": "b2", "title"`)
		if _, err := ParseListing(data); !errors.Is(err, shared.ErrListingMalformed) {
			t.Errorf("expected ErrListingMalformed, got %v", err)
		}
	})

	t.Run("rejects record without id", func(t *testing.T) {
		data := []byte(`{"title": "no id here"}`)
		if _, err := ParseListing(data); !errors.Is(err, shared.ErrListingMalformed) {
			t.Errorf("expected ErrListingMalformed, got %v", err)
		}
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		records, err := ParseListing(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})
}

func TestListing(t *testing.T) {
	t.Run("Populate assigns 1-based positions", func(t *testing.T) {
		l := NewListing()
		l.Populate([]Record{
			{ID: "a1", Title: "first"},
			{ID: "b2", Title: "second"},
			{ID: "c3", Title: "third"},
		})

		if l.Len() != 3 {
			t.Fatalf("expected 3 entries, got %d", l.Len())
		}
		for i, id := range []string{"a1", "b2", "c3"} {
			entry, ok := l.Get(id)
			if !ok {
				t.Fatalf("expected entry for %s", id)
			}
			if entry.Pos != i+1 {
				t.Errorf("expected pos %d for %s, got %d", i+1, id, entry.Pos)
			}
		}
	})

	t.Run("duplicate id keeps first position, refreshes title", func(t *testing.T) {
		l := NewListing()
		l.Populate([]Record{
			{ID: "a1", Title: "old title"},
			{ID: "b2", Title: "second"},
			{ID: "a1", Title: "new title"},
		})

		if l.Len() != 2 {
			t.Fatalf("expected 2 distinct entries, got %d", l.Len())
		}
		entry, _ := l.Get("a1")
		if entry.Pos != 1 {
			t.Errorf("expected pos 1, got %d", entry.Pos)
		}
		if entry.Title != "new title" {
			t.Errorf("expected refreshed title, got %q", entry.Title)
		}
	})

	t.Run("Populate replaces previous contents", func(t *testing.T) {
		l := NewListing()
		l.Populate([]Record{{ID: "a1", Title: "one"}})
		l.Populate([]Record{{ID: "b2", Title: "two"}})

		if _, ok := l.Get("a1"); ok {
			t.Error("expected a1 to be gone after repopulate")
		}
		if _, ok := l.Get("b2"); !ok {
			t.Error("expected b2 to be present")
		}
	})

	t.Run("Get misses are ordinary", func(t *testing.T) {
		l := NewListing()
		if _, ok := l.Get("nope"); ok {
			t.Error("expected miss on empty listing")
		}
	})
}
