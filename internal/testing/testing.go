// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/init-js/playlist-dl/internal/meta"
	"github.com/init-js/playlist-dl/internal/tools"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// FakeRunner is a scripted test double for [tools.Runner]. It records every
// invocation and delegates to Handler when set.
type FakeRunner struct {
	Invocations []tools.Invocation
	Handler     func(inv tools.Invocation) (tools.Result, error)
}

func (f *FakeRunner) Run(ctx context.Context, inv tools.Invocation) (tools.Result, error) {
	f.Invocations = append(f.Invocations, inv)
	if f.Handler == nil {
		return tools.Result{}, nil
	}
	return f.Handler(inv)
}

// FakeFetcher is a test double for the sync engine's downloader.
//
// FetchMedia materializes MediaFiles as empty files in the target directory,
// mimicking the external downloader's filename convention.
type FakeFetcher struct {
	ListingOutput []byte
	ListingErr    error
	MediaErr      error
	MediaFiles    []string

	ListingCalls int
	MediaCalls   int
}

func (f *FakeFetcher) FetchListing(ctx context.Context, dir, url string) ([]byte, error) {
	f.ListingCalls++
	if f.ListingErr != nil {
		return nil, f.ListingErr
	}
	return f.ListingOutput, nil
}

func (f *FakeFetcher) FetchMedia(ctx context.Context, dir, url string) error {
	f.MediaCalls++
	if f.MediaErr != nil {
		return f.MediaErr
	}
	for _, name := range f.MediaFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0644); err != nil {
			return err
		}
	}
	return nil
}

// FakeTagger is an in-memory test double for the sync engine's tag editor.
// Atoms are keyed by file base name; Apply folds the change set back into the
// stored atoms so repeated syncs observe their own writes.
type FakeTagger struct {
	Atoms    map[string]meta.Atoms
	Applied  map[string][]meta.Change
	ReadErr  error
	ApplyErr error
}

func NewFakeTagger() *FakeTagger {
	return &FakeTagger{
		Atoms:   map[string]meta.Atoms{},
		Applied: map[string][]meta.Change{},
	}
}

func (t *FakeTagger) ReadAtoms(ctx context.Context, path string) (meta.Atoms, error) {
	if t.ReadErr != nil {
		return nil, t.ReadErr
	}
	atoms := meta.Atoms{}
	for k, v := range t.Atoms[filepath.Base(path)] {
		atoms[k] = v
	}
	return atoms, nil
}

func (t *FakeTagger) Apply(ctx context.Context, path string, changes []meta.Change) error {
	if t.ApplyErr != nil {
		return t.ApplyErr
	}
	name := filepath.Base(path)
	t.Applied[name] = append(t.Applied[name], changes...)
	atoms := t.Atoms[name]
	if atoms == nil {
		atoms = meta.Atoms{}
		t.Atoms[name] = atoms
	}
	for _, c := range changes {
		atoms[atomKey(c.Field)] = c.Value
	}
	return nil
}

func atomKey(f meta.Field) string {
	switch f {
	case meta.FieldAlbum:
		return meta.AtomAlbum
	case meta.FieldArtist:
		return meta.AtomArtist
	case meta.FieldTitle:
		return meta.AtomTitle
	case meta.FieldGenre:
		return meta.AtomGenre
	case meta.FieldTrack:
		return meta.AtomTrack
	default:
		return ""
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
