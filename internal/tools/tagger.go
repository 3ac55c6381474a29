package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/init-js/playlist-dl/internal/meta"
)

const defaultTagger = "AtomicParsley"

// Tagger reads and writes audio metadata atoms through the external tag tool.
type Tagger struct {
	runner Runner
	tool   string
}

// NewTagger creates a Tagger around the given process runner. tool defaults
// to AtomicParsley when empty.
func NewTagger(runner Runner, tool string) *Tagger {
	if tool == "" {
		tool = defaultTagger
	}
	return &Tagger{runner: runner, tool: tool}
}

// ReadAtoms returns the file's current tag atoms. The snapshot is taken fresh
// on every call; callers must not cache it across files.
func (t *Tagger) ReadAtoms(ctx context.Context, path string) (meta.Atoms, error) {
	res, err := t.runner.Run(ctx, Invocation{Name: t.tool, Args: []string{path, "-t"}})
	if err != nil {
		return nil, fmt.Errorf("tag read for %s: %w", path, err)
	}
	return parseAtoms(res.Stdout), nil
}

// parseAtoms parses tag tool output lines of the form:
//
//	Atom "©nam" contains: Some Title
//
// The tool prints track numbers as "X of Y" but accepts them as "X/Y" on
// write, so trkn is normalized on read.
func parseAtoms(out []byte) meta.Atoms {
	atoms := meta.Atoms{}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		rest, found := strings.CutPrefix(line, `Atom "`)
		if !found {
			continue
		}
		key, val, found := strings.Cut(rest, `" contains: `)
		if !found {
			continue
		}
		atoms[key] = val
	}

	if trkn, ok := atoms[meta.AtomTrack]; ok {
		if x, y, found := strings.Cut(trkn, " of "); found {
			atoms[meta.AtomTrack] = x + "/" + y
		}
	}

	return atoms
}

// Apply writes the change set to a new annotated copy of the file and moves
// it over the original only after the tool reports success, so an interrupted
// write never leaves the file partial or missing. On failure the temp file is
// left in place for inspection and the original is untouched.
func (t *Tagger) Apply(ctx context.Context, path string, changes []meta.Change) error {
	if len(changes) == 0 {
		return nil
	}

	// Same directory as the original so the final rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".playlist-dl-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	args := []string{path, "--output", tmpName}
	for _, c := range changes {
		args = append(args, c.Field.Flag(), c.Value)
	}

	if _, err := t.runner.Run(ctx, Invocation{Name: t.tool, Args: args}); err != nil {
		return fmt.Errorf("tag write for %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
