// package tools wraps the external downloader and tagger processes.
//
// Every collaborator is invoked through the [Runner] interface so the sync
// pipeline can be tested without spawning processes, and every non-zero exit
// surfaces as a typed [*ToolError] instead of an ad hoc exit code check.
package tools

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/init-js/playlist-dl/internal/shared"
)

// Invocation describes one external tool run.
type Invocation struct {
	Name   string    // executable name
	Args   []string  // arguments, excluding the executable
	Dir    string    // working directory; empty inherits the process cwd
	Stdout io.Writer // when set, stdout streams here instead of being captured
}

// Result holds the captured output of a completed invocation.
type Result struct {
	Stdout []byte // empty when Invocation.Stdout was set
	Stderr string
}

// Runner executes external tools. The invocation is attempted exactly once;
// there are no retries anywhere in this program.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ToolError reports a failed external tool invocation with enough context to
// diagnose without re-running: the command, its exit code and its stderr.
type ToolError struct {
	Tool     string
	Args     []string
	ExitCode int // -1 when the process could not be started
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %s exited with code %d", e.Tool, strings.Join(e.Args, " "), e.ExitCode)
}

// Unwrap lets callers match any tool failure with errors.Is(err, shared.ErrToolFailed).
func (e *ToolError) Unwrap() error {
	return shared.ErrToolFailed
}
