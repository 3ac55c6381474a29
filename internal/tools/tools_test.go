package tools_test

import (
	"errors"
	"testing"

	"github.com/init-js/playlist-dl/internal/shared"
	"github.com/init-js/playlist-dl/internal/tools"
)

func TestToolError(t *testing.T) {
	err := &tools.ToolError{
		Tool:     "yt-dlp",
		Args:     []string{"--flat-playlist", "-j", "https://example.com/pl"},
		ExitCode: 2,
		Stderr:   "ERROR: unable to download",
	}

	t.Run("Error carries command and exit code", func(t *testing.T) {
		want := "yt-dlp --flat-playlist -j https://example.com/pl exited with code 2"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("unwraps to ErrToolFailed", func(t *testing.T) {
		if !errors.Is(err, shared.ErrToolFailed) {
			t.Error("expected errors.Is(err, shared.ErrToolFailed)")
		}
	})

	t.Run("matchable via errors.As", func(t *testing.T) {
		var toolErr *tools.ToolError
		wrapped := errors.Join(errors.New("outer"), err)
		if !errors.As(wrapped, &toolErr) {
			t.Fatal("expected errors.As to find ToolError")
		}
		if toolErr.ExitCode != 2 {
			t.Errorf("expected exit code 2, got %d", toolErr.ExitCode)
		}
	})
}
