package tools

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs tools as real subprocesses via os/exec.
//
// Stderr is captured for error reporting and tee'd to Stderr (default
// [os.Stderr]) so downloader progress stays visible in the terminal.
type ExecRunner struct {
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir

	var stdout bytes.Buffer
	if inv.Stdout != nil {
		cmd.Stdout = inv.Stdout
	} else {
		cmd.Stdout = &stdout
	}

	tee := r.Stderr
	if tee == nil {
		tee = os.Stderr
	}
	var stderr bytes.Buffer
	cmd.Stderr = io.MultiWriter(&stderr, tee)

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.String()}
	if err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return res, &ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: code, Stderr: res.Stderr}
	}

	return res, nil
}
