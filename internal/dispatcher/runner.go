package dispatcher

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

const defaultShell = "/bin/sh"

// Runner executes a command line and reports its exit status.
type Runner interface {
	Run(ctx context.Context, command string) (int, error)
}

// ShellRunner runs commands through a POSIX shell attached to the process's
// standard streams.
type ShellRunner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes command with "<shell> -c". A command that ran and failed
// returns its exit status and a nil error; an error means it could not be
// started. Commands killed by a signal report -1.
func (r ShellRunner) Run(ctx context.Context, command string) (int, error) {
	shell := r.Shell
	if shell == "" {
		shell = defaultShell
	}
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
