// Package terminal saves and restores the controlling terminal's mode so a
// dispatched command always starts from the state the shell left it in.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// State is a captured terminal mode. A nil or empty State restores nothing.
type State struct {
	fd    int
	saved *term.State
}

// Snapshot captures the mode of fd. Descriptors that are not terminals yield
// an empty State.
func Snapshot(fd int) *State {
	if fd < 0 || !term.IsTerminal(fd) {
		return &State{fd: -1}
	}
	saved, err := term.GetState(fd)
	if err != nil {
		return &State{fd: -1}
	}
	return &State{fd: fd, saved: saved}
}

// SnapshotStdin captures the mode of standard input.
func SnapshotStdin() *State {
	return Snapshot(int(os.Stdin.Fd()))
}

// Captured reports whether a mode was saved.
func (s *State) Captured() bool {
	return s != nil && s.saved != nil
}

// Restore puts the terminal back into the captured mode.
func (s *State) Restore() error {
	if !s.Captured() {
		return nil
	}
	return term.Restore(s.fd, s.saved)
}
