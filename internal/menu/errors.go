package menu

import (
	"errors"
	"fmt"
)

// ErrNoOptions reports a structurally valid document without a usable option.
var ErrNoOptions = errors.New("no complete options declared")

// ParseError describes malformed document input.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// LoadError wraps failures to open, read or parse the config file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ContentError reports a document that parsed cleanly but cannot be used.
type ContentError struct {
	Err error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("config content: %v", e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
