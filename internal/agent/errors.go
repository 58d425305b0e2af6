package agent

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName     = errors.New("invalid agent name")
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrAlreadyExists   = errors.New("agent directory already exists")
	ErrWrite           = errors.New("write failed")
)

// Error carries one of the sentinel kinds above plus the offending value or
// path. errors.Is matches both the kind and the underlying cause.
type Error struct {
	Kind error
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Path)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// WriteError wraps a filesystem failure on path.
func WriteError(path string, err error) error {
	return &Error{Kind: ErrWrite, Path: path, Err: err}
}

// AlreadyExistsError reports that path is present before the run started.
func AlreadyExistsError(path string) error {
	return &Error{Kind: ErrAlreadyExists, Path: path, Msg: "remove it or choose another name"}
}

func invalidName(name, format string, args ...any) error {
	return &Error{Kind: ErrInvalidName, Path: name, Msg: fmt.Sprintf(format, args...)}
}
