package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrMissingMessage is returned when an empty message is written.
	ErrMissingMessage = errors.New("message is required")
	// ErrMissingInner is returned when a decorator or composite is given a nil sink.
	ErrMissingInner = errors.New("inner sink is required")
	// ErrMissingLoggers is returned when a composite is built without a sink list.
	ErrMissingLoggers = errors.New("sink list is required")
	// ErrMissingBackend is returned when a sink is built without the client
	// or logger it delivers to.
	ErrMissingBackend = errors.New("sink backend is required")
)

// DefaultFileName is the destination used by File when no name is given.
const DefaultFileName = "log.txt"

// ErrorSink delivers an error message to some destination. Decorators and
// composites implement it too, so sinks nest arbitrarily.
type ErrorSink interface {
	WriteError(message string) error
}

// Console writes each message on its own line to an output stream.
type Console struct {
	out io.Writer
}

// NewConsole builds a console sink. A nil writer means os.Stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// WriteError prints the message followed by a newline.
func (c *Console) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	if _, err := fmt.Fprintln(c.out, message); err != nil {
		return fmt.Errorf("console write: %w", err)
	}
	return nil
}

// File appends messages to a file, creating it when absent. Existing
// content is never truncated. Concurrent writers to the same path must
// serialize externally.
type File struct {
	path string
}

// NewFile builds a file sink. An empty path means DefaultFileName in the
// working directory.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultFileName
	}
	return &File{path: path}
}

// Path returns the destination file name.
func (f *File) Path() string { return f.path }

// WriteError appends the message and a trailing newline.
func (f *File) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := fh.WriteString(message + "\n"); err != nil {
		fh.Close()
		return fmt.Errorf("append log file: %w", err)
	}
	return fh.Close()
}
