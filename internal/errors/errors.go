// Package errors provides the error taxonomy for transcript processing.
// ParseError and ReadError mark a file as skippable; everything else is
// fatal to the batch.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversations that cannot be summarized.
var (
	ErrNoMessages     = errors.New("no speaker-labeled messages found")
	ErrNoUserMessages = errors.New("no user messages found")
)

// ParseError reports a transcript that parsed into nothing summarizable.
type ParseError struct {
	Path   string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Reason }

// Is allows comparison with another ParseError regardless of path.
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// ReadError reports a transcript file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is allows comparison with another ReadError regardless of path.
func (e *ReadError) Is(target error) bool {
	_, ok := target.(*ReadError)
	return ok
}
