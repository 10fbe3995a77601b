package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound indicates the video path does not resolve to a regular file.
	ErrInputNotFound = errors.New("video file not found")

	// ErrOpenFailure indicates the source exists but its stream could not be initialized.
	ErrOpenFailure = errors.New("failed to open video")

	// ErrDecode indicates decoding stopped on something other than end of stream.
	ErrDecode = errors.New("failed to decode frame")

	// ErrWrite indicates a frame could not be persisted.
	ErrWrite = errors.New("failed to write frame")

	// ErrCancelled indicates the run was interrupted before the stream ended.
	ErrCancelled = errors.New("extraction cancelled")
)

// noIndex marks a RunError that is not tied to a specific frame.
const noIndex = -1

// RunError is returned for every failed extraction. Kind is one of the
// package's sentinel errors; the counters describe how far the run got.
type RunError struct {
	Kind    error
	Index   int
	Decoded int
	Written int
	Err     error
}

func (e *RunError) Error() string {
	msg := e.Kind.Error()
	if e.Index != noIndex {
		msg = fmt.Sprintf("%s %d", msg, e.Index)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RunError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// HasIndex reports whether the failure is attributed to a specific frame.
func (e *RunError) HasIndex() bool {
	return e.Index != noIndex
}

// Partial reports whether any frame made it to disk before the failure.
func (e *RunError) Partial() bool {
	return e.Written > 0
}

// frameError tags a writer failure with its frame index.
type frameError struct {
	index int
	err   error
}

func (e *frameError) Error() string {
	return e.err.Error()
}

func (e *frameError) Unwrap() error {
	return e.err
}
