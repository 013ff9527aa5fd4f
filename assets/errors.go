package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrBatchInFlight is returned by Load while an earlier batch on the same
	// loader has not finished.
	ErrBatchInFlight = errors.New("assets: a batch is already loading")

	// ErrBatchCancelled is the result of a batch stopped by Cancel or by its
	// context.
	ErrBatchCancelled = errors.New("assets: batch cancelled")
)

// UnrecognizedTypeError reports a source whose extension matches no known
// resource class.
type UnrecognizedTypeError struct {
	Source string
}

func (e *UnrecognizedTypeError) Error() string {
	return "assets: file type not recognized: " + e.Source
}

// FetchError reports a source whose bytes could not be retrieved.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("assets: fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a source that was fetched but could not be decoded.
type DecodeError struct {
	Source string
	Kind   Kind
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("assets: decode %s %s: %v", e.Kind, e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
