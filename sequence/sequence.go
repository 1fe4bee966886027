// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package sequence provides lazy, composable views over element
// sequences. A view wraps an inner sequence and is realized only when
// a reader pulls elements from it; re-obtaining a reader from the same
// view starts a fresh traversal.
package sequence

import (
	"errors"
)

// ErrSequenceEnded means the reader was advanced past the last element.
var ErrSequenceEnded = errors.New("the sequence is ended")

// ErrNilArgument means a required sequence or function was not provided.
var ErrNilArgument = errors.New("sequence or function is required")

// ErrNegativeCount means a limit or skip count was negative.
var ErrNegativeCount = errors.New("count must not be negative")

// ErrOutOfRange means a requested position lies beyond the available elements.
var ErrOutOfRange = errors.New("position is out of sequence range")

// ErrTypeMismatch means a destination container has an incompatible element type.
var ErrTypeMismatch = errors.New("destination element type mismatch")

// Reader defines the simplest reader for sequences. A reader is a
// single-use traversal handle owned by one consumer; it is not safe
// for concurrent use.
type Reader[T any] interface {
	// HasNext returns true if the sequence is not ended. It is free of
	// side effects and may be called any number of times.
	HasNext() bool
	// Next returns the next element of the sequence. It returns
	// ErrSequenceEnded when HasNext would have returned false.
	Next() (T, error)
}

// Sequence defines the capability to produce fresh readers. Every call
// to Reader yields an independent traversal starting from the first
// element; traversal state lives in readers, never in the sequence.
type Sequence[T any] interface {
	Reader() Reader[T]
}
