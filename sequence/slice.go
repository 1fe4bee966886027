// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// sliceSequence is the simplest source, backed by a slice.
type sliceSequence[T any] struct {
	elements []T
}

// From wraps a slice into a Sequence. The slice is held by reference
// and is not copied, so later mutation of it is visible to readers
// obtained afterwards.
func From[T any](elements []T) Sequence[T] {
	return &sliceSequence[T]{elements: elements}
}

func (s *sliceSequence[T]) Reader() Reader[T] {
	return &sliceReader[T]{s: s.elements, size: len(s.elements)}
}

type sliceReader[T any] struct {
	s    []T
	idx  int
	size int
}

// HasNext returns true if the sequence is not ended.
func (sr *sliceReader[T]) HasNext() bool {
	return sr.idx < sr.size
}

// Next returns the next element of the sequence.
func (sr *sliceReader[T]) Next() (T, error) {
	if !sr.HasNext() {
		return *new(T), ErrSequenceEnded
	}

	pIdx := sr.idx
	sr.idx++

	return sr.s[pIdx], nil
}

// Len returns how many items are left.
func (sr *sliceReader[T]) Len() int {
	return sr.size - sr.idx
}
