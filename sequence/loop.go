// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// loopedSequence is a view repeating the inner sequence indefinitely.
type loopedSequence[T any] struct {
	inner Sequence[T]
}

// Looped returns a view cycling over inner forever. Looping over an
// empty sequence ends immediately instead of spinning on empty cycles.
func Looped[T any](inner Sequence[T]) (Sequence[T], error) {
	if inner == nil {
		return nil, ErrNilArgument
	}

	return &loopedSequence[T]{inner: inner}, nil
}

func (s *loopedSequence[T]) Reader() Reader[T] {
	return &loopedReader[T]{seq: s.inner, current: s.inner.Reader()}
}

type loopedReader[T any] struct {
	seq     Sequence[T]
	current Reader[T]
	// yielded reports whether the current cycle produced an element;
	// an unproductive cycle ends the loop permanently.
	yielded bool
	done    bool
}

// HasNext returns true if the sequence is not ended. When the current
// cycle ends after producing at least one element, a fresh inner
// reader starts the next cycle.
func (lr *loopedReader[T]) HasNext() bool {
	if lr.done {
		return false
	}

	if lr.current.HasNext() {
		return true
	}
	if !lr.yielded {
		lr.done = true

		return false
	}

	lr.current = lr.seq.Reader()
	lr.yielded = false
	if !lr.current.HasNext() {
		lr.done = true

		return false
	}

	return true
}

// Next returns the next element of the sequence.
func (lr *loopedReader[T]) Next() (T, error) {
	if !lr.HasNext() {
		return *new(T), ErrSequenceEnded
	}

	element, err := lr.current.Next()
	if err == nil {
		lr.yielded = true
	}

	return element, err
}
