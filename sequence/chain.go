// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// chainedSequence is a view traversing one sequence, then another.
type chainedSequence[T any] struct {
	first  Sequence[T]
	second Sequence[T]
}

// Chained returns a view yielding the elements of first followed by
// those of second. A nil second operand degrades to passing first
// through unchanged.
func Chained[T any](first, second Sequence[T]) (Sequence[T], error) {
	if first == nil {
		return nil, ErrNilArgument
	}
	if second == nil {
		return first, nil
	}

	return &chainedSequence[T]{first: first, second: second}, nil
}

func (s *chainedSequence[T]) Reader() Reader[T] {
	return &chainedReader[T]{current: s.first.Reader(), second: s.second}
}

// chainedReader exhausts the first reader, then switches exactly once
// to a reader obtained from the second sequence only at that moment.
type chainedReader[T any] struct {
	current Reader[T]
	// second is cleared on switch-over.
	second Sequence[T]
}

// HasNext returns true if the sequence is not ended.
func (cr *chainedReader[T]) HasNext() bool {
	if cr.current.HasNext() {
		return true
	}
	if cr.second == nil {
		return false
	}

	cr.current = cr.second.Reader()
	cr.second = nil

	return cr.current.HasNext()
}

// Next returns the next element of the sequence.
func (cr *chainedReader[T]) Next() (T, error) {
	if !cr.HasNext() {
		return *new(T), ErrSequenceEnded
	}

	return cr.current.Next()
}
