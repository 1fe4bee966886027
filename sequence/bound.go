// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// boundedSequence is a view limiting traversal to at most maxCount elements.
type boundedSequence[T any] struct {
	inner    Sequence[T]
	maxCount int
}

// Bounded returns a view of inner yielding at most maxCount elements.
func Bounded[T any](inner Sequence[T], maxCount int) (Sequence[T], error) {
	if inner == nil {
		return nil, ErrNilArgument
	}
	if maxCount < 0 {
		return nil, ErrNegativeCount
	}

	return &boundedSequence[T]{inner: inner, maxCount: maxCount}, nil
}

func (s *boundedSequence[T]) Reader() Reader[T] {
	return &boundedReader[T]{inner: s.inner.Reader(), maxCount: s.maxCount}
}

type boundedReader[T any] struct {
	inner    Reader[T]
	maxCount int
	emitted  int
}

// HasNext returns true if the sequence is not ended.
func (br *boundedReader[T]) HasNext() bool {
	return br.emitted < br.maxCount && br.inner.HasNext()
}

// Next returns the next element of the sequence.
func (br *boundedReader[T]) Next() (T, error) {
	if !br.HasNext() {
		return *new(T), ErrSequenceEnded
	}

	br.emitted++

	return br.inner.Next()
}
