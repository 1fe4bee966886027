// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// skippedSequence is a view dropping the first skipCount elements.
type skippedSequence[T any] struct {
	inner     Sequence[T]
	skipCount int
}

// Skipped returns a view of inner with the first skipCount elements
// dropped. A sequence shorter than skipCount yields an empty view, not
// an error.
func Skipped[T any](inner Sequence[T], skipCount int) (Sequence[T], error) {
	if inner == nil {
		return nil, ErrNilArgument
	}
	if skipCount < 0 {
		return nil, ErrNegativeCount
	}

	return &skippedSequence[T]{inner: inner, skipCount: skipCount}, nil
}

// Reader advances a fresh inner reader past the skipped elements,
// stopping early if the inner sequence ends first, then hands the
// inner reader out directly.
func (s *skippedSequence[T]) Reader() Reader[T] {
	r := s.inner.Reader()
	for i := 0; i < s.skipCount && r.HasNext(); i++ {
		_, _ = r.Next()
	}

	return r
}
