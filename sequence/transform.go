// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// transformedSequence is a view applying a mapping to each element,
// possibly changing the element type.
type transformedSequence[T, R any] struct {
	inner     Sequence[T]
	transform func(T) R
}

// Transformed returns a view of inner with transform applied to every
// element. A free function rather than a method so the result type may
// differ from the input type.
func Transformed[T, R any](inner Sequence[T], transform func(T) R) (Sequence[R], error) {
	if inner == nil || transform == nil {
		return nil, ErrNilArgument
	}

	return &transformedSequence[T, R]{inner: inner, transform: transform}, nil
}

func (s *transformedSequence[T, R]) Reader() Reader[R] {
	return &transformedReader[T, R]{inner: s.inner.Reader(), transform: s.transform}
}

// transformedReader delegates availability to the inner reader and
// maps inside Next; mapping cannot change availability, so no
// buffering is needed.
type transformedReader[T, R any] struct {
	inner     Reader[T]
	transform func(T) R
}

// HasNext returns true if the sequence is not ended.
func (tr *transformedReader[T, R]) HasNext() bool {
	return tr.inner.HasNext()
}

// Next returns the next element of the sequence.
func (tr *transformedReader[T, R]) Next() (R, error) {
	element, err := tr.inner.Next()
	if err != nil {
		return *new(R), err
	}

	return tr.transform(element), nil
}
