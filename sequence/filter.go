// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

// filteredSequence is a view keeping only elements that satisfy a predicate.
type filteredSequence[T any] struct {
	inner     Sequence[T]
	predicate func(T) bool
}

// Filtered returns a view of inner containing only the elements that
// satisfy predicate.
func Filtered[T any](inner Sequence[T], predicate func(T) bool) (Sequence[T], error) {
	if inner == nil || predicate == nil {
		return nil, ErrNilArgument
	}

	return &filteredSequence[T]{inner: inner, predicate: predicate}, nil
}

func (s *filteredSequence[T]) Reader() Reader[T] {
	r := &filteredReader[T]{inner: s.inner.Reader(), predicate: s.predicate}
	r.seek()

	return r
}

// filteredReader buffers the next matching element so that HasNext can
// answer availability without consuming.
type filteredReader[T any] struct {
	inner     Reader[T]
	predicate func(T) bool
	buffered  T
	ok        bool
}

// seek scans the inner reader until it finds a matching element or the
// inner reader ends.
func (fr *filteredReader[T]) seek() {
	fr.ok = false
	for fr.inner.HasNext() {
		element, err := fr.inner.Next()
		if err != nil {
			return
		}

		if fr.predicate(element) {
			fr.buffered = element
			fr.ok = true

			return
		}
	}
}

// HasNext returns true if the sequence is not ended.
func (fr *filteredReader[T]) HasNext() bool {
	return fr.ok
}

// Next returns the next element of the sequence.
func (fr *filteredReader[T]) Next() (T, error) {
	if !fr.ok {
		return *new(T), ErrSequenceEnded
	}

	element := fr.buffered
	fr.seek()

	return element, nil
}
