// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// uniqueSequence is a view dropping every repeated element value,
// keeping first occurrences in order.
type uniqueSequence[T comparable] struct {
	inner Sequence[T]
}

// Unique returns a view of inner with duplicate values removed. The
// seen-set grows with the number of distinct elements, so memory is
// unbounded over infinite or highly varied sequences.
func Unique[T comparable](inner Sequence[T]) (Sequence[T], error) {
	if inner == nil {
		return nil, ErrNilArgument
	}

	return &uniqueSequence[T]{inner: inner}, nil
}

func (s *uniqueSequence[T]) Reader() Reader[T] {
	r := &uniqueReader[T]{
		inner: s.inner.Reader(),
		seen:  orderedmap.New[T, struct{}](),
	}
	r.seek()

	return r
}

// uniqueReader buffers the next unseen element, like filteredReader,
// since availability of an unseen element cannot be answered without
// searching for it.
type uniqueReader[T comparable] struct {
	inner    Reader[T]
	seen     *orderedmap.OrderedMap[T, struct{}]
	buffered T
	ok       bool
}

// seek scans the inner reader for the next element not yet emitted,
// recording it in the seen-set.
func (ur *uniqueReader[T]) seek() {
	ur.ok = false
	for ur.inner.HasNext() {
		element, err := ur.inner.Next()
		if err != nil {
			return
		}

		if _, present := ur.seen.Get(element); present {
			continue
		}

		ur.seen.Set(element, struct{}{})
		ur.buffered = element
		ur.ok = true

		return
	}
}

// HasNext returns true if the sequence is not ended.
func (ur *uniqueReader[T]) HasNext() bool {
	return ur.ok
}

// Next returns the next element of the sequence.
func (ur *uniqueReader[T]) Next() (T, error) {
	if !ur.ok {
		return *new(T), ErrSequenceEnded
	}

	element := ur.buffered
	ur.seek()

	return element, nil
}
