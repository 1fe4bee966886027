// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence

import (
	"fmt"
	"reflect"
	"strings"
)

// Fluent is the chain-building entry point composing views. It is an
// immutable value: every chain method returns a new Fluent and never
// alters the receiver. A construction error (nil argument, negative
// count) is carried in the chain and surfaced by the first terminal
// operation. Fluent itself implements Sequence, so composed chains can
// feed any consumer of the reader protocol.
//
// The element type must be comparable because Unique and Contains rely
// on value equality.
type Fluent[T comparable] struct {
	seq Sequence[T]
	err error
}

// Of builds a Fluent over the given elements.
func Of[T comparable](elements ...T) Fluent[T] {
	return Fluent[T]{seq: From(elements)}
}

// FromSequence builds a Fluent over an existing sequence. Passing a
// Fluent back returns it unchanged rather than double-wrapping.
func FromSequence[T comparable](seq Sequence[T]) Fluent[T] {
	if f, ok := seq.(Fluent[T]); ok {
		return f
	}
	if seq == nil {
		return Fluent[T]{err: ErrNilArgument}
	}

	return Fluent[T]{seq: seq}
}

// Reader returns a fresh independent reader over the composed chain.
// On a chain carrying a deferred error the reader is immediately ended
// and Next reports that error.
func (f Fluent[T]) Reader() Reader[T] {
	r, err := f.reader()
	if err != nil {
		return failedReader[T]{err: err}
	}

	return r
}

// reader validates the chain before handing out a fresh reader. A
// zero-value Fluent counts as an absent sequence.
func (f Fluent[T]) reader() (Reader[T], error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.seq == nil {
		return nil, ErrNilArgument
	}

	return f.seq.Reader(), nil
}

// derive keeps the first error of the chain sticky.
func (f Fluent[T]) derive(seq Sequence[T], err error) Fluent[T] {
	if f.err != nil {
		return f
	}
	if err != nil {
		return Fluent[T]{err: err}
	}

	return Fluent[T]{seq: seq}
}

// Filter keeps only the elements satisfying predicate.
func (f Fluent[T]) Filter(predicate func(T) bool) Fluent[T] {
	return f.derive(Filtered[T](f.seq, predicate))
}

// Limit bounds the chain to at most maxCount elements.
func (f Fluent[T]) Limit(maxCount int) Fluent[T] {
	return f.derive(Bounded[T](f.seq, maxCount))
}

// Skip drops the first count elements.
func (f Fluent[T]) Skip(count int) Fluent[T] {
	return f.derive(Skipped[T](f.seq, count))
}

// Loop repeats the chain indefinitely; a preceding empty chain stays empty.
func (f Fluent[T]) Loop() Fluent[T] {
	return f.derive(Looped[T](f.seq))
}

// Unique removes duplicate values, keeping first occurrences in order.
func (f Fluent[T]) Unique() Fluent[T] {
	return f.derive(Unique[T](f.seq))
}

// Transform maps every element through fn without changing the element
// type. Use TransformTo to map into a different type.
func (f Fluent[T]) Transform(fn func(T) T) Fluent[T] {
	return f.derive(Transformed[T, T](f.seq, fn))
}

// Append yields the chain's elements followed by the given ones.
func (f Fluent[T]) Append(elements ...T) Fluent[T] {
	return f.derive(Chained[T](f.seq, From(elements)))
}

// AppendSequence yields the chain's elements followed by those of
// other. A nil other leaves the chain unchanged.
func (f Fluent[T]) AppendSequence(other Sequence[T]) Fluent[T] {
	return f.derive(Chained[T](f.seq, other))
}

// TransformTo maps f into a Fluent of another element type. A free
// function because Go methods cannot introduce type parameters.
func TransformTo[T, R comparable](f Fluent[T], fn func(T) R) Fluent[R] {
	if f.err != nil {
		return Fluent[R]{err: f.err}
	}

	seq, err := Transformed[T, R](f.seq, fn)
	if err != nil {
		return Fluent[R]{err: err}
	}

	return Fluent[R]{seq: seq}
}

// Eval traverses the chain once, eagerly, and returns a Fluent backed
// by a detached copy of the elements. This is the single sanctioned
// break of laziness: later mutation of the original backing source
// does not affect the result. The caller must bound infinite chains
// beforehand.
func (f Fluent[T]) Eval() Fluent[T] {
	elements, err := f.ToSlice()
	if err != nil {
		return Fluent[T]{err: err}
	}

	return Fluent[T]{seq: From(elements)}
}

// ToSlice traverses the chain once and collects every element into a
// fresh slice.
func (f Fluent[T]) ToSlice() ([]T, error) {
	r, err := f.reader()
	if err != nil {
		return nil, err
	}

	var elements []T
	for r.HasNext() {
		element, err := r.Next()
		if err != nil {
			return nil, err
		}

		elements = append(elements, element)
	}

	return elements, nil
}

// Size traverses the chain once and returns the number of elements.
func (f Fluent[T]) Size() (int, error) {
	r, err := f.reader()
	if err != nil {
		return 0, err
	}

	count := 0
	for r.HasNext() {
		if _, err := r.Next(); err != nil {
			return 0, err
		}

		count++
	}

	return count, nil
}

// IsEmpty reports whether the chain yields no elements.
func (f Fluent[T]) IsEmpty() (bool, error) {
	r, err := f.reader()
	if err != nil {
		return false, err
	}

	return !r.HasNext(), nil
}

// AnyMatch reports whether at least one element satisfies predicate.
// It is vacuously false on an empty chain and stops at the first match.
func (f Fluent[T]) AnyMatch(predicate func(T) bool) (bool, error) {
	r, err := f.reader()
	if err != nil {
		return false, err
	}
	if predicate == nil {
		return false, ErrNilArgument
	}

	for r.HasNext() {
		element, err := r.Next()
		if err != nil {
			return false, err
		}

		if predicate(element) {
			return true, nil
		}
	}

	return false, nil
}

// AllMatch reports whether every element satisfies predicate. It is
// vacuously true on an empty chain and stops at the first mismatch.
func (f Fluent[T]) AllMatch(predicate func(T) bool) (bool, error) {
	r, err := f.reader()
	if err != nil {
		return false, err
	}
	if predicate == nil {
		return false, ErrNilArgument
	}

	for r.HasNext() {
		element, err := r.Next()
		if err != nil {
			return false, err
		}

		if !predicate(element) {
			return false, nil
		}
	}

	return true, nil
}

// Contains reports whether the chain yields the given value.
func (f Fluent[T]) Contains(element T) (bool, error) {
	return f.AnyMatch(func(candidate T) bool { return candidate == element })
}

// Get returns the element at the given zero-based position. It returns
// ErrOutOfRange for a negative position or one beyond the last element.
func (f Fluent[T]) Get(position int) (T, error) {
	r, err := f.reader()
	if err != nil {
		return *new(T), err
	}
	if position < 0 {
		return *new(T), ErrOutOfRange
	}

	for i := 0; r.HasNext(); i++ {
		element, err := r.Next()
		if err != nil {
			return *new(T), err
		}

		if i == position {
			return element, nil
		}
	}

	return *new(T), ErrOutOfRange
}

// CopyInto appends every element of the chain to the caller-supplied
// container, which must be a non-nil pointer to a slice whose element
// type can hold T. An incompatible destination fails with
// ErrTypeMismatch before any element is appended.
func (f Fluent[T]) CopyInto(dst any) error {
	r, err := f.reader()
	if err != nil {
		return err
	}

	value := reflect.ValueOf(dst)
	if !value.IsValid() || value.Kind() != reflect.Pointer || value.IsNil() ||
		value.Elem().Kind() != reflect.Slice {
		return ErrTypeMismatch
	}

	slice := value.Elem()
	elementType := reflect.TypeOf((*T)(nil)).Elem()
	if !elementType.AssignableTo(slice.Type().Elem()) {
		return ErrTypeMismatch
	}

	for r.HasNext() {
		element, err := r.Next()
		if err != nil {
			return err
		}

		ev := reflect.ValueOf(element)
		if !ev.IsValid() {
			ev = reflect.Zero(slice.Type().Elem())
		}

		slice = reflect.Append(slice, ev)
	}

	value.Elem().Set(slice)

	return nil
}

// String renders the chain's elements as "[e1, e2, e3]". Rendering is
// best effort: a chain carrying a deferred error renders as "[]", since
// every other terminal surfaces the real error.
func (f Fluent[T]) String() string {
	elements, err := f.ToSlice()
	if err != nil {
		return "[]"
	}

	parts := make([]string, 0, len(elements))
	for _, element := range elements {
		parts = append(parts, fmt.Sprintf("%v", element))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// failedReader surfaces a deferred chain construction error through
// the reader protocol.
type failedReader[T any] struct {
	err error
}

func (r failedReader[T]) HasNext() bool {
	return false
}

func (r failedReader[T]) Next() (T, error) {
	return *new(T), r.err
}
