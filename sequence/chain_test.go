// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sequences/sequence"
)

func TestChained(t *testing.T) {
	t.Run("concatenates in order", func(t *testing.T) {
		s, err := sequence.Chained(sequence.From([]int{1, 2}), sequence.From([]int{3, 4}))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3, 4}, drain(t, s))
	})

	t.Run("nil second passes first through", func(t *testing.T) {
		s, err := sequence.Chained[int](sequence.From([]int{1, 2}), nil)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, drain(t, s))
	})

	t.Run("empty first switches immediately", func(t *testing.T) {
		s, err := sequence.Chained(sequence.From([]int{}), sequence.From([]int{3, 4}))
		require.NoError(t, err)

		r := s.Reader()
		require.True(t, r.HasNext())

		val, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, 3, val)
	})

	t.Run("both empty", func(t *testing.T) {
		s, err := sequence.Chained(sequence.From([]int{}), sequence.From([]int{}))
		require.NoError(t, err)

		r := s.Reader()
		require.False(t, r.HasNext())

		_, err = r.Next()
		require.ErrorIs(t, err, sequence.ErrSequenceEnded)
	})

	t.Run("second reader obtained only on switch-over", func(t *testing.T) {
		second := &singleUseSequence[int]{elements: []int{9}}
		s, err := sequence.Chained[int](sequence.From([]int{1}), second)
		require.NoError(t, err)

		r := s.Reader()
		require.False(t, second.used)

		_, _ = r.Next()
		require.True(t, r.HasNext())
		require.True(t, second.used)

		val, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, 9, val)
		require.False(t, r.HasNext())
	})

	t.Run("nil first", func(t *testing.T) {
		_, err := sequence.Chained[int](nil, sequence.From([]int{1}))
		require.ErrorIs(t, err, sequence.ErrNilArgument)
	})
}
