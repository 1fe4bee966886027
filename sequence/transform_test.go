// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"sequences/sequence"
)

func TestTransformed(t *testing.T) {
	t.Run("maps every element", func(t *testing.T) {
		s, err := sequence.Transformed(sequence.From([]int{1, 2, 3}), func(v int) int { return v * 10 })
		require.NoError(t, err)
		require.Equal(t, []int{10, 20, 30}, drain(t, s))
	})

	t.Run("changes element type", func(t *testing.T) {
		s, err := sequence.Transformed(sequence.From([]int{1, 2, 3}), strconv.Itoa)
		require.NoError(t, err)
		require.Equal(t, []string{"1", "2", "3"}, drain(t, s))
	})

	t.Run("delegates availability", func(t *testing.T) {
		s, err := sequence.Transformed(sequence.From([]int{}), strconv.Itoa)
		require.NoError(t, err)

		r := s.Reader()
		require.False(t, r.HasNext())

		_, err = r.Next()
		require.ErrorIs(t, err, sequence.ErrSequenceEnded)
	})

	t.Run("nil arguments", func(t *testing.T) {
		_, err := sequence.Transformed[int, string](nil, strconv.Itoa)
		require.ErrorIs(t, err, sequence.ErrNilArgument)

		_, err = sequence.Transformed[int, string](sequence.From([]int{1}), nil)
		require.ErrorIs(t, err, sequence.ErrNilArgument)
	})
}
