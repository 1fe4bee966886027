// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sequences/sequence"
)

func TestUnique(t *testing.T) {
	t.Run("removes duplicates keeping first occurrences", func(t *testing.T) {
		s, err := sequence.Unique(sequence.From([]int{3, 1, 3, 2, 1, 2, 4}))
		require.NoError(t, err)
		require.Equal(t, []int{3, 1, 2, 4}, drain(t, s))
	})

	t.Run("already distinct passes through", func(t *testing.T) {
		s, err := sequence.Unique(sequence.From([]string{"a", "b", "c"}))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, drain(t, s))
	})

	t.Run("all duplicates collapse to one", func(t *testing.T) {
		s, err := sequence.Unique(sequence.From([]int{5, 5, 5, 5}))
		require.NoError(t, err)
		require.Equal(t, []int{5}, drain(t, s))
	})

	t.Run("fresh readers do not share the seen-set", func(t *testing.T) {
		s, err := sequence.Unique(sequence.From([]int{1, 2, 1}))
		require.NoError(t, err)

		require.Equal(t, []int{1, 2}, drain(t, s))
		require.Equal(t, []int{1, 2}, drain(t, s))
	})

	t.Run("empty", func(t *testing.T) {
		s, err := sequence.Unique(sequence.From([]int{}))
		require.NoError(t, err)

		r := s.Reader()
		require.False(t, r.HasNext())

		_, err = r.Next()
		require.ErrorIs(t, err, sequence.ErrSequenceEnded)
	})

	t.Run("nil sequence", func(t *testing.T) {
		_, err := sequence.Unique[int](nil)
		require.ErrorIs(t, err, sequence.ErrNilArgument)
	})
}

func FuzzUnique(f *testing.F) {
	f.Add([]byte("some_data_here"))
	f.Add([]byte{1, 1, 2, 3, 1, 2})

	f.Fuzz(func(t *testing.T, orig []byte) {
		s, err := sequence.Unique(sequence.From(orig))
		if err != nil {
			t.Fatal(err)
		}

		seen := make(map[byte]bool)
		var firstOccurrences []byte
		for _, b := range orig {
			if !seen[b] {
				seen[b] = true
				firstOccurrences = append(firstOccurrences, b)
			}
		}

		var got []byte
		r := s.Reader()
		for r.HasNext() {
			b, err := r.Next()
			if err != nil {
				t.Fatal(err)
			}
			got = append(got, b)
		}

		require.Equal(t, firstOccurrences, got)
	})
}
