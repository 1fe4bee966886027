// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sequences/sequence"
)

// drain pulls every element of s through a fresh reader.
func drain[T any](t *testing.T, s sequence.Sequence[T]) []T {
	t.Helper()

	var out []T
	r := s.Reader()
	for r.HasNext() {
		val, err := r.Next()
		require.NoError(t, err)
		out = append(out, val)
	}

	return out
}
