// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/urooj88/OmegawattFramework-HPC/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other
//     one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustSquare ALLOCATES an n×n *Dense or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.NewSquare(n).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(n²) zeroing by runtime, Space O(n²).
func MustSquare(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	if err != nil {
		t.Fatalf("NewSquare(%d): %v", n, err)
	}

	return m
}

// MustIdentity RETURNS an n×n identity *Dense (main diagonal = 1, else 0).
// Errors: fatal test failure if allocation fails.
// Determinism: deterministic pattern (no RNG).
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// NewFilledSquare BUILDS an n×n *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==n*n (fatal otherwise).
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*n+j]).
//
// Determinism: deterministic fixture creation with explicit values.
func NewFilledSquare(t *testing.T, n int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != n*n {
		t.Fatalf("NewFilledSquare: want %d values, got %d", n*n, len(vals))
	}
	m := MustSquare(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, vals[i*n+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// newRand RETURNS a fresh explicit source for tests; never process-global.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// MustRandomize FILLS m from a fresh source seeded with seed (fatal on error).
// Determinism: equal seeds produce equal fills.
func MustRandomize(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	if err := matrix.Randomize(m, newRand(seed)); err != nil {
		t.Fatalf("Randomize: %v", err)
	}
}
