// SPDX-License-Identifier: MIT
// Package bench: sentinel error set (unified, consistent).
// All entry points MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors in option
// constructors.

package bench

import "errors"

var (
	// ErrNonPositiveSize indicates a requested matrix order N ≤ 0.
	// Mirrors the CLI contract: "Matrix size must be a positive integer."
	ErrNonPositiveSize = errors.New("bench: matrix size must be a positive integer")

	// ErrNoResults indicates that Summarize received an empty result set.
	ErrNoResults = errors.New("bench: no results to summarize")

	// ErrNilResult indicates a nil *Result or *Summary passed to a report writer.
	ErrNilResult = errors.New("bench: nil result")
)
