// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and conformable for the
// product a×b (a.Cols == b.Rows).
//
// Implementation: fixed sequence NotNil(a) → NotNil(b) → inner-dimension check.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	// Left operand must be present.
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	// Right operand must be present.
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	// Inner dimensions must agree.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareSameOrder ensures every matrix in ms is non-nil, square, and
// of the same order as the first. Used by the benchmark runner, where A, B
// and C must all be N×N for a single N.
//
// Implementation: single pass; fixed sequence NotNil → Square → order check.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(len(ms)).
func ValidateSquareSameOrder(ms ...Matrix) error {
	var order int // order of the first matrix, fixed after the first iteration
	for i, m := range ms {
		// Reject nil entries first.
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateSquareSameOrder", ErrNilMatrix)
		}
		// Each entry must be square.
		if err := ValidateSquare(m); err != nil {
			return err
		}
		// All entries must share the first entry's order.
		if i == 0 {
			order = m.Rows()
			continue
		}
		if m.Rows() != order {
			return validatorErrorf("ValidateSquareSameOrder", ErrDimensionMismatch)
		}
	}

	return nil
}
