// Package matrix_test contains unit tests for the canonical validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urooj88/OmegawattFramework-HPC/matrix"
)

// TestValidateNotNil covers the nil sentinel and the accepting path.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustSquare(t, 2)))
}

// TestValidateSquare distinguishes square from rectangular shapes.
func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustSquare(t, 3)))

	rect, err := matrix.NewDense(2, 3) // deliberately rectangular
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible covers nil operands and inner-dimension checks.
func TestValidateMulCompatible(t *testing.T) {
	a := MustSquare(t, 3)

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)

	b := MustSquare(t, 4)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, b), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(a, MustSquare(t, 3)))
}

// TestValidateSquareSameOrder covers the benchmark's all-square invariant.
func TestValidateSquareSameOrder(t *testing.T) {
	a, b, c := MustSquare(t, 5), MustSquare(t, 5), MustSquare(t, 5)
	require.NoError(t, matrix.ValidateSquareSameOrder(a, b, c))

	// A nil entry anywhere fails with the nil sentinel.
	require.ErrorIs(t, matrix.ValidateSquareSameOrder(a, nil), matrix.ErrNilMatrix)

	// A rectangular entry fails the square check.
	rect, err := matrix.NewDense(5, 6)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquareSameOrder(a, rect), matrix.ErrDimensionMismatch)

	// A square of a different order fails the common-order check.
	other := MustSquare(t, 6)
	require.ErrorIs(t, matrix.ValidateSquareSameOrder(a, b, other), matrix.ErrDimensionMismatch)

	// The empty list is vacuously valid.
	require.NoError(t, matrix.ValidateSquareSameOrder())
}
