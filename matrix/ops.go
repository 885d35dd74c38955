// SPDX-License-Identifier: MIT
// Package matrix: computational kernels for the benchmark — the naive
// matrix product, identity construction, and pseudo-random fill. All
// kernels perform strict fail-fast validation via the central validators
// and return sentinel errors wrapped with an operation tag.

package matrix

import (
	"fmt"
	"math/rand"
)

// randUpper is the exclusive upper bound for Randomize draws; cells hold
// integer values in [0, randUpper) cast to float64.
const randUpper = 100

// ZeroSum is the initial accumulator value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulInto   = "MulInto"
	opIdentity  = "Identity"
	opRandomize = "Randomize"
)

// panicNilRand is raised when Randomize receives a nil rand source
// (programmer error, mirroring the options-constructor convention).
const panicNilRand = "matrix: Randomize: rng must be non-nil"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Run the canonical triple loop in fixed i→j→k order with a
//     zero-initialized accumulator per output cell. If A and B are *Dense,
//     operate directly on the flat backing slices; otherwise fall back to
//     At with the identical loop order.
//
// Behavior highlights:
//   - The i→j→k order is the contract, not an implementation detail: this
//     kernel is the object under measurement, so no tiling, reordering, or
//     zero-skipping is applied on either path.
//   - Deterministic given fixed A, B; one allocation for C; O(1) extra space.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→j→k on both paths; fast path and fallback are
//     bit-for-bit identical.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Delegate to the shared kernel.
	if err = mulInto(res, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Return result
	return res, nil
}

// MulInto computes dst = A × B into a caller-owned destination, mirroring
// the original tool's flow where C is allocated before the timed region
// and the kernel only zero-initializes and accumulates each cell.
//
// Implementation:
//   - Stage 1: Validate A,B conformable; dst non-nil with shape
//     (A.Rows × B.Cols).
//   - Stage 2: Run the shared i→j→k kernel; prior dst contents are
//     overwritten cell by cell.
//
// Behavior highlights:
//   - No allocation on any path: this is the entry the benchmark runner
//     times, so the compute phase carries multiplication work only.
//   - dst must not alias a or b (the runner never does; not checked).
//
// Errors:
//   - ErrNilMatrix (nil operand or destination),
//     ErrDimensionMismatch (inner or destination shape mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(1).
func MulInto(dst, a, b Matrix) error {
	// Validate operands via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	// Validate destination presence and shape.
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return matrixErrorf(opMulInto, ErrDimensionMismatch)
	}

	// Delegate to the shared kernel.
	if err := mulInto(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	return nil
}

// mulInto is the shared multiplication kernel behind Mul and MulInto.
// The caller has validated shapes; dst is overwritten in fixed i→j→k order.
func mulInto(dst, a, b Matrix) error {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()

	var (
		i, j, k int     // loop iterators (deterministic i→j→k order)
		sum     float64 // per-cell accumulator
		av, bv  float64 // element temporaries
		err     error
	)
	// Fast-path when all three operands are *Dense: flat row-major indexing.
	if dd, okD := dst.(*Dense); okD {
		if da, okA := a.(*Dense); okA {
			if db, okB := b.(*Dense); okB {
				// da.data layout: i*aCols + k
				// db.data layout: k*bCols + j
				var rowOffsetA, rowOffsetR int
				for i = 0; i < aRows; i++ {
					rowOffsetA = i * aCols
					rowOffsetR = i * bCols
					for j = 0; j < bCols; j++ {
						sum = ZeroSum // zero-initialize the output cell
						for k = 0; k < aCols; k++ {
							sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
						}
						dd.data[rowOffsetR+j] = sum
					}
				}

				return nil
			}
		}
	}

	// Fallback: generic interface triple-loop (same i→j→k order).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				bv, err = b.At(k, j)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				sum += av * bv // accumulate product
			}
			if err = dst.Set(i, j, sum); err != nil {
				return fmt.Errorf("Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}

// Identity returns the n×n identity matrix I_n.
// Stage 1 (Validate): n > 0 via NewSquare.
// Stage 2 (Execute): set the diagonal to 1 with flat indexing.
// Errors: ErrInvalidDimensions.
// Complexity: O(n²) allocation, O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	// Allocate zeroed n×n storage (validates n > 0).
	res, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	// Set the diagonal: I[i,i] = 1.
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1.0
	}

	return res, nil
}

// Randomize fills every cell of m, row-major, with a pseudo-random integer
// in [0, 100) cast to float64, drawn from the supplied source.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); panic on nil rng (programmer error).
//   - Stage 2: Fast-path if *Dense — single flat loop; else i→j via Set.
//
// Behavior highlights:
//   - The source is explicit: equal seeds ⇒ equal matrices, which makes
//     benchmark inputs reproducible without any process-global state.
//   - Draw order is row-major on both paths, so fast path and fallback
//     consume the source identically.
//
// Errors:
//   - ErrNilMatrix (nil input). A nil rng panics with a stable message.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Randomize(m Matrix, rng *rand.Rand) error {
	// Validate target matrix
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRandomize, err)
	}
	// A nil source is a programmer error, not a runtime condition.
	if rng == nil {
		panic(panicNilRand)
	}

	// Fast-path: *Dense → single flat loop over backing storage.
	if dm, ok := m.(*Dense); ok {
		n := dm.r * dm.c
		for idx := 0; idx < n; idx++ { // row-major == flat order for Dense
			dm.data[idx] = float64(rng.Intn(randUpper))
		}

		return nil
	}

	// Fallback: generic interface loop with fixed i→j order.
	var i, j int
	var err error
	rows, cols := m.Rows(), m.Cols()
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, float64(rng.Intn(randUpper))); err != nil {
				return matrixErrorf(opRandomize, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
