// SPDX-License-Identifier: MIT
// Package bench: the benchmark runner. One pass is a strict linear sequence
// — allocate, fill A, fill B, multiply, query peak RSS — with the phase
// boundaries of the original tool preserved exactly: initialization time is
// measured from the total-clock start (allocation precedes the clock), and
// computation has its own start and stop around the multiplication only.

package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/urooj88/OmegawattFramework-HPC/matrix"
	"github.com/urooj88/OmegawattFramework-HPC/rusage"
)

// Run executes a single benchmark pass for order n.
//
// Implementation:
//   - Stage 1: Validate n > 0; resolve options (seed, logger).
//   - Stage 2: Allocate A, B, and C up front; start the total
//     clock; fill A then B; mark init; multiply with its own clock; mark
//     total; query peak RSS (non-fatal on failure).
//
// Behavior highlights:
//   - Single-threaded, synchronous, no suspension points.
//   - A, B, C never alias; each Result owns its matrices.
//   - RSS query failure degrades to PeakRSSKB=0 with a logged warning,
//     never a failed run.
//
// Inputs:
//   - n: matrix order (> 0).
//   - opts: WithSeed, WithLogger (WithRepetitions is consumed by RunAll).
//
// Returns:
//   - *Result: timings, peak RSS, and the three matrices.
//
// Errors:
//   - ErrNonPositiveSize (n ≤ 0); allocation/kernel failures wrapped.
//
// Complexity:
//   - Time O(n³), Space O(n²) across three matrices.
func Run(n int, opts ...Option) (*Result, error) {
	// Validate the order before touching options or memory.
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	// Resolve effective configuration.
	o := gatherOptions(opts...)

	return run(n, o.seed, o)
}

// RunAll executes the configured number of repetitions for order n.
// The per-run seed advances by one from the base seed, so runs differ while
// the whole sequence stays reproducible from a single WithSeed value.
//
// Errors: ErrNonPositiveSize (n ≤ 0); the first failing run aborts the loop.
// Complexity: repetitions × O(n³).
func RunAll(n int, opts ...Option) ([]Result, error) {
	// Validate the order once for the whole batch.
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	// Resolve effective configuration once; all runs share it.
	o := gatherOptions(opts...)

	results := make([]Result, 0, o.repetitions)
	var i int
	for i = 0; i < o.repetitions; i++ {
		// Advance the seed per run: base, base+1, ...
		res, err := run(n, o.seed+int64(i), o)
		if err != nil {
			return nil, fmt.Errorf("run %d/%d: %w", i+1, o.repetitions, err)
		}
		results = append(results, *res)
	}

	return results, nil
}

// run is the single-pass body shared by Run and RunAll. The caller has
// validated n and resolved options; seed is the effective seed for this pass.
func run(n int, seed int64, o Options) (*Result, error) {
	o.logger.Debug().Int("n", n).Int64("seed", seed).Msg("benchmark pass starting")

	// Allocate all three matrices up front (outside the timed region, as in
	// the original tool). One flat allocation per matrix: failure is an
	// unrecoverable runtime abort, never a partially-built pointer graph.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("alloc A: %w", err)
	}
	b, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("alloc B: %w", err)
	}
	c, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("alloc C: %w", err)
	}

	// Fail fast if the matrices ever stop being same-order squares.
	if err = matrix.ValidateSquareSameOrder(a, b, c); err != nil {
		return nil, fmt.Errorf("validate matrices: %w", err)
	}

	// One explicit source per pass; no process-global RNG state.
	rng := rand.New(rand.NewSource(seed))

	// Phase clock starts here: everything below is on the total clock.
	startTotal := time.Now()

	// Phase 1+2: initialize A then B with pseudo-random values.
	if err = matrix.Randomize(a, rng); err != nil {
		return nil, fmt.Errorf("init A: %w", err)
	}
	if err = matrix.Randomize(b, rng); err != nil {
		return nil, fmt.Errorf("init B: %w", err)
	}
	// Initialization time is measured from the total start.
	initElapsed := time.Since(startTotal)

	// Phase 3: the multiplication, on its own clock. C is already owned by
	// this pass, so the timed region carries multiplication work only.
	startCompute := time.Now()
	if err = matrix.MulInto(c, a, b); err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}
	computeElapsed := time.Since(startCompute)

	// Total spans init, compute, and the instants between.
	totalElapsed := time.Since(startTotal)

	// Phase 4: peak RSS query; failure is logged, not fatal.
	peakKB, err := rusage.PeakRSSKilobytes()
	if err != nil {
		if !errors.Is(err, rusage.ErrUnsupported) {
			o.logger.Warn().Err(err).Msg("peak RSS query failed; reporting 0")
		}
		peakKB = 0
	}

	o.logger.Debug().
		Dur("total", totalElapsed).
		Dur("init", initElapsed).
		Dur("compute", computeElapsed).
		Int64("peak_rss_kb", peakKB).
		Msg("benchmark pass finished")

	return &Result{
		N:         n,
		Seed:      seed,
		A:         a,
		B:         b,
		C:         c,
		Total:     totalElapsed,
		Init:      initElapsed,
		Compute:   computeElapsed,
		PeakRSSKB: peakKB,
	}, nil
}
