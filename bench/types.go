// SPDX-License-Identifier: MIT

// Package bench: domain types produced by the runner. Options live in
// options.go and sentinel errors in errors.go per the package conventions.
package bench

import (
	"time"

	"github.com/urooj88/OmegawattFramework-HPC/matrix"
)

// Result captures one complete benchmark pass.
//
// The three matrices are retained so callers (and tests) can inspect the
// inputs and verify the product; they are owned by the Result and never
// aliased across runs.
type Result struct {
	// N is the order of the square matrices.
	N int

	// Seed is the effective RNG seed used to fill A and B; with
	// WithRepetitions the base seed advances by one per run.
	Seed int64

	// A and B are the pseudo-random input matrices; C = A×B.
	A, B, C *matrix.Dense

	// Total spans initialization, computation, and the instants between;
	// Init is measured from the same start as Total (it excludes
	// allocation, which happens before the clock starts); Compute has its
	// own start and stop around the multiplication only.
	Total, Init, Compute time.Duration

	// PeakRSSKB is the process's peak resident set size in kilobytes at
	// the end of the run; 0 when the platform query is unsupported.
	PeakRSSKB int64
}

// Summary aggregates timing statistics across repeated runs.
// All means and standard deviations are in seconds (sample stddev; a
// single-run summary reports zero spread).
type Summary struct {
	// Runs is the number of results aggregated.
	Runs int

	// N is the common matrix order of the aggregated runs.
	N int

	// Per-phase mean and sample standard deviation, in seconds.
	TotalMean, TotalStd     float64
	InitMean, InitStd       float64
	ComputeMean, ComputeStd float64

	// PeakRSSKB is the maximum observed peak RSS across runs; peak RSS is
	// a process-lifetime maximum, so the last run's value dominates.
	PeakRSSKB int64
}
