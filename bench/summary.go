// SPDX-License-Identifier: MIT
// Package bench: aggregation across repeated runs. Mean and sample standard
// deviation per timing phase (gonum/stat), maximum for peak RSS.

package bench

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates a non-empty result slice into per-phase statistics.
//
// Implementation:
//   - Stage 1: Validate len(rs) > 0.
//   - Stage 2: Collect per-phase seconds into flat slices; compute
//     stat.Mean / stat.StdDev; track the max peak RSS.
//
// Behavior highlights:
//   - Sample standard deviation (n−1 denominator); a single run reports
//     zero spread rather than NaN.
//   - N and Runs are taken from the input; mixed-order slices are not
//     rejected here (the runner never produces them).
//
// Errors:
//   - ErrNoResults on an empty slice.
//
// Complexity:
//   - Time O(len(rs)), Space O(len(rs)) for the staging slices.
func Summarize(rs []Result) (*Summary, error) {
	// Validate input presence.
	if len(rs) == 0 {
		return nil, fmt.Errorf("Summarize: %w", ErrNoResults)
	}

	// Stage per-phase observations in seconds.
	n := len(rs)
	totals := make([]float64, n)
	inits := make([]float64, n)
	computes := make([]float64, n)
	var peakKB int64
	for i, r := range rs {
		totals[i] = r.Total.Seconds()
		inits[i] = r.Init.Seconds()
		computes[i] = r.Compute.Seconds()
		if r.PeakRSSKB > peakKB {
			peakKB = r.PeakRSSKB // peak RSS is a lifetime max; keep the largest
		}
	}

	s := &Summary{
		Runs:        n,
		N:           rs[0].N,
		TotalMean:   stat.Mean(totals, nil),
		InitMean:    stat.Mean(inits, nil),
		ComputeMean: stat.Mean(computes, nil),
		PeakRSSKB:   peakKB,
	}
	// Sample stddev needs at least two observations; one run means zero spread.
	if n > 1 {
		s.TotalStd = stat.StdDev(totals, nil)
		s.InitStd = stat.StdDev(inits, nil)
		s.ComputeStd = stat.StdDev(computes, nil)
	}

	return s, nil
}
