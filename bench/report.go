// SPDX-License-Identifier: MIT
// Package bench: the four-line stdout report. The wording and formats are a
// scenario-testing contract and reproduce the original tool byte-for-byte:
//
//	Total time: %f seconds
//	Initialization time: %f seconds
//	Computation time: %f seconds
//	Memory usage: %d kilobytes
//
// Keep diagnostics out of this writer; they belong on the logger (stderr).

package bench

import (
	"fmt"
	"io"
)

// Report line formats. These are pinned; changing them breaks downstream
// harnesses that parse the benchmark's stdout.
const (
	fmtTotalLine   = "Total time: %f seconds\n"
	fmtInitLine    = "Initialization time: %f seconds\n"
	fmtComputeLine = "Computation time: %f seconds\n"
	fmtMemoryLine  = "Memory usage: %d kilobytes\n"
)

// WriteReport writes the four report lines for a single run.
// Stage 1 (Validate): non-nil result.
// Stage 2 (Execute): emit the four pinned lines in order.
// Errors: ErrNilResult; writer failures wrapped.
// Complexity: O(1).
func WriteReport(w io.Writer, res *Result) error {
	// Validate input presence.
	if res == nil {
		return fmt.Errorf("WriteReport: %w", ErrNilResult)
	}

	// Emit the four lines in the pinned order.
	if _, err := fmt.Fprintf(w, fmtTotalLine, res.Total.Seconds()); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	if _, err := fmt.Fprintf(w, fmtInitLine, res.Init.Seconds()); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	if _, err := fmt.Fprintf(w, fmtComputeLine, res.Compute.Seconds()); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	if _, err := fmt.Fprintf(w, fmtMemoryLine, res.PeakRSSKB); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}

	return nil
}

// WriteMeanReport writes the same four-line shape from repetition means, so
// harnesses parse identical output whether one run or many were executed.
// The memory line carries the maximum observed peak RSS (a process-lifetime
// maximum is not meaningfully averaged).
// Errors: ErrNilResult; writer failures wrapped.
// Complexity: O(1).
func WriteMeanReport(w io.Writer, s *Summary) error {
	// Validate input presence.
	if s == nil {
		return fmt.Errorf("WriteMeanReport: %w", ErrNilResult)
	}

	// Emit the four lines in the pinned order, from means.
	if _, err := fmt.Fprintf(w, fmtTotalLine, s.TotalMean); err != nil {
		return fmt.Errorf("WriteMeanReport: %w", err)
	}
	if _, err := fmt.Fprintf(w, fmtInitLine, s.InitMean); err != nil {
		return fmt.Errorf("WriteMeanReport: %w", err)
	}
	if _, err := fmt.Fprintf(w, fmtComputeLine, s.ComputeMean); err != nil {
		return fmt.Errorf("WriteMeanReport: %w", err)
	}
	if _, err := fmt.Fprintf(w, fmtMemoryLine, s.PeakRSSKB); err != nil {
		return fmt.Errorf("WriteMeanReport: %w", err)
	}

	return nil
}
