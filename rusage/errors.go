// SPDX-License-Identifier: MIT
// Package rusage: sentinel error set. Callers match via errors.Is.

package rusage

import "errors"

// ErrUnsupported indicates that the current platform has no getrusage
// analogue wired here; callers should degrade gracefully (the benchmark
// reports 0 kilobytes rather than failing the run).
var ErrUnsupported = errors.New("rusage: peak RSS query unsupported on this platform")
