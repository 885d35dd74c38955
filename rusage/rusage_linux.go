//go:build linux

package rusage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PeakRSSKilobytes returns the process's peak resident set size in kilobytes.
// Stage 1 (Execute): getrusage(RUSAGE_SELF).
// Stage 2 (Finalize): Linux reports ru_maxrss in kilobytes already.
// Complexity: O(1) (one syscall).
func PeakRSSKilobytes() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("rusage: getrusage: %w", err)
	}

	// ru_maxrss unit on Linux is kilobytes (see getrusage(2)).
	return int64(ru.Maxrss), nil
}
