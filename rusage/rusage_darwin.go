//go:build darwin

package rusage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// bytesPerKilobyte converts Darwin's byte-denominated ru_maxrss to kilobytes.
const bytesPerKilobyte = 1024

// PeakRSSKilobytes returns the process's peak resident set size in kilobytes.
// Stage 1 (Execute): getrusage(RUSAGE_SELF).
// Stage 2 (Finalize): Darwin reports ru_maxrss in bytes; normalize to KB.
// Complexity: O(1) (one syscall).
func PeakRSSKilobytes() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("rusage: getrusage: %w", err)
	}

	// ru_maxrss unit on Darwin is bytes (see getrusage(2)).
	return int64(ru.Maxrss) / bytesPerKilobyte, nil
}
