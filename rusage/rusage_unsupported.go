//go:build !linux && !darwin

package rusage

// PeakRSSKilobytes reports ErrUnsupported on platforms without a wired
// getrusage analogue; callers degrade to a 0-kilobyte report.
func PeakRSSKilobytes() (int64, error) {
	return 0, ErrUnsupported
}
