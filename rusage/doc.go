// Package rusage queries the operating system for the process's peak
// resident set size, normalized to kilobytes.
//
// The underlying call is getrusage(RUSAGE_SELF); platforms disagree on the
// unit of ru_maxrss (Linux reports kilobytes, Darwin reports bytes), so the
// per-GOOS files here normalize to kilobytes before returning. Platforms
// without a getrusage analogue return ErrUnsupported.
//
// Peak RSS is a process-lifetime maximum: successive calls are
// monotonically non-decreasing.
package rusage
