// Package matrix provides the dense square-matrix primitive and the
// multiplication kernel benchmarked by this module.
//
// The package offers:
//
//   - Dense, a flat row-major float64 matrix with O(1) bounds-checked
//     element access and a single contiguous backing allocation.
//   - Mul, the naive i→j→k matrix product with a deterministic loop order
//     and a zero-initialized accumulator — the kernel under measurement.
//   - Identity and Randomize helpers for building benchmark inputs.
//
// All kernels accept the Matrix interface, fast-path on *Dense, and return
// plain sentinel errors (see errors.go) wrapped with an operation tag, so
// callers match failures via errors.Is.
//
// Determinism: every loop order in this package is fixed and
// data-independent; given equal inputs (and equal rand sources for
// Randomize), results are bit-for-bit identical across runs.
package matrix
