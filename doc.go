// Package omegawatt is a compact HPC micro-benchmark kit for dense square
// matrix multiplication — allocate, fill, multiply, and report wall-clock
// phases plus peak resident memory, with reproducible seeding.
//
// 🚀 What is OmegawattFramework-HPC?
//
//	A small, deterministic benchmark harness that brings together:
//		• Dense primitives: flat row-major N×N matrices with strict validation
//		• Kernels: the naive i→j→k multiplication, exactly as benchmarked
//		• Instrumentation: per-phase wall-clock timing + peak RSS in kilobytes
//		• Repetitions: mean/stddev aggregation across runs (gonum/stat)
//		• CLI: the smxm binary with scenario-stable four-line output
//
// ✨ Why choose omegawatt?
//
//   - Reproducible – explicit seed option; identical inputs ⇒ identical outputs
//   - Honest – the kernel under test is the plain triple loop, never a BLAS call
//   - Scriptable – stdout carries exactly four parseable lines; diagnostics
//     stay on stderr
//
// Under the hood, everything is organized under four packages:
//
//	matrix/   — Dense type, Mul/Identity/Randomize kernels & validators
//	rusage/   — peak resident set size query (getrusage)
//	bench/    — phase runner, functional options, report & summary
//	cmd/smxm/ — the command-line entry point
//
// Quick start:
//
//	go run ./cmd/smxm 512
//
// prints total, initialization and computation time in seconds, and peak
// memory usage in kilobytes. See bench/example_test.go for library usage.
package omegawatt
