// Package bench runs the serial matrix-multiplication benchmark: allocate
// two N×N matrices, fill them with pseudo-random values, multiply them with
// the naive triple loop, and capture per-phase wall-clock timing plus peak
// resident memory.
//
// 🚀 What does a run look like?
//
//	Straight-line execution with four ordered phases, each timestamped with
//	the monotonic process clock:
//	  1. init A   — pseudo-random fill
//	  2. init B   — pseudo-random fill
//	  3. multiply — C = A×B (the kernel under measurement)
//	  4. report   — peak RSS query + four-line stdout report
//
// ✨ Key features:
//   - explicit seeding (WithSeed) — identical seeds ⇒ identical matrices
//   - repetitions (WithRepetitions) with mean/stddev aggregation (gonum/stat)
//   - injected zerolog.Logger for phase diagnostics (defaults to Nop)
//   - scenario-stable report: exactly four lines, fixed wording
//
// ⚙️ Usage:
//
//	res, err := bench.Run(512, bench.WithSeed(42))
//	if err != nil { ... }
//	_ = bench.WriteReport(os.Stdout, res)
//
// Performance: one run costs O(N³) time and O(N²) memory; the only bound
// on execution time is N.
//
// See example_test.go for complete usage.
package bench
