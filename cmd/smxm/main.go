// Command smxm benchmarks serial dense N×N matrix multiplication.
//
// Usage:
//
//	smxm [flags] <matrix size>
//	smxm 512
//	smxm -seed 42 -reps 10 -v 1024
//
// The positional argument is the matrix order N (base-10, positive). On
// success, stdout carries exactly four lines: total time, initialization
// time, computation time (seconds), and peak memory usage (kilobytes).
// Diagnostics go to stderr; a missing or non-positive size exits with
// status 1 and a message on stderr.
//
// Flags:
//
//	-seed int  explicit RNG seed (wall clock when the flag is absent)
//	-reps int  repetitions; with reps > 1, stdout reports per-phase means
//	-v         verbose phase diagnostics on stderr, including per-run
//	           timings and standard deviations under -reps
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/urooj88/OmegawattFramework-HPC/bench"
)

// Exit codes of the CLI contract.
const (
	exitOK    = 0
	exitUsage = 1
)

// Stderr messages for rejected arguments.
const (
	errSizeMessage = "Matrix size must be a positive integer."
	errRepsMessage = "Repetitions must be a positive integer."
)

// Flag names. The seed flag's presence (not its value) decides whether the
// runner gets an explicit seed, so "-seed 0" pins seed 0.
const (
	seedFlagName = "seed"
	repsFlagName = "reps"
)

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain carries the whole CLI flow against injected argv and streams,
// returning the process exit code. Keeping os.Exit (and the process-global
// flag set) out of the flow makes the contract testable end to end.
func realMain(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(argv[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	seedFlag := fs.Int64(seedFlagName, bench.TimeBasedSeed, "RNG seed (wall clock when the flag is absent)")
	repsFlag := fs.Int(repsFlagName, bench.DefaultRepetitions, "number of benchmark repetitions")
	verbose := fs.Bool("v", false, "verbose phase diagnostics on stderr")

	// A free-standing "-<digits>" token is a (negative) size argument, not
	// a flag: "smxm -5" must report the size message, not a flag error.
	flags, sizeTail := splitNegativeSize(argv[1:])
	if err := fs.Parse(flags); err != nil {
		return exitUsage // flag package already wrote its message to stderr
	}
	positional := fs.Args()
	if len(positional) == 0 {
		positional = sizeTail
	}

	// The matrix size is the single positional argument.
	if len(positional) < 1 {
		fmt.Fprintf(stderr, "Usage: %s <matrix size>\n", argv[0])
		return exitUsage
	}
	n, err := parseSize(positional[0])
	if err != nil {
		fmt.Fprintln(stderr, errSizeMessage)
		return exitUsage
	}

	// WithRepetitions treats r < 1 as programmer error; reject it here so
	// a bad flag value exits cleanly instead of panicking.
	if *repsFlag < 1 {
		fmt.Fprintln(stderr, errRepsMessage)
		return exitUsage
	}

	// Diagnostics stay on stderr; stdout is reserved for the report.
	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	}

	opts := []bench.Option{
		bench.WithRepetitions(*repsFlag),
		bench.WithLogger(logger),
	}
	if seedWasSet(fs) {
		opts = append(opts, bench.WithSeed(*seedFlag))
	}

	results, err := bench.RunAll(n, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "smxm: %v\n", err)
		return exitUsage
	}

	// Single run: report it directly, preserving exact single-shot output.
	if len(results) == 1 {
		if err = bench.WriteReport(stdout, &results[0]); err != nil {
			fmt.Fprintf(stderr, "smxm: %v\n", err)
			return exitUsage
		}

		return exitOK
	}

	// Repetitions: stdout keeps the four-line shape (means); spreads and
	// per-run numbers go to the diagnostic stream.
	summary, err := bench.Summarize(results)
	if err != nil {
		fmt.Fprintf(stderr, "smxm: %v\n", err)
		return exitUsage
	}
	logger.Info().
		Int("runs", summary.Runs).
		Float64("total_std_s", summary.TotalStd).
		Float64("init_std_s", summary.InitStd).
		Float64("compute_std_s", summary.ComputeStd).
		Msg("repetition spread")
	if err = bench.WriteMeanReport(stdout, summary); err != nil {
		fmt.Fprintf(stderr, "smxm: %v\n", err)
		return exitUsage
	}

	return exitOK
}

// parseSize parses the positional matrix-size argument. Any value that is
// not a base-10 positive integer is rejected with bench.ErrNonPositiveSize.
func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, bench.ErrNonPositiveSize
	}

	return n, nil
}

// splitNegativeSize splits args at the first free-standing "-<digits>"
// token, which is a negative size argument rather than a flag. Values of
// the seed and reps flags are skipped, so a negative seed value is never
// mistaken for the size. A "--" terminator ends the scan: the flag parser
// already treats everything after it as positional.
func splitNegativeSize(args []string) (flags, tail []string) {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "--":
			return args, nil
		case isNegativeInt(a):
			return args[:i], args[i:]
		case a == "-"+seedFlagName || a == "--"+seedFlagName ||
			a == "-"+repsFlagName || a == "--"+repsFlagName:
			i++ // skip the flag's value token
		}
	}

	return args, nil
}

// isNegativeInt reports whether s is "-" followed by one or more digits.
func isNegativeInt(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// seedWasSet reports whether the seed flag appeared on the command line,
// so an explicit "-seed 0" pins seed 0 instead of the wall-clock default.
func seedWasSet(fs *flag.FlagSet) bool {
	var set bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == seedFlagName {
			set = true
		}
	})

	return set
}
