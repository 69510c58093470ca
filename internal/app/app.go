// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"seqdedupe-core/dedupe"
	"seqdedupe-core/fasta"
	"seqdedupe-core/seq"
	"seqdedupe/internal/cli"
	"seqdedupe/internal/writers"
)

// runError marks a failure after flag parsing succeeded, so the caller can
// tell runtime failures (exit 1) apart from usage errors (exit 2).
type runError struct{ err error }

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// RunContext parses argv, runs the dedupe pipeline and returns a process
// exit code: 0 success, 1 runtime failure, 2 usage error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewCommand(func(opts cli.Options) error {
		logger, err := newLogger(stderr, opts)
		if err != nil {
			return err
		}
		if err := runPipeline(parent, opts, stdout, logger); err != nil {
			return &runError{err}
		}
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	var rerr *runError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return 130
	case errors.As(err, &rerr):
		_, _ = fmt.Fprintf(stderr, "seqdedupe: %v\n", rerr.err)
		return 1
	default:
		_, _ = fmt.Fprintf(stderr, "seqdedupe: %v\nRun 'seqdedupe --help' for usage.\n", err)
		return 2
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newLogger(stderr io.Writer, opts cli.Options) (*log.Logger, error) {
	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	if opts.Quiet {
		logger.SetLevel(log.ErrorLevel)
		return logger, nil
	}
	lvl, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", opts.LogLevel)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func runPipeline(ctx context.Context, opts cli.Options, stdout io.Writer, logger *log.Logger) error {
	logger.Info("reading FASTA file", "path", opts.Input)
	records, err := fasta.ReadPath(opts.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.Input, err)
	}
	logger.Info("found sequences", "count", len(records))
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("removing exact duplicates")
	unique, err := dedupe.Exact(records, opts.DNA)
	if err != nil {
		return err
	}
	logger.Info("removed exact duplicates", "before", len(records), "after", len(unique))
	logMemUsage(logger)
	if err := ctx.Err(); err != nil {
		return err
	}

	final := unique
	if opts.Substring {
		logger.Info("removing substring sequences")
		final, err = dedupe.Substrings(unique, opts.DNA)
		if err != nil {
			return err
		}
		logger.Info("removed substring sequences", "before", len(unique), "after", len(final))
		logMemUsage(logger)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	logger.Info("final unique sequences", "count", len(final))

	return writeOutput(opts.Output, stdout, final)
}

func writeOutput(path string, stdout io.Writer, records []seq.Record) error {
	if path == "" {
		if err := fasta.Write(stdout, records); err != nil && !writers.IsBrokenPipe(err) {
			return err
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fasta.Write(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func logMemUsage(logger *log.Logger) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	logger.Debug("memory usage", "heap_alloc_mb", ms.HeapAlloc>>20, "sys_mb", ms.Sys>>20)
}
