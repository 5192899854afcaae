// Package runner orchestrates the discover -> compress -> output pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/doccompress/internal/compressor"
	"github.com/donaldgifford/doccompress/internal/config"
	"github.com/donaldgifford/doccompress/internal/logging"
	"github.com/donaldgifford/doccompress/pkg/diff"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// Options configures the runner behavior.
type Options struct {
	// Paths are files, directories, or directories suffixed with "/..."
	// to walk recursively. With no paths, Run reads stdin.
	Paths      []string
	Check      bool
	Diff       bool
	Write      bool
	ConfigPath string
	Quiet      bool
	Verbose    bool

	// Configure, if set, adjusts the loaded config before validation.
	Configure func(cfg *config.Config)

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// result is the outcome of compressing one file.
type result struct {
	path   string
	input  string
	output string
	err    error
}

func (r *result) changed() bool {
	return r.err == nil && r.input != r.output
}

// Run executes the compress pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	log := opts.Logger
	if log == nil {
		log = logging.New(opts.Stderr, logging.Options{Verbose: opts.Verbose, Quiet: opts.Quiet})
		defer func() { _ = log.Sync() }()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Error("loading config", zap.Error(err))
		return ExitError
	}

	c := compressor.New(cfg.Compressor)
	log.Debug("pipeline ready", zap.Strings("rules", c.RuleNames()))

	// stdin mode: no paths given.
	if len(opts.Paths) == 0 {
		return runStdin(opts, log, c)
	}

	files, walkErrs := Discover(opts.Paths, &cfg.Runner)
	exitCode := ExitOK
	for _, err := range walkErrs {
		log.Error("discovering files", zap.Error(err))
		exitCode = ExitError
	}

	start := time.Now()
	results := compressFiles(ctx, opts, log, c, cfg.Runner.Jobs, files)

	var changed, saved int
	for _, r := range results {
		code := report(opts, log, r)
		exitCode = max(exitCode, code)
		if r.changed() {
			changed++
			saved += len(r.input) - len(r.output)
		}
	}

	log.Info("done",
		zap.Int("files", len(results)),
		zap.Int("changed", changed),
		zap.Int("bytes_saved", saved),
		zap.Duration("duration", time.Since(start)),
	)
	return exitCode
}

func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Configure != nil {
		opts.Configure(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runStdin(opts *Options, log *zap.Logger, c *compressor.Compressor) int {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		log.Error("reading stdin", zap.Error(err))
		return ExitError
	}

	input := string(src)
	output, err := c.CompressChecked(input)
	if err != nil {
		log.Warn("rules skipped", zap.String("path", "<stdin>"), zap.Error(err))
	}

	if opts.Check {
		if input != output {
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		d := diff.Unified("<stdin>", input, output)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	writeOut(opts.Stdout, output)
	return ExitOK
}

// compressFiles processes files concurrently, at most jobs at a time, and
// returns results in the order of files. Modified files are written back
// unless the run only checks or diffs.
func compressFiles(ctx context.Context, opts *Options, log *zap.Logger, c *compressor.Compressor, jobs int, files []string) []*result {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			results[i] = processFile(ctx, opts, log, c, path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func processFile(ctx context.Context, opts *Options, log *zap.Logger, c *compressor.Compressor, path string) *result {
	r := &result{path: path}
	if err := ctx.Err(); err != nil {
		r.err = err
		return r
	}

	info, err := os.Stat(path)
	if err != nil {
		r.err = err
		return r
	}
	src, err := os.ReadFile(path)
	if err != nil {
		r.err = err
		return r
	}

	r.input = string(src)
	r.output, err = c.CompressChecked(r.input)
	if err != nil {
		log.Warn("rules skipped", zap.String("path", path), zap.Error(err))
	}

	log.Debug("compressed file",
		zap.String("path", path),
		zap.Int("bytes_in", len(r.input)),
		zap.Int("bytes_out", len(r.output)),
		zap.Bool("changed", r.changed()),
	)

	if !r.changed() || opts.Check || (opts.Diff && !opts.Write) {
		return r
	}

	if err := os.WriteFile(path, []byte(r.output), info.Mode().Perm()); err != nil {
		r.err = fmt.Errorf("writing %s: %w", path, err)
	}
	return r
}

// report prints the outcome of one file and returns its exit code.
func report(opts *Options, log *zap.Logger, r *result) int {
	if r.err != nil {
		log.Error("compressing file", zap.String("path", r.path), zap.Error(r.err))
		return ExitError
	}

	if opts.Check {
		if r.changed() {
			if !opts.Quiet {
				writeOut(opts.Stderr, r.path+"\n")
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		if d := diff.Unified(r.path, r.input, r.output); d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
	}

	return ExitOK
}

// writeOut writes s to w.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}
