// Package main is the entry point for doccompress.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/doccompress/internal/config"
	"github.com/donaldgifford/doccompress/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitCode := execute(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

// execute runs the root command with args and returns the process exit
// code. Usage errors exit with runner.ExitError.
func execute(ctx context.Context, args []string) int {
	exitCode := runner.ExitOK
	cmd := newRootCmd(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "doccompress: %v\nRun 'doccompress --help' for usage.\n", err)
		return runner.ExitError
	}
	return exitCode
}

// flags holds the command-line options. Compressor flags override the
// config file only when set explicitly.
type flags struct {
	check      bool
	diff       bool
	write      bool
	configPath string
	quiet      bool
	verbose    bool
	version    bool

	removeRegions bool
	removeTags    []string
	paramWords    int
	summaryWords  int
	newline       string
	jobs          int
}

func newRootCmd(exitCode *int) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "doccompress [flags] [paths...]",
		Short: "Compress C# documentation comments",
		Long: `doccompress shrinks XML documentation comments, region markers, decorative
separators, auto-property bodies and blank lines around braces in C# source.
Executable code is never altered.

With no paths, reads from stdin and writes to stdout. Files are rewritten in
place. A directory argument covers its .cs files; append "/..." to recurse.

Examples:
  # Compress every file under src
  doccompress src/...

  # Fail when anything would change
  doccompress --check src/...

  # Show what would change, also dropping one-word summaries
  doccompress --diff --summary-words 1 Program.cs`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				fmt.Fprintf(cmd.OutOrStdout(), "doccompress %s (%s) %s\n", version, commit, date)
				return nil
			}

			*exitCode = runner.Run(cmd.Context(), &runner.Options{
				Paths:      args,
				Check:      f.check,
				Diff:       f.diff,
				Write:      f.write,
				ConfigPath: f.configPath,
				Quiet:      f.quiet,
				Verbose:    f.verbose,
				Configure:  f.overrides(cmd),
				Stdin:      cmd.InOrStdin(),
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.check, "check", false, "exit 1 if any file would change; write nothing")
	fl.BoolVar(&f.diff, "diff", false, "print unified diff of changes")
	fl.BoolVarP(&f.write, "write", "w", false, "write result to file (default for paths; with --diff, write as well)")
	fl.StringVar(&f.configPath, "config", "", "path to config file")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "suppress informational output")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log files as they are processed")
	fl.BoolVar(&f.version, "version", false, "print version and exit")

	fl.BoolVar(&f.removeRegions, "remove-regions", true, "strip #region and #endregion lines")
	fl.StringSliceVar(&f.removeTags, "remove-tag", nil, "remove doc-comment blocks of this tag (repeatable)")
	fl.IntVar(&f.paramWords, "param-words", 0, "remove <param> lines of at most this many words")
	fl.IntVar(&f.summaryWords, "summary-words", 0, "remove one-line summaries of at most this many words")
	fl.StringVar(&f.newline, "newline", config.NewlineAuto, "line terminator for rewrites: auto, lf or crlf")
	fl.IntVarP(&f.jobs, "jobs", "j", 0, "files processed in parallel (0 = number of CPUs)")

	return cmd
}

// overrides returns a config hook applying every compressor and runner
// flag the user set explicitly.
func (f *flags) overrides(cmd *cobra.Command) func(*config.Config) {
	changed := cmd.Flags().Changed
	return func(cfg *config.Config) {
		if changed("remove-regions") {
			cfg.Compressor.RemoveRegions = f.removeRegions
		}
		if changed("remove-tag") {
			cfg.Compressor.RemoveTags = append(cfg.Compressor.RemoveTags, f.removeTags...)
		}
		if changed("param-words") {
			cfg.Compressor.RemoveParamNameUptoNWords = f.paramWords
		}
		if changed("summary-words") {
			cfg.Compressor.RemoveSummaryUptoNWords = f.summaryWords
		}
		if changed("newline") {
			cfg.Compressor.Newline = f.newline
		}
		if changed("jobs") {
			cfg.Runner.Jobs = f.jobs
		}
	}
}
