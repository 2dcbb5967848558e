// Package main implements gofind, a find-style directory lister.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/gofind/internal/config"
	"github.com/taigrr/gofind/internal/finder"
	"github.com/taigrr/gofind/internal/output"
	"github.com/taigrr/gofind/internal/types"
	"github.com/taigrr/gofind/internal/version"
	"github.com/taigrr/gofind/internal/walker"
)

type findOptions struct {
	filters    types.FilterConfig
	format     string
	print0     bool
	configPath string
	logLevel   string
	quiet      bool
}

func main() {
	cmd := newCommand()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version.Get()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "gofind [root] [-type d|f] [-name pattern] [-iname pattern]",
		Short: "Recursively list directory entries",
		Long: `gofind walks a directory tree and prints every entry beneath the root,
root included, one path per line. Entries can be filtered by type and by
base name. Filters combine with AND.

Name patterns support a single wildcard, '*', matching any run of
characters. Every other character matches literally. -iname ignores case.`,
		Example: `gofind src -type f -name '*.go'
gofind . -iname 'readme*'
gofind /var/log -type d --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.filters.Type, "type", "", "only list entries of this type: d (directory) or f (anything else)")
	flags.StringVar(&opts.filters.Name, "name", "", "only list entries whose base name matches pattern")
	flags.StringVar(&opts.filters.IName, "iname", "", "like -name, but case-insensitive")
	flags.StringVarP(&opts.format, "format", "o", "", "output format: lines, null, json or yaml")
	flags.BoolVar(&opts.print0, "print0", false, "terminate paths with NUL instead of newline (same as --format null)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gofind/gofind.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not report unreadable directories")

	return cmd
}

func runFind(cmd *cobra.Command, args []string, opts *findOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if opts.print0 {
		cfg.Format = string(output.FormatNull)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("quiet") {
		cfg.Quiet = opts.quiet
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	filters := cfg.Filters.Merge(opts.filters)
	logger.Debug("starting walk", "root", root, "type", filters.Type, "name", filters.Name, "iname", filters.IName)

	w := output.NewWriter(cmd.OutOrStdout(), format)
	stats, err := finder.Find(cmd.Context(), root, filters, func(e types.Entry) error {
		return w.Write(e.Path)
	}, walker.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("walk complete", "visited", stats.Visited, "matched", stats.Matched, "skipped", stats.Skipped)
	return nil
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Quiet {
		level = max(level, slog.LevelError)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
