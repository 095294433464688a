package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-autolayout/internal/logging"
	"github.com/grindlemire/go-autolayout/internal/watch"
	"github.com/grindlemire/go-autolayout/pkg/compile"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path...]",
		Short: "Recompile layout files as they change",
		Long: `Compiles the given layout files, then watches them and recompiles
whatever changes. Diagnostics are written to the log. A change to a file
outside the compiled set, such as a template, recompiles everything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, args)
		},
	}
}

func (a *app) watch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	reporter := logging.NewReporter(a.logger)

	recompile := func(files []string) {
		opts := a.options()
		opts.Reporter = reporter
		results, err := compile.CompileFiles(ctx, files, opts)
		if err != nil {
			a.logger.Warn("compilation interrupted", zap.Error(err))
			return
		}
		for _, fr := range results {
			if fr.Err != nil {
				a.logger.Error("compile failed", zap.String("file", fr.Path), zap.Error(fr.Err))
				continue
			}
			a.logger.Info("compiled",
				zap.String("file", fr.Path),
				zap.Int("constraints", len(fr.Result.Specs)),
				zap.Bool("ok", !fr.Failed()),
			)
		}
	}

	files, err := collectLayoutFiles(args, a.cfg.Exclude)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		recompile(files)
	}

	cfg := watch.DefaultConfig()
	cfg.Debounce = a.cfg.WatchDebounce
	cfg.Exclude = append(cfg.Exclude, a.cfg.Exclude...)

	w, err := watch.New(cfg, a.logger, func(events []watch.FileEvent) {
		a.onChange(events, args, recompile)
	})
	if err != nil {
		return err
	}
	for _, arg := range args {
		root, recursive := watchRoot(arg)
		if err := w.Add(root, recursive); err != nil {
			return err
		}
	}
	for _, dir := range a.cfg.TemplateDirs {
		if err := w.Add(dir, false); err != nil {
			a.logger.Warn("cannot watch template directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	a.logger.Info("watching for changes", zap.Strings("roots", w.Roots()))
	return w.Run(ctx)
}

// onChange recompiles the files affected by a batch of events.
func (a *app) onChange(events []watch.FileEvent, args []string, recompile func([]string)) {
	files, err := collectLayoutFiles(args, a.cfg.Exclude)
	if err != nil {
		a.logger.Error("collecting layout files", zap.Error(err))
		return
	}

	var changed []string
	all := false
	for _, e := range events {
		if a.library != nil {
			a.library.Invalidate(e.Path)
		}
		if e.Removed() {
			a.logger.Info("layout file removed", zap.String("file", e.Path))
			continue
		}
		if path := filepath.Clean(e.Path); slices.Contains(files, path) {
			changed = append(changed, path)
		} else {
			all = true
		}
	}
	if all {
		changed = files
	}
	if len(changed) > 0 {
		recompile(changed)
	}
}
