package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-autolayout/pkg/compile"
)

var errNoLayoutFiles = errors.New("no layout files found")

func newCompileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compile [path...]",
		Short: "Resolve layout files and print their constraints",
		Long: `Resolves every constraint of the given layout files and prints the
resulting equations. Constraints whose size-class condition does not match
--horizontal/--vertical are marked inactive. Exits non-zero if any file
had errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.compileAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			failed := writeDiagnostics(a.stderr, results)
			if err := writeResults(a.stdout, a.cfg.Format, results); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) had errors", failed)
			}
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path...]",
		Short: "Check layout files without printing constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.compileAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			if failed := writeDiagnostics(a.stderr, results); failed > 0 {
				return fmt.Errorf("%d file(s) had errors", failed)
			}
			if a.verbose {
				fmt.Fprintf(a.stdout, "All %d file(s) passed checks\n", len(results))
			}
			return nil
		},
	}
}

// compileAll collects the layout files named by args and compiles them.
func (a *app) compileAll(ctx context.Context, args []string) ([]*compile.FileResult, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := collectLayoutFiles(args, a.cfg.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errNoLayoutFiles
	}
	a.logger.Debug("compiling layout files", zap.Int("count", len(files)), zap.Strings("files", files))

	if ctx == nil {
		ctx = context.Background()
	}
	results, err := compile.CompileFiles(ctx, files, a.options())
	if err != nil {
		return nil, err
	}

	for _, fr := range results {
		if fr.Result != nil {
			a.logger.Debug("compiled",
				zap.String("file", fr.Path),
				zap.Int("constraints", len(fr.Result.Specs)),
				zap.Int("diagnostics", fr.Result.Diagnostics.Len()),
			)
		}
	}
	return results, nil
}
