package compile

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
	"github.com/grindlemire/go-autolayout/pkg/layoutfile"
)

// ErrSharedHost is returned by CompileFiles when Options.Host is set; each
// concurrently compiled file needs a hierarchy of its own.
var ErrSharedHost = errors.New("a host hierarchy cannot be shared between files")

// FileResult is the outcome of compiling one file. Err is set when the
// file could not be read or is not valid YAML; Result is nil then.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// Failed reports whether the file could not be compiled or produced
// error diagnostics.
func (fr *FileResult) Failed() bool {
	return fr.Err != nil || (fr.Result != nil && fr.Result.Diagnostics.HasErrors())
}

// CompileFile parses and compiles a single layout file. Structural errors in
// the file are reported as diagnostics and compilation continues with what
// could be read.
func CompileFile(path string, opts Options) *FileResult {
	doc, err := layoutfile.ParseFile(path)
	if doc == nil {
		return &FileResult{Path: path, Err: err}
	}

	diags := constraint.NewDiagnosticList()
	reporter := constraint.Tee(diags, opts.Reporter)

	var list *layoutfile.ErrorList
	if errors.As(err, &list) {
		for _, e := range list.Errors() {
			d := constraint.Errorf(constraint.Position{File: e.Pos.File, Line: e.Pos.Line, Column: e.Pos.Column},
				constraint.ErrMalformedSource, "%s", e.Message)
			d.Hint = e.Hint
			reporter.Report(d)
		}
	} else if err != nil {
		return &FileResult{Path: path, Err: err}
	}

	return &FileResult{Path: path, Result: compile(doc, opts, diags)}
}

// CompileFiles compiles paths concurrently, at most opts.Workers at a time.
// A failing file never stops its siblings; results are in the order of paths.
// The returned error is only set when ctx is done or opts is unusable.
func CompileFiles(ctx context.Context, paths []string, opts Options) ([]*FileResult, error) {
	if opts.Host != nil {
		return nil, ErrSharedHost
	}

	results := make([]*FileResult, len(paths))
	var g errgroup.Group
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = &FileResult{Path: path, Err: fmt.Errorf("compiling %s: %w", path, err)}
				return nil
			}
			results[i] = CompileFile(path, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results, ctx.Err()
}
