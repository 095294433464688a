package compile

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
	"github.com/grindlemire/go-autolayout/pkg/view"
)

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.layout.yaml", "root:\n  views:\n    a:\n      constraints:\n        edges: \"@super\"\n")
	bad := writeFile(t, dir, "bad.layout.yaml", "root:\n  views:\n    a:\n      constraints:\n        top: \"@nowhere\"\n")
	broken := writeFile(t, dir, "broken.layout.yaml", "root: [unclosed")
	shaky := writeFile(t, dir, "shaky.layout.yaml", "root:\n  colour: red\n  views:\n    a:\n      constraints:\n        top: \"@super\"\n")
	missing := filepath.Join(dir, "missing.layout.yaml")

	paths := []string{good, bad, broken, missing, shaky}
	results, err := CompileFiles(context.Background(), paths, Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}

	assert.False(t, results[0].Failed())
	assert.Len(t, results[0].Result.Specs, 4)

	assert.True(t, results[1].Failed())
	assert.NoError(t, results[1].Err)

	assert.Error(t, results[2].Err)
	assert.Nil(t, results[2].Result)

	assert.True(t, errors.Is(results[3].Err, fs.ErrNotExist))

	require.NotNil(t, results[4].Result)
	assert.True(t, results[4].Failed())
	diags := results[4].Result.Diagnostics.All()
	require.Len(t, diags, 1)
	assert.True(t, errors.Is(diags[0], constraint.ErrMalformedSource))
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Len(t, results[4].Result.Specs, 1)
}

func TestCompileFiles_EachFileHasItsOwnHierarchy(t *testing.T) {
	dir := t.TempDir()
	src := "root:\n  views:\n    a:\n      constraints:\n        top: \"@super\"\n"
	paths := []string{
		writeFile(t, dir, "one.layout.yaml", src),
		writeFile(t, dir, "two.layout.yaml", src),
	}

	results, err := CompileFiles(context.Background(), paths, Options{})
	require.NoError(t, err)

	a1, _ := results[0].Result.Index.Lookup("a")
	a2, _ := results[1].Result.Index.Lookup("a")
	assert.NotSame(t, a1, a2)
	assert.Equal(t, "one", results[0].Result.Root.Name)
	assert.Equal(t, "two", results[1].Result.Root.Name)
}

func TestCompileFiles_RejectsSharedHost(t *testing.T) {
	_, err := CompileFiles(context.Background(), []string{"x.layout.yaml"}, Options{Host: view.NewNode("host")})
	assert.ErrorIs(t, err, ErrSharedHost)
}

func TestCompileFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.layout.yaml", "root: {}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := CompileFiles(ctx, []string{path, path}, Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
