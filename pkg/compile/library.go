package compile

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
	"github.com/grindlemire/go-autolayout/pkg/layoutfile"
)

// DefaultLibrarySize is the template cache size used when none is given.
const DefaultLibrarySize = 128

// Library loads templates from directories of layout files. A template
// named "card" is the root view of card.layout.yaml (or .yml, .json) in the
// first directory that has one. Parsed templates are cached; Library is safe
// for concurrent use.
type Library struct {
	dirs  []string
	cache *lru.Cache[string, *layoutfile.View]
}

var _ TemplateSource = (*Library)(nil)

// NewLibrary creates a library over dirs caching up to size templates.
func NewLibrary(dirs []string, size int) (*Library, error) {
	if size <= 0 {
		size = DefaultLibrarySize
	}
	cache, err := lru.New[string, *layoutfile.View](size)
	if err != nil {
		return nil, fmt.Errorf("creating template cache: %w", err)
	}
	return &Library{dirs: dirs, cache: cache}, nil
}

// Lookup returns the template with the given name. The error wraps
// constraint.ErrUnknownTemplate when no directory has it.
func (l *Library) Lookup(name string) (*layoutfile.View, error) {
	if v, ok := l.cache.Get(name); ok {
		return v, nil
	}

	for _, dir := range l.dirs {
		for _, ext := range layoutfile.Extensions {
			path := filepath.Join(dir, name+ext)
			doc, err := layoutfile.ParseFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if doc == nil || doc.Root == nil {
				return nil, fmt.Errorf("loading template %q: %w", name, err)
			}
			// Structural errors in a template file are reported when the
			// file itself is compiled; the usable part is still applied.
			l.cache.Add(name, doc.Root)
			return doc.Root, nil
		}
	}
	return nil, fmt.Errorf("%w %q", constraint.ErrUnknownTemplate, name)
}

// Invalidate drops the cached template defined by the file at path.
func (l *Library) Invalidate(path string) {
	if !layoutfile.IsLayoutFile(path) {
		return
	}
	l.cache.Remove(layoutfile.NameFromPath(path))
}

// Purge drops every cached template.
func (l *Library) Purge() {
	l.cache.Purge()
}

// Len returns the number of cached templates.
func (l *Library) Len() int {
	return l.cache.Len()
}
