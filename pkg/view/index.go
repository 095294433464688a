package view

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateName is returned when two views in one index share a name.
var ErrDuplicateName = errors.New("duplicate view name")

// Resolver maps a symbolic name to a view handle.
type Resolver interface {
	Lookup(name string) (*Node, bool)
}

// Index maps view names to nodes within one hierarchy. It is read-only
// during a constraint pass and is not safe for concurrent mutation; each
// hierarchy compiled concurrently needs its own Index.
type Index struct {
	root  *Node
	views map[string]*Node
}

var _ Resolver = (*Index)(nil)

// NewIndex creates an empty index rooted at root (which may be nil).
func NewIndex(root *Node) *Index {
	return &Index{root: root, views: make(map[string]*Node)}
}

// IndexTree indexes root and every descendant. Duplicate names keep the
// first node in depth-first order and are returned as errors.
func IndexTree(root *Node) (*Index, error) {
	idx := NewIndex(root)
	var errs []error
	root.Walk(func(n *Node) bool {
		if err := idx.Register(n); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return idx, errors.Join(errs...)
}

// Register adds n under its name.
func (i *Index) Register(n *Node) error {
	if n == nil || n.Name == "" {
		return nil
	}
	if existing, ok := i.views[n.Name]; ok && existing != n {
		return fmt.Errorf("%w: %q (%s and %s)", ErrDuplicateName, n.Name, existing.Path(), n.Path())
	}
	i.views[n.Name] = n
	return nil
}

// Lookup returns the node registered under name.
func (i *Index) Lookup(name string) (*Node, bool) {
	if i == nil {
		return nil, false
	}
	n, ok := i.views[name]
	return n, ok
}

// Root returns the hierarchy root.
func (i *Index) Root() *Node {
	return i.root
}

// Len returns the number of indexed views.
func (i *Index) Len() int {
	return len(i.views)
}

// Names returns the indexed names in sorted order.
func (i *Index) Names() []string {
	names := make([]string, 0, len(i.views))
	for name := range i.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Environment holds named objects outside the view hierarchy, such as
// layout guides, that directives may refer to.
type Environment struct {
	objects map[string]*Node
}

var _ Resolver = (*Environment)(nil)

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{objects: make(map[string]*Node)}
}

// Set binds name to n, replacing any previous binding.
func (e *Environment) Set(name string, n *Node) {
	e.objects[name] = n
}

// Lookup returns the object bound to name.
func (e *Environment) Lookup(name string) (*Node, bool) {
	if e == nil {
		return nil, false
	}
	n, ok := e.objects[name]
	return n, ok
}
