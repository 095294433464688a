package compile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
	"github.com/grindlemire/go-autolayout/pkg/layoutfile"
	"github.com/grindlemire/go-autolayout/pkg/view"
)

// TemplateSource supplies templates that are not defined in the document
// being compiled.
type TemplateSource interface {
	Lookup(name string) (*layoutfile.View, error)
}

// Options configures a compilation.
type Options struct {
	// Host is an existing hierarchy to lay out. Its root stands for the
	// document root and views not marked new are looked up in it by name.
	// When nil, every view is created.
	Host *view.Node

	Environment view.Resolver
	Library     TemplateSource
	Traits      constraint.SizeClassCondition
	Policy      constraint.IndependentPolicy

	// Reporter receives diagnostics as they happen, in addition to
	// Result.Diagnostics. It must be safe for concurrent use when passed to
	// CompileFiles.
	Reporter constraint.Reporter

	// Workers bounds CompileFiles concurrency. Zero means one per file.
	Workers int
}

// Result is the outcome of compiling one document.
type Result struct {
	Root        *view.Node
	Index       *view.Index
	Specs       []constraint.Spec
	Diagnostics *constraint.DiagnosticList
}

// Active returns the specs whose size-class condition matched the traits.
func (r *Result) Active() []constraint.Spec {
	var out []constraint.Spec
	for _, s := range r.Specs {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Compile builds the view hierarchy described by doc and resolves every
// constraint in it. Problems never abort the pass; they are collected in
// Result.Diagnostics.
func Compile(doc *layoutfile.Document, opts Options) *Result {
	return compile(doc, opts, constraint.NewDiagnosticList())
}

func compile(doc *layoutfile.Document, opts Options, diags *constraint.DiagnosticList) *Result {
	c := &compiler{
		doc:      doc,
		opts:     opts,
		diags:    diags,
		reporter: constraint.Tee(diags, opts.Reporter),
		cycles:   make(map[string]bool),
		missing:  make(map[string]bool),
	}
	if opts.Host != nil {
		c.host, _ = view.IndexTree(opts.Host)
	}

	res := &Result{Diagnostics: diags}
	if doc == nil || doc.Root == nil {
		return res
	}

	res.Root = c.build(doc.Root, nil, nil)
	res.Index = c.index(res.Root)

	rec := constraint.NewRecorder(opts.Traits)
	pass := constraint.Pass{
		Index:       res.Index,
		Environment: opts.Environment,
		Emitter:     rec,
		Reporter:    c.reporter,
		Policy:      opts.Policy,
	}
	for _, b := range c.built {
		for _, entry := range b.entry.Constraints {
			pos := c.position(entry.Pos, b.node.Name, entry.LHS)
			for _, d := range constraint.Directives(pos, entry.LHS, entry.Value, c.reporter) {
				constraint.NewModel(d, c.reporter).Establish(b.node, pass)
			}
		}
	}
	res.Specs = rec.Specs()
	return res
}

type builtView struct {
	node  *view.Node
	entry *layoutfile.View // after template expansion
}

type compiler struct {
	doc      *layoutfile.Document
	opts     Options
	diags    *constraint.DiagnosticList
	reporter constraint.Reporter
	host     *view.Index

	built   []builtView
	cycles  map[string]bool
	missing map[string]bool
}

// build creates the node for entry under parent, then its subviews.
// templates holds the template names already applied on the path from the
// root, for cycle detection.
func (c *compiler) build(entry *layoutfile.View, parent *view.Node, templates []string) *view.Node {
	expanded, used := c.expand(entry, templates)
	templates = append(slices.Clip(templates), used...)

	node := c.node(expanded, parent)
	node.ZIndex = expanded.ZIndex
	for _, p := range expanded.Properties {
		node.SetProperty(p.Key, p.Value)
	}
	c.built = append(c.built, builtView{node: node, entry: expanded})

	for _, child := range expanded.Views {
		c.build(child, node, templates)
	}
	node.SortChildren()
	return node
}

// node returns the view handle for entry, reusing a host view when the entry
// is not new.
func (c *compiler) node(entry *layoutfile.View, parent *view.Node) *view.Node {
	if parent == nil {
		if c.opts.Host != nil {
			return c.opts.Host
		}
		return view.NewNode(entry.Name)
	}

	if !entry.New && c.host != nil {
		if existing, ok := c.host.Lookup(entry.Name); ok && existing != c.opts.Host {
			if existing.Parent() != parent {
				parent.AddChild(existing)
			}
			return existing
		}
		c.reporter.Report(constraint.Warningf(c.position(entry.Pos, entry.Name, ""), constraint.ErrUnresolvedView,
			"view %q is not marked new and was not found on the host, creating it", entry.Name))
	}

	n := view.NewNode(entry.Name)
	n.Class = entry.Class
	n.New = entry.New
	parent.AddChild(n)
	return n
}

// index registers every view in the hierarchy, reporting duplicate names.
func (c *compiler) index(root *view.Node) *view.Index {
	positions := make(map[*view.Node]layoutfile.Position, len(c.built))
	for _, b := range c.built {
		positions[b.node] = b.entry.Pos
	}

	idx := view.NewIndex(root)
	root.Walk(func(n *view.Node) bool {
		if err := idx.Register(n); err != nil {
			c.reporter.Report(constraint.Errorf(c.position(positions[n], n.Name, ""), err,
				"%v", err))
		}
		return true
	})
	return idx
}

// expand applies entry's templates, returning the merged entry and the
// template names that were applied.
func (c *compiler) expand(entry *layoutfile.View, stack []string) (*layoutfile.View, []string) {
	if len(entry.Templates) == 0 {
		return entry, nil
	}

	merged := &layoutfile.View{}
	var used []string
	for _, name := range entry.Templates {
		if slices.Contains(stack, name) || slices.Contains(used, name) {
			if !c.cycles[name] {
				c.cycles[name] = true
				c.reporter.Report(constraint.Errorf(c.position(entry.Pos, entry.Name, ""), constraint.ErrTemplateCycle,
					"template %q is applied inside itself", name))
			}
			continue
		}

		tmpl, err := c.template(name)
		if err != nil {
			if !c.missing[name] {
				c.missing[name] = true
				d := constraint.Errorf(c.position(entry.Pos, entry.Name, ""), err, "view %q: %v", entry.Name, err)
				d.Hint = "define it under templates: or in a template directory"
				c.reporter.Report(d)
			}
			continue
		}

		inner, innerUsed := c.expand(tmpl, append(slices.Clip(stack), name))
		merged = merge(merged, inner)
		used = append(used, name)
		used = append(used, innerUsed...)
	}

	own := *entry
	own.Templates = nil
	out := merge(merged, &own)
	out.ID, out.Name, out.Class, out.New, out.Pos = entry.ID, entry.Name, entry.Class, entry.New, entry.Pos
	return out, used
}

func (c *compiler) template(name string) (*layoutfile.View, error) {
	if tmpl, ok := c.doc.Template(name); ok {
		return tmpl, nil
	}
	if c.opts.Library != nil {
		tmpl, err := c.opts.Library.Lookup(name)
		if err == nil {
			return tmpl, nil
		}
		if !errors.Is(err, constraint.ErrUnknownTemplate) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w %q", constraint.ErrUnknownTemplate, name)
}

func (c *compiler) position(p layoutfile.Position, viewName, key string) constraint.Position {
	return constraint.Position{File: p.File, Line: p.Line, Column: p.Column, View: viewName, Key: key}
}
