package view

import (
	"cmp"
	"slices"
	"strings"
)

// ClassLayoutGuide is the class of nodes created by NewGuide.
const ClassLayoutGuide = "LayoutGuide"

// Property is one non-geometric attribute of a view, kept in declaration order.
type Property struct {
	Key   string
	Value string
}

// Node is a view handle in the layout hierarchy.
type Node struct {
	// Configuration (from the layout description)
	Name       string
	Class      string // native class to instantiate; only set for new elements
	New        bool   // created by the layout rather than supplied by the host
	ZIndex     int
	Properties []Property
	Children   []*Node

	parent *Node // back-pointer for ancestry checks
	guide  bool
}

// NewNode creates a detached node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// NewGuide creates a layout guide owned by owner. A guide takes part in
// ancestry checks through its owner but is not a subview.
func NewGuide(name string, owner *Node) *Node {
	return &Node{Name: name, Class: ClassLayoutGuide, parent: owner, guide: true}
}

// IsGuide reports whether the node was created by NewGuide.
func (n *Node) IsGuide() bool {
	return n.guide
}

// AddChild appends children, detaching each from its previous parent.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil && !child.guide {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		child.guide = false
		n.Children = append(n.Children, child)
	}
}

// RemoveChild removes a child by pointer, keeping sibling order.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = slices.Delete(n.Children, i, i+1)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the superview, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Root returns the top of the hierarchy containing n.
func (n *Node) Root() *Node {
	node := n
	for node != nil && node.parent != nil {
		node = node.parent
	}
	return node
}

// Ancestors returns n's ancestors, nearest first.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for node := n.Parent(); node != nil; node = node.parent {
		out = append(out, node)
	}
	return out
}

// IsDescendant reports whether n is ancestor or lies below it.
func (n *Node) IsDescendant(ancestor *Node) bool {
	for node := n; node != nil; node = node.parent {
		if node == ancestor {
			return true
		}
	}
	return false
}

// SharesAncestry reports whether n and other sit in the same hierarchy.
func (n *Node) SharesAncestry(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	return n.Root() == other.Root()
}

// SortChildren orders children by z-index, keeping declaration order for ties.
func (n *Node) SortChildren() {
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Path returns the slash-separated names from the root to n.
func (n *Node) Path() string {
	var names []string
	for node := n; node != nil; node = node.parent {
		names = append(names, node.Name)
	}
	slices.Reverse(names)
	return strings.Join(names, "/")
}

// Property returns the value of the named property.
func (n *Node) Property(key string) (string, bool) {
	for _, p := range n.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// SetProperty sets or replaces a property, keeping its original position.
func (n *Node) SetProperty(key, value string) {
	for i, p := range n.Properties {
		if p.Key == key {
			n.Properties[i].Value = value
			return
		}
	}
	n.Properties = append(n.Properties, Property{Key: key, Value: value})
}
