package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_AddChildReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")

	a.AddChild(c)
	require.Same(t, a, c.Parent())

	b.AddChild(c)
	assert.Same(t, b, c.Parent())
	assert.Empty(t, a.Children)
	assert.Equal(t, []*Node{c}, b.Children)
}

func TestNode_RemoveChild(t *testing.T) {
	root := NewNode("root")
	x, y, z := NewNode("x"), NewNode("y"), NewNode("z")
	root.AddChild(x, y, z)

	assert.True(t, root.RemoveChild(y))
	assert.Nil(t, y.Parent())
	assert.Equal(t, []*Node{x, z}, root.Children)
	assert.False(t, root.RemoveChild(y))
}

func TestNode_Ancestry(t *testing.T) {
	root := NewNode("root")
	body := NewNode("body")
	avatar := NewNode("avatar")
	root.AddChild(body)
	body.AddChild(avatar)

	detached := NewNode("detached")
	guide := NewGuide("margins", body)

	type tc struct {
		a, b *Node
		want bool
	}

	tests := map[string]tc{
		"same node":           {a: avatar, b: avatar, want: true},
		"child and parent":    {a: avatar, b: body, want: true},
		"child and root":      {a: avatar, b: root, want: true},
		"detached":            {a: avatar, b: detached, want: false},
		"guide through owner": {a: avatar, b: guide, want: true},
		"nil":                 {a: avatar, b: nil, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SharesAncestry(tt.b))
		})
	}

	assert.Equal(t, []*Node{body, root}, avatar.Ancestors())
	assert.True(t, avatar.IsDescendant(root))
	assert.False(t, root.IsDescendant(avatar))
	assert.Equal(t, "root/body/avatar", avatar.Path())
	assert.Same(t, root, guide.Root())
	assert.True(t, guide.IsGuide())
	assert.NotContains(t, body.Children, guide)
}

func TestNode_GuideAdoptedAsChildKeepsOwnerChildren(t *testing.T) {
	owner := NewNode("owner")
	sibling := NewNode("sibling")
	owner.AddChild(sibling)

	g := NewGuide("g", owner)
	other := NewNode("other")
	other.AddChild(g)

	assert.Equal(t, []*Node{sibling}, owner.Children)
	assert.Same(t, other, g.Parent())
	assert.False(t, g.IsGuide())
}

func TestNode_SortChildrenIsStable(t *testing.T) {
	root := NewNode("root")
	a := &Node{Name: "a", ZIndex: 1}
	b := &Node{Name: "b", ZIndex: 0}
	c := &Node{Name: "c", ZIndex: 1}
	d := &Node{Name: "d", ZIndex: -1}
	root.AddChild(a, b, c, d)

	root.SortChildren()

	var names []string
	for _, child := range root.Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, names)
}

func TestNode_WalkSkipsSubtree(t *testing.T) {
	root := NewNode("root")
	left, right := NewNode("left"), NewNode("right")
	root.AddChild(left, right)
	left.AddChild(NewNode("hidden"))
	right.AddChild(NewNode("shown"))

	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Name)
		return n.Name != "left"
	})
	assert.Equal(t, []string{"root", "left", "right", "shown"}, seen)
}

func TestNode_Properties(t *testing.T) {
	n := NewNode("label")
	n.SetProperty("text", "hello")
	n.SetProperty("color", "red")
	n.SetProperty("text", "bye")

	v, ok := n.Property("text")
	require.True(t, ok)
	assert.Equal(t, "bye", v)
	assert.Equal(t, []Property{{Key: "text", Value: "bye"}, {Key: "color", Value: "red"}}, n.Properties)

	_, ok = n.Property("font")
	assert.False(t, ok)
}
