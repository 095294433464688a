package layoutfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses the layout file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	return Parse(path, data)
}

// Parse parses a layout description. JSON input is accepted as YAML.
//
// A syntax error returns a nil document. Structural problems are collected
// into an *ErrorList returned alongside the partially parsed document.
func Parse(filename string, data []byte) (*Document, error) {
	var file yaml.Node
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	p := &parser{filename: filename, errors: NewErrorList()}
	doc := &Document{
		Name:      NameFromPath(filename),
		File:      filename,
		Templates: make(map[string]*View),
	}

	if len(file.Content) == 0 {
		p.errorf(&file, "empty layout file")
		return doc, p.errors.Err()
	}
	top := file.Content[0]
	if top.Kind != yaml.MappingNode {
		p.errorf(top, "layout file must be a mapping, got %s", kindName(top))
		return doc, p.errors.Err()
	}

	var root *yaml.Node
	for _, kv := range pairs(top) {
		key, value := kv[0], kv[1]
		switch key.Value {
		case KeyName:
			if name, ok := p.scalar(value, KeyName); ok && name != "" {
				doc.Name = name
			}
		case KeyRoot:
			root = value
		case KeyTemplates:
			p.templates(doc, value)
		default:
			p.errorf(key, "unknown top-level key %q", key.Value)
		}
	}

	if root == nil {
		p.add(&Error{Pos: p.pos(top), Message: "missing root view", Hint: "add a root: mapping"})
		return doc, p.errors.Err()
	}
	doc.Root = p.view(doc.Name, root)
	doc.Root.Pos = p.pos(root)
	return doc, p.errors.Err()
}

type parser struct {
	filename string
	errors   *ErrorList
}

func (p *parser) pos(n *yaml.Node) Position {
	return Position{File: p.filename, Line: n.Line, Column: n.Column}
}

func (p *parser) add(e *Error) {
	p.errors.Add(e)
}

func (p *parser) errorf(n *yaml.Node, format string, args ...any) {
	p.errors.AddErrorf(p.pos(n), format, args...)
}

func (p *parser) templates(doc *Document, n *yaml.Node) {
	if n.Kind != yaml.MappingNode {
		p.errorf(n, "%s must be a mapping of template name to view, got %s", KeyTemplates, kindName(n))
		return
	}
	for _, kv := range pairs(n) {
		name := kv[0].Value
		if _, dup := doc.Templates[name]; dup {
			p.errorf(kv[0], "duplicate template %q", name)
			continue
		}
		v := p.view(name, kv[1])
		v.Pos = p.pos(kv[0])
		doc.Templates[name] = v
	}
}

// view parses one view entry. id is the mapping key the entry was found under.
func (p *parser) view(id string, n *yaml.Node) *View {
	name, class, isNew := ParseViewID(id)
	v := &View{ID: id, Name: name, Class: class, New: isNew, Pos: p.pos(n)}

	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return v
	}
	if n.Kind != yaml.MappingNode {
		p.errorf(n, "view %q must be a mapping, got %s", id, kindName(n))
		return v
	}

	for _, kv := range pairs(n) {
		key, value := kv[0], kv[1]
		switch key.Value {
		case KeyConstraints:
			v.Constraints = p.constraints(id, value)
		case KeyProperties:
			v.Properties = p.properties(id, value)
		case KeyViews:
			v.Views = p.subviews(id, value)
		case KeyZIndex:
			v.ZIndex = zIndex(value)
		case KeyTemplate:
			v.Templates = p.templateNames(id, value)
		default:
			p.errorf(key, "unknown key %q in view %q", key.Value, id)
		}
	}
	return v
}

func (p *parser) constraints(id string, n *yaml.Node) []Constraint {
	if n.Kind != yaml.MappingNode {
		p.add(&Error{
			Pos:     p.pos(n),
			Message: fmt.Sprintf("constraints of view %q must be a mapping, got %s", id, kindName(n)),
			Hint:    `e.g. constraints: {top: "@super +8"}`,
		})
		return nil
	}
	var out []Constraint
	for _, kv := range pairs(n) {
		key, value := kv[0], kv[1]
		raw, err := constraintValue(value)
		if err != nil {
			p.errorf(value, "constraint %q of view %q: %v", key.Value, id, err)
			continue
		}
		out = append(out, Constraint{LHS: key.Value, Value: raw, Pos: p.pos(key)})
	}
	return out
}

// constraintValue decodes a constraint entry. Unquoted numbers such as
// "top: +8" or "leading: 20" stay shorthand strings, with a bare number read
// as a positive constant.
func constraintValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if tag := n.ShortTag(); tag == "!!int" || tag == "!!float" {
			if strings.HasPrefix(n.Value, "+") || strings.HasPrefix(n.Value, "-") {
				return n.Value, nil
			}
			return "+" + n.Value, nil
		}
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := constraintValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	var raw any
	if err := n.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (p *parser) properties(id string, n *yaml.Node) []Property {
	if n.Kind != yaml.MappingNode {
		p.errorf(n, "properties of view %q must be a mapping, got %s", id, kindName(n))
		return nil
	}
	var out []Property
	for _, kv := range pairs(n) {
		key, value := kv[0], kv[1]
		if value.Kind != yaml.ScalarNode {
			p.errorf(value, "property %q of view %q must be a scalar, got %s", key.Value, id, kindName(value))
			continue
		}
		out = append(out, Property{Key: key.Value, Value: value.Value, Pos: p.pos(key)})
	}
	return out
}

func (p *parser) subviews(id string, n *yaml.Node) []*View {
	if n.Kind != yaml.MappingNode {
		p.errorf(n, "views of %q must be a mapping of view id to view, got %s", id, kindName(n))
		return nil
	}
	var out []*View
	for _, kv := range pairs(n) {
		child := p.view(kv[0].Value, kv[1])
		child.Pos = p.pos(kv[0])
		if child.Name == "" {
			p.errorf(kv[0], "view id %q has no name", kv[0].Value)
			continue
		}
		out = append(out, child)
	}
	return out
}

func (p *parser) templateNames(id string, n *yaml.Node) []string {
	switch n.Kind {
	case yaml.ScalarNode:
		if name := strings.TrimSpace(n.Value); name != "" {
			return []string{name}
		}
		return nil
	case yaml.SequenceNode:
		var out []string
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				p.errorf(item, "template names of view %q must be strings", id)
				continue
			}
			if name := strings.TrimSpace(item.Value); name != "" {
				out = append(out, name)
			}
		}
		return out
	default:
		p.errorf(n, "template of view %q must be a name or a list of names, got %s", id, kindName(n))
		return nil
	}
}

func (p *parser) scalar(n *yaml.Node, key string) (string, bool) {
	if n.Kind != yaml.ScalarNode {
		p.errorf(n, "%s must be a scalar, got %s", key, kindName(n))
		return "", false
	}
	return strings.TrimSpace(n.Value), true
}

// zIndex reads an integer z-index; anything else is 0.
func zIndex(n *yaml.Node) int {
	if n.Kind != yaml.ScalarNode {
		return 0
	}
	z, err := strconv.Atoi(strings.TrimSpace(n.Value))
	if err != nil {
		return 0
	}
	return z
}

// pairs returns the key/value node pairs of a mapping node.
func pairs(n *yaml.Node) [][2]*yaml.Node {
	out := make([][2]*yaml.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, [2]*yaml.Node{n.Content[i], n.Content[i+1]})
	}
	return out
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
