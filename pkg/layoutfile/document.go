package layoutfile

import (
	"path/filepath"
	"strings"
)

// Layout file keys.
const (
	KeyName        = "name"
	KeyRoot        = "root"
	KeyTemplates   = "templates"
	KeyConstraints = "constraints"
	KeyProperties  = "properties"
	KeyViews       = "views"
	KeyZIndex      = "z-index"
	KeyTemplate    = "template"
)

// View id modifiers.
const (
	modNewElement = '!'
	modClass      = ':'
)

// Extensions recognized as layout files.
var Extensions = []string{".layout.yaml", ".layout.yml", ".layout.json"}

// Document is one parsed layout file.
type Document struct {
	Name      string
	File      string
	Root      *View
	Templates map[string]*View
}

// Template returns the document-local template with the given name.
func (d *Document) Template(name string) (*View, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.Templates[name]
	return v, ok
}

// View is one view entry. Constraints, properties and subviews keep their
// order of declaration.
type View struct {
	ID          string // raw key, e.g. "!avatar:ImageView"
	Name        string
	Class       string
	New         bool
	Pos         Position
	ZIndex      int
	Properties  []Property
	Constraints []Constraint
	Views       []*View
	Templates   []string
}

// Property is a scalar view property.
type Property struct {
	Key   string
	Value string
	Pos   Position
}

// Constraint is one entry of a view's constraints mapping. Value is a
// string, a map[string]any, or a []any of either.
type Constraint struct {
	LHS   string
	Value any
	Pos   Position
}

// ParseViewID splits a view id into its name, class and new-element flag.
// A class is only meaningful for new elements and is dropped otherwise.
func ParseViewID(id string) (name, class string, isNew bool) {
	id = strings.TrimSpace(id)
	if len(id) > 0 && id[0] == modNewElement {
		isNew = true
		id = id[1:]
	}
	name = id
	if i := strings.IndexByte(id, modClass); i >= 0 {
		name = id[:i]
		if isNew {
			class = id[i+1:]
		}
	}
	return name, class, isNew
}

// IsLayoutFile reports whether path has a layout file extension.
func IsLayoutFile(path string) bool {
	return trimExtension(filepath.Base(path)) != filepath.Base(path)
}

// NameFromPath derives a layout name from a file path by dropping the
// directory and the layout extension.
func NameFromPath(path string) string {
	return trimExtension(filepath.Base(path))
}

func trimExtension(base string) string {
	for _, ext := range Extensions {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}
