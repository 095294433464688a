package compile

import (
	"slices"

	"github.com/grindlemire/go-autolayout/pkg/layoutfile"
)

// merge overlays top onto base and returns a new entry; neither input is
// modified. Constraints of base come first. Properties of top replace those
// of base in place. Subviews with the same name are merged recursively.
func merge(base, top *layoutfile.View) *layoutfile.View {
	out := &layoutfile.View{
		ID:     top.ID,
		Name:   top.Name,
		Class:  top.Class,
		New:    top.New || base.New,
		Pos:    top.Pos,
		ZIndex: base.ZIndex,
	}
	if out.Class == "" {
		out.Class = base.Class
	}
	if top.ZIndex != 0 {
		out.ZIndex = top.ZIndex
	}

	out.Constraints = append(slices.Clip(base.Constraints), top.Constraints...)

	out.Properties = slices.Clone(base.Properties)
	for _, p := range top.Properties {
		i := slices.IndexFunc(out.Properties, func(q layoutfile.Property) bool { return q.Key == p.Key })
		if i >= 0 {
			out.Properties[i] = p
			continue
		}
		out.Properties = append(out.Properties, p)
	}

	out.Views = slices.Clone(base.Views)
	for _, child := range top.Views {
		i := slices.IndexFunc(out.Views, func(v *layoutfile.View) bool { return v.Name == child.Name })
		if i >= 0 {
			out.Views[i] = merge(out.Views[i], child)
			continue
		}
		out.Views = append(out.Views, child)
	}

	out.Templates = slices.Clone(base.Templates)
	for _, name := range top.Templates {
		if !slices.Contains(out.Templates, name) {
			out.Templates = append(out.Templates, name)
		}
	}
	return out
}
