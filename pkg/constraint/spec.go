package constraint

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-autolayout/pkg/view"
)

// Spec is a fully resolved constraint, ready for a layout engine. All sign
// and inversion logic has been applied.
type Spec struct {
	Target         *view.Node
	Attribute      Attribute
	Relation       Relation
	Comparable     *view.Node // nil for constant size constraints
	RightAttribute Attribute
	Constant       float64
	Multiplier     float64

	Priority    float64
	HasPriority bool

	Identifier string
	SizeClass  SizeClassCondition

	// Active is set by the emitter from the environment's size classes.
	Active bool

	Pos Position
}

// String renders the spec as an equation, e.g.
// "header.top == root.top * 1 + 20".
func (s Spec) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s.%s %s ", nodeName(s.Target), s.Attribute, s.Relation)
	if s.Comparable != nil {
		fmt.Fprintf(&sb, "%s.%s * %g", nodeName(s.Comparable), s.RightAttribute, s.Multiplier)
		if s.Constant < 0 {
			fmt.Fprintf(&sb, " - %g", -s.Constant)
		} else {
			fmt.Fprintf(&sb, " + %g", s.Constant)
		}
	} else {
		fmt.Fprintf(&sb, "%g", s.Constant)
	}
	if s.HasPriority {
		fmt.Fprintf(&sb, " @%g", s.Priority)
	}
	if s.Identifier != "" {
		fmt.Fprintf(&sb, " #%s", s.Identifier)
	}
	if !s.SizeClass.IsUnconditional() {
		fmt.Fprintf(&sb, " [h:%s v:%s]", s.SizeClass.Horizontal, s.SizeClass.Vertical)
	}
	return sb.String()
}

func nodeName(n *view.Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// Record is the serializable form of a Spec, with views named by path.
type Record struct {
	Target         string             `json:"target" yaml:"target"`
	Attribute      Attribute          `json:"attribute" yaml:"attribute"`
	Relation       Relation           `json:"relation" yaml:"relation"`
	Comparable     string             `json:"comparable,omitempty" yaml:"comparable,omitempty"`
	RightAttribute Attribute          `json:"rightAttribute" yaml:"rightAttribute"`
	Constant       float64            `json:"constant" yaml:"constant"`
	Multiplier     float64            `json:"multiplier" yaml:"multiplier"`
	Priority       *float64           `json:"priority,omitempty" yaml:"priority,omitempty"`
	Identifier     string             `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	SizeClass      SizeClassCondition `json:"sizeClass" yaml:"sizeClass"`
	Active         bool               `json:"active" yaml:"active"`
}

// Record converts s for serialization.
func (s Spec) Record() Record {
	rec := Record{
		Target:         s.Target.Path(),
		Attribute:      s.Attribute,
		Relation:       s.Relation,
		RightAttribute: s.RightAttribute,
		Constant:       s.Constant,
		Multiplier:     s.Multiplier,
		Identifier:     s.Identifier,
		SizeClass:      s.SizeClass,
		Active:         s.Active,
	}
	if s.Comparable != nil {
		rec.Comparable = s.Comparable.Path()
	}
	if s.HasPriority {
		p := s.Priority
		rec.Priority = &p
	}
	return rec
}
