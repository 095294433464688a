package constraint

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-autolayout/pkg/view"
)

// IndependentPolicy decides when a width or height constraint becomes a
// constant size constraint with no comparable view.
type IndependentPolicy uint8

const (
	// IndependentUnlessReferenced forces right=none only when the directive
	// names no comparable view.
	IndependentUnlessReferenced IndependentPolicy = iota
	// IndependentAlways forces right=none and drops the comparable view for
	// every width and height constraint.
	IndependentAlways
)

// ParseIndependentPolicy resolves "unless-referenced" or "always".
func ParseIndependentPolicy(s string) (IndependentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unless-referenced":
		return IndependentUnlessReferenced, nil
	case "always":
		return IndependentAlways, nil
	}
	return 0, fmt.Errorf("unknown independent policy %q (want unless-referenced or always)", s)
}

func (p IndependentPolicy) String() string {
	if p == IndependentAlways {
		return "always"
	}
	return "unless-referenced"
}

// Attributes whose inset or offset constants resolve to a negative value.
// Width and height are in both sets.
var (
	perspectiveInsetAttributes = map[Attribute]bool{
		AttrTrailing:       true,
		AttrBottom:         true,
		AttrWidth:          true,
		AttrHeight:         true,
		AttrTrailingMargin: true,
	}
	perspectiveOffsetAttributes = map[Attribute]bool{
		AttrLeading: true,
		AttrTop:     true,
		AttrWidth:   true,
		AttrHeight:  true,
	}
)

// Context resolves one left attribute of a directive into final values.
// It is pure and rebuilt for every attribute, since sign resolution depends
// on the attribute.
type Context struct {
	Target    *view.Node
	Attribute Attribute
	Relation  Relation

	// View is the comparable view the directive named, already resolved;
	// nil when the directive named none.
	View *view.Node

	RightAttribute    Attribute
	HasRightAttribute bool

	Constant   Constant
	Multiplier Multiplier
	Policy     IndependentPolicy
}

// constantSize reports whether the constraint pins a dimension to a constant.
func (c Context) constantSize() bool {
	if !c.Attribute.IsIndependent() {
		return false
	}
	return c.View == nil || c.Policy == IndependentAlways
}

// ResolvedRightAttribute returns the right attribute. Width and height with
// no comparable view resolve to AttrNone. A false result means the emitter
// mirrors the left attribute.
func (c Context) ResolvedRightAttribute() (Attribute, bool) {
	if c.constantSize() {
		return AttrNone, true
	}
	return c.RightAttribute, c.HasRightAttribute
}

// ComparableView returns the view the constraint is measured against,
// defaulting to the target's parent unless the right attribute is none.
func (c Context) ComparableView() *view.Node {
	if c.constantSize() {
		return nil
	}
	if c.View != nil {
		return c.View
	}
	if right, ok := c.ResolvedRightAttribute(); ok && right == AttrNone {
		return nil
	}
	return c.Target.Parent()
}

// ResolvedConstant applies the sign to the magnitude. Negative always flips,
// inset flips for perspective-inset attributes, offset flips for
// perspective-offset attributes, positive never flips.
func (c Context) ResolvedConstant() float64 {
	v := c.Constant.Value
	switch c.Constant.Sign {
	case SignNegative:
		return -v
	case SignInset:
		if perspectiveInsetAttributes[c.Attribute] {
			return -v
		}
	case SignOffset:
		if perspectiveOffsetAttributes[c.Attribute] {
			return -v
		}
	}
	return v
}

// ResolvedMultiplier returns the effective multiplier: the reciprocal for
// divide, the magnitude for multiply.
func (c Context) ResolvedMultiplier() (float64, error) {
	v := c.Multiplier.Value
	if c.Multiplier.Sign != SignDivide {
		return v, nil
	}
	if v == 0 {
		return 0, ErrZeroDivisor
	}
	return 1 / v, nil
}
