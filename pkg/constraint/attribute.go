package constraint

import (
	"fmt"
	"strings"
)

// Attribute identifies a geometric edge, dimension or center of a view.
type Attribute uint8

const (
	AttrNone Attribute = iota // Not an attribute; used for constant size constraints
	AttrLeading
	AttrTrailing
	AttrTop
	AttrBottom
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
	AttrFirstBaseline
	AttrLastBaseline
	AttrLeadingMargin
	AttrTrailingMargin
	AttrTopMargin
	AttrBottomMargin
	AttrCenterXWithinMargins
	AttrCenterYWithinMargins
)

var attributeNames = [...]string{
	AttrNone:                 "none",
	AttrLeading:              "leading",
	AttrTrailing:             "trailing",
	AttrTop:                  "top",
	AttrBottom:               "bottom",
	AttrWidth:                "width",
	AttrHeight:               "height",
	AttrCenterX:              "centerX",
	AttrCenterY:              "centerY",
	AttrFirstBaseline:        "firstBaseline",
	AttrLastBaseline:         "lastBaseline",
	AttrLeadingMargin:        "leadingMargin",
	AttrTrailingMargin:       "trailingMargin",
	AttrTopMargin:            "topMargin",
	AttrBottomMargin:         "bottomMargin",
	AttrCenterXWithinMargins: "centerXWithinMargins",
	AttrCenterYWithinMargins: "centerYWithinMargins",
}

// attributeKeys maps normalized attribute names to attributes.
// left/right read as leading/trailing so layouts stay direction-agnostic.
var attributeKeys = map[string]Attribute{
	"none":                 AttrNone,
	"leading":              AttrLeading,
	"left":                 AttrLeading,
	"trailing":             AttrTrailing,
	"right":                AttrTrailing,
	"top":                  AttrTop,
	"bottom":               AttrBottom,
	"width":                AttrWidth,
	"height":               AttrHeight,
	"centerx":              AttrCenterX,
	"centery":              AttrCenterY,
	"firstbaseline":        AttrFirstBaseline,
	"baseline":             AttrLastBaseline,
	"lastbaseline":         AttrLastBaseline,
	"leadingmargin":        AttrLeadingMargin,
	"leftmargin":           AttrLeadingMargin,
	"trailingmargin":       AttrTrailingMargin,
	"rightmargin":          AttrTrailingMargin,
	"topmargin":            AttrTopMargin,
	"bottommargin":         AttrBottomMargin,
	"centerxwithinmargins": AttrCenterXWithinMargins,
	"centerywithinmargins": AttrCenterYWithinMargins,
}

// compoundAttributeKeys maps aliases that stand for several attributes at once.
var compoundAttributeKeys = map[string][]Attribute{
	"edges":   {AttrLeading, AttrTop, AttrTrailing, AttrBottom},
	"center":  {AttrCenterX, AttrCenterY},
	"size":    {AttrWidth, AttrHeight},
	"margins": {AttrLeadingMargin, AttrTopMargin, AttrTrailingMargin, AttrBottomMargin},
}

// String returns the canonical attribute name.
func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Attribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Attribute) UnmarshalText(text []byte) error {
	attr, ok := LookupAttribute(string(text))
	if !ok {
		return fmt.Errorf("unknown attribute %q", text)
	}
	*a = attr
	return nil
}

// IsIndependent reports whether the attribute is a dimension that can be
// constrained to a constant without a comparable view.
func (a Attribute) IsIndependent() bool {
	return a == AttrWidth || a == AttrHeight
}

// normalizeAttributeName folds case and drops '-' and '_' so that
// "centerX", "center-x" and "center_x" all name the same attribute.
func normalizeAttributeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return -1
		}
		return r
	}, name)
}

// LookupAttribute resolves a single attribute name.
func LookupAttribute(name string) (Attribute, bool) {
	attr, ok := attributeKeys[normalizeAttributeName(name)]
	return attr, ok
}

// ExpandAttributes resolves an attribute name or compound alias into the
// attributes it stands for. Unknown names yield nil.
func ExpandAttributes(name string) []Attribute {
	key := normalizeAttributeName(name)
	if attr, ok := attributeKeys[key]; ok {
		if attr == AttrNone {
			return nil
		}
		return []Attribute{attr}
	}
	if attrs, ok := compoundAttributeKeys[key]; ok {
		out := make([]Attribute, len(attrs))
		copy(out, attrs)
		return out
	}
	return nil
}

// isAttributeSeparator reports whether r separates attribute names in the
// left-hand side of a directive.
func isAttributeSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == ':'
}

// ParseAttributeList splits a left-hand side such as "top left right bottom"
// or "edges" into its attributes. Unknown names are dropped.
func ParseAttributeList(lhs string) []Attribute {
	var attrs []Attribute
	for _, part := range strings.FieldsFunc(lhs, isAttributeSeparator) {
		attrs = append(attrs, ExpandAttributes(part)...)
	}
	return attrs
}
