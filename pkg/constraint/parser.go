package constraint

// Shorthand is the raw payload of a packed directive such as
// "top left":"@super <12".
type Shorthand struct {
	Pos Position
	LHS string
	RHS string
}

// Verbose is the raw payload of an expanded directive whose right-hand side
// is a map of named fields.
type Verbose struct {
	Pos    Position
	LHS    string
	Fields map[string]any
}

// Parser reads the fields of one raw directive payload. Every accessor
// returns false when the field is absent, malformed, or the payload is not
// of the shape the parser understands. Invalid numbers are reported to r as
// warnings; nothing a parser sees is fatal.
type Parser interface {
	LeftAttributes(src any, r Reporter) ([]Attribute, bool)
	RightAttribute(src any, r Reporter) (Attribute, bool)
	Relation(src any, r Reporter) (Relation, bool)
	Constant(src any, r Reporter) (Constant, bool)
	Multiplier(src any, r Reporter) (Multiplier, bool)
	Priority(src any, r Reporter) (float64, bool)
	ComparableViewReference(src any, r Reporter) (string, bool)
	Identifier(src any, r Reporter) (string, bool)
	HorizontalSizeClass(src any, r Reporter) (SizeClass, bool)
	VerticalSizeClass(src any, r Reporter) (SizeClass, bool)
}

// splitViewReference splits "name.attr" into the view name and the optional
// right-hand attribute name.
func splitViewReference(ref string) (name, attr string, hasAttr bool) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == viewAttributeSeparator {
			return ref[:i], ref[i+1:], true
		}
	}
	return ref, "", false
}
