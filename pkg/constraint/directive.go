package constraint

import "fmt"

// Directive is one raw directive paired with the parser that interprets it.
// It is immutable once constructed.
type Directive struct {
	source any
	parser Parser
	pos    Position
}

// NewShorthandDirective wraps a packed "lhs":"rhs" pair.
func NewShorthandDirective(pos Position, lhs, rhs string) Directive {
	return Directive{
		source: Shorthand{Pos: pos, LHS: lhs, RHS: rhs},
		parser: ShorthandParser{},
		pos:    pos,
	}
}

// NewVerboseDirective wraps an "lhs" key and its field map.
func NewVerboseDirective(pos Position, lhs string, fields map[string]any) Directive {
	return Directive{
		source: Verbose{Pos: pos, LHS: lhs, Fields: fields},
		parser: VerboseParser{},
		pos:    pos,
	}
}

// NewDirective selects the parser from the shape of value: a string is
// shorthand, a field map is verbose. Any other shape is malformed.
func NewDirective(pos Position, lhs string, value any) (Directive, error) {
	switch v := value.(type) {
	case string:
		return NewShorthandDirective(pos, lhs, v), nil
	case map[string]any:
		return NewVerboseDirective(pos, lhs, v), nil
	default:
		return Directive{}, fmt.Errorf("%w: %T", ErrMalformedSource, value)
	}
}

// Directives expands one constraints entry into directives. The value may be
// a single shorthand string, a field map, or a list mixing both. Malformed
// elements are reported and skipped.
func Directives(pos Position, lhs string, value any, r Reporter) []Directive {
	items, isList := value.([]any)
	if !isList {
		items = []any{value}
	}

	out := make([]Directive, 0, len(items))
	for _, item := range items {
		d, err := NewDirective(pos, lhs, item)
		if err != nil {
			report(r, &Diagnostic{
				Severity: SeverityError,
				Pos:      pos,
				Message:  fmt.Sprintf("constraint %q: %v", lhs, err),
				Hint:     "use a shorthand string, a field map, or a list of either",
				Err:      ErrMalformedSource,
			})
			continue
		}
		out = append(out, d)
	}
	return out
}

// Source returns the raw payload.
func (d Directive) Source() any {
	return d.source
}

// Parser returns the parser responsible for the payload.
func (d Directive) Parser() Parser {
	return d.parser
}

// Pos returns where the directive was declared.
func (d Directive) Pos() Position {
	return d.pos
}
