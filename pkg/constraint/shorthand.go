package constraint

// ShorthandParser reads Shorthand payloads, where the right-hand side packs
// every field into modifier-prefixed tokens:
//
//	"top left right bottom": "@super <12"
//	"width":                 "@avatar.height *2 %<= p750 #avatarRatio"
type ShorthandParser struct{}

var _ Parser = ShorthandParser{}

func (ShorthandParser) source(src any) (Shorthand, bool) {
	switch s := src.(type) {
	case Shorthand:
		return s, true
	case *Shorthand:
		if s != nil {
			return *s, true
		}
	}
	return Shorthand{}, false
}

// tokens lexes the right-hand side of src.
func (p ShorthandParser) tokens(src any) (Shorthand, []shorthandToken, bool) {
	s, ok := p.source(src)
	if !ok {
		return Shorthand{}, nil, false
	}
	return s, lexShorthand(s.RHS), true
}

// LeftAttributes parses the attributes named on the left-hand side.
func (p ShorthandParser) LeftAttributes(src any, _ Reporter) ([]Attribute, bool) {
	s, ok := p.source(src)
	if !ok {
		return nil, false
	}
	attrs := ParseAttributeList(s.LHS)
	return attrs, len(attrs) > 0
}

// reference returns the raw "@" token value, which may carry ".attr".
func (p ShorthandParser) reference(src any) (string, bool) {
	_, tokens, ok := p.tokens(src)
	if !ok {
		return "", false
	}
	tok, ok := firstToken(tokens, modView)
	if !ok || tok.value == "" {
		return "", false
	}
	return tok.value, true
}

// RightAttribute parses the attribute appended to the view reference, as in "@header.bottom".
func (p ShorthandParser) RightAttribute(src any, _ Reporter) (Attribute, bool) {
	ref, ok := p.reference(src)
	if !ok {
		return AttrNone, false
	}
	_, attr, hasAttr := splitViewReference(ref)
	if !hasAttr {
		return AttrNone, false
	}
	return LookupAttribute(attr)
}

// ComparableViewReference parses the view name from the "@" token.
func (p ShorthandParser) ComparableViewReference(src any, _ Reporter) (string, bool) {
	ref, ok := p.reference(src)
	if !ok {
		return "", false
	}
	name, _, _ := splitViewReference(ref)
	return name, name != ""
}

// Relation parses the "%" token.
func (p ShorthandParser) Relation(src any, _ Reporter) (Relation, bool) {
	_, tokens, ok := p.tokens(src)
	if !ok {
		return RelationEqual, false
	}
	tok, ok := firstToken(tokens, modRelation)
	if !ok {
		return RelationEqual, false
	}
	return LookupRelation(tok.value)
}

// Constant parses the first of the "+", "-", "<" and ">" tokens.
func (p ShorthandParser) Constant(src any, r Reporter) (Constant, bool) {
	s, tokens, ok := p.tokens(src)
	if !ok {
		return Constant{}, false
	}
	tok, ok := firstToken(tokens, modPositive, modNegative, modInset, modOffset)
	if !ok {
		return Constant{}, false
	}
	sign, ok := LookupConstantSign(string(tok.mod))
	if !ok {
		return Constant{}, false
	}
	v, ok := parseNumber(tok.value)
	if !ok {
		report(r, Warningf(s.Pos, ErrInvalidNumber, "invalid value for constant: %q", tok.value))
		return Constant{}, false
	}
	return Constant{Value: v, Sign: sign}, true
}

// Multiplier parses the first of the "*" and "/" tokens.
func (p ShorthandParser) Multiplier(src any, r Reporter) (Multiplier, bool) {
	s, tokens, ok := p.tokens(src)
	if !ok {
		return Multiplier{}, false
	}
	tok, ok := firstToken(tokens, modMultiply, modDivide)
	if !ok {
		return Multiplier{}, false
	}
	sign, ok := LookupMultiplierSign(string(tok.mod))
	if !ok {
		return Multiplier{}, false
	}
	v, ok := parseNumber(tok.value)
	if !ok {
		report(r, Warningf(s.Pos, ErrInvalidNumber, "invalid value for multiplier: %q", tok.value))
		return Multiplier{}, false
	}
	return Multiplier{Value: v, Sign: sign}, true
}

// Priority parses the "p" token.
func (p ShorthandParser) Priority(src any, r Reporter) (float64, bool) {
	s, tokens, ok := p.tokens(src)
	if !ok {
		return 0, false
	}
	tok, ok := firstToken(tokens, modPriority)
	if !ok {
		return 0, false
	}
	v, ok := parseNumber(tok.value)
	if !ok {
		report(r, Warningf(s.Pos, ErrInvalidNumber, "invalid value for priority: %q", tok.value))
		return 0, false
	}
	return v, true
}

// Identifier parses the "#" token.
func (p ShorthandParser) Identifier(src any, _ Reporter) (string, bool) {
	_, tokens, ok := p.tokens(src)
	if !ok {
		return "", false
	}
	tok, ok := firstToken(tokens, modIdentifier)
	if !ok || tok.value == "" {
		return "", false
	}
	return tok.value, true
}

// HorizontalSizeClass parses the "h" token.
func (p ShorthandParser) HorizontalSizeClass(src any, _ Reporter) (SizeClass, bool) {
	return p.sizeClass(src, modHorizontal)
}

// VerticalSizeClass parses the "v" token.
func (p ShorthandParser) VerticalSizeClass(src any, _ Reporter) (SizeClass, bool) {
	return p.sizeClass(src, modVertical)
}

func (p ShorthandParser) sizeClass(src any, mod rune) (SizeClass, bool) {
	_, tokens, ok := p.tokens(src)
	if !ok {
		return SizeClassUnspecified, false
	}
	tok, ok := firstToken(tokens, mod)
	if !ok {
		return SizeClassUnspecified, false
	}
	return LookupSizeClass(tok.value)
}
