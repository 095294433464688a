package constraint

import (
	"fmt"
	"math"
	"strings"
)

// Field names read by VerboseParser.
const (
	KeyTo                  = "to"
	KeyView                = "view"
	KeyAttribute           = "attribute"
	KeyRelation            = "relation"
	KeyConstant            = "constant"
	KeyInset               = "inset"
	KeyOffset              = "offset"
	KeyMultiplier          = "multiplier"
	KeyDivide              = "divide"
	KeyPriority            = "priority"
	KeyIdentifier          = "identifier"
	KeyID                  = "id"
	KeyHorizontalSizeClass = "horizontalSizeClass"
	KeyVerticalSizeClass   = "verticalSizeClass"
	KeyValue               = "value"
	KeySign                = "sign"
)

// VerboseParser reads Verbose payloads, where each field has its own key:
//
//	"bottom":
//	  to: footer.top
//	  constant: {value: 8, sign: offset}
//	  relation: lte
//	  priority: 750
type VerboseParser struct{}

var _ Parser = VerboseParser{}

func (VerboseParser) source(src any) (Verbose, bool) {
	switch s := src.(type) {
	case Verbose:
		return s, s.Fields != nil
	case *Verbose:
		if s != nil && s.Fields != nil {
			return *s, true
		}
	}
	return Verbose{}, false
}

// field returns the first present key.
func (p VerboseParser) field(src any, keys ...string) (Verbose, any, bool) {
	v, ok := p.source(src)
	if !ok {
		return Verbose{}, nil, false
	}
	for _, k := range keys {
		if val, ok := v.Fields[k]; ok && val != nil {
			return v, val, true
		}
	}
	return v, nil, false
}

func (p VerboseParser) stringField(src any, keys ...string) (string, bool) {
	_, val, ok := p.field(src, keys...)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// numberField reads a numeric field, reporting strings that are not numbers.
func (p VerboseParser) numberField(src any, r Reporter, what string, keys ...string) (float64, bool) {
	v, val, ok := p.field(src, keys...)
	if !ok {
		return 0, false
	}
	return toNumber(val, v.Pos, r, what)
}

// toNumber converts a decoded YAML/JSON scalar to a float.
func toNumber(val any, pos Position, r Reporter, what string) (float64, bool) {
	switch n := val.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			report(r, Warningf(pos, ErrInvalidNumber, "invalid value for %s: %v", what, n))
			return 0, false
		}
		return n, true
	case string:
		f, ok := parseNumber(n)
		if !ok {
			report(r, Warningf(pos, ErrInvalidNumber, "invalid value for %s: %q", what, n))
		}
		return f, ok
	default:
		report(r, Warningf(pos, ErrInvalidNumber, "invalid value for %s: %s", what, fmt.Sprint(val)))
		return 0, false
	}
}

// LeftAttributes parses the attributes named on the left-hand side.
func (p VerboseParser) LeftAttributes(src any, _ Reporter) ([]Attribute, bool) {
	v, ok := p.source(src)
	if !ok {
		return nil, false
	}
	attrs := ParseAttributeList(v.LHS)
	return attrs, len(attrs) > 0
}

// RightAttribute reads "attribute", falling back to a ".attr" suffix on "to".
func (p VerboseParser) RightAttribute(src any, _ Reporter) (Attribute, bool) {
	if name, ok := p.stringField(src, KeyAttribute); ok {
		return LookupAttribute(name)
	}
	ref, ok := p.stringField(src, KeyTo, KeyView)
	if !ok {
		return AttrNone, false
	}
	_, attr, hasAttr := splitViewReference(ref)
	if !hasAttr {
		return AttrNone, false
	}
	return LookupAttribute(attr)
}

// ComparableViewReference reads "to" (or "view").
func (p VerboseParser) ComparableViewReference(src any, _ Reporter) (string, bool) {
	ref, ok := p.stringField(src, KeyTo, KeyView)
	if !ok {
		return "", false
	}
	name, _, _ := splitViewReference(ref)
	return name, name != ""
}

// Relation reads "relation".
func (p VerboseParser) Relation(src any, _ Reporter) (Relation, bool) {
	s, ok := p.stringField(src, KeyRelation)
	if !ok {
		return RelationEqual, false
	}
	return LookupRelation(s)
}

// Constant reads "constant" as a number or a {value, sign} map, then the
// "inset" and "offset" shortcuts.
func (p VerboseParser) Constant(src any, r Reporter) (Constant, bool) {
	v, val, ok := p.field(src, KeyConstant)
	if ok {
		return constantFromField(val, v.Pos, r)
	}
	if n, ok := p.numberField(src, r, "constant", KeyInset); ok {
		return Constant{Value: n, Sign: SignInset}, true
	}
	if n, ok := p.numberField(src, r, "constant", KeyOffset); ok {
		return Constant{Value: n, Sign: SignOffset}, true
	}
	return Constant{}, false
}

func constantFromField(val any, pos Position, r Reporter) (Constant, bool) {
	sign := SignPositive
	raw := val
	if m, ok := val.(map[string]any); ok {
		if s, ok := m[KeySign].(string); ok {
			if sign, ok = LookupConstantSign(s); !ok {
				return Constant{}, false
			}
		}
		if raw, ok = m[KeyValue]; !ok {
			return Constant{}, false
		}
	}
	n, ok := toNumber(raw, pos, r, "constant")
	if !ok {
		return Constant{}, false
	}
	// A plain negative number is a negative constant of positive magnitude,
	// matching what "-n" means in shorthand.
	if n < 0 && sign == SignPositive {
		return Constant{Value: -n, Sign: SignNegative}, true
	}
	return Constant{Value: n, Sign: sign}, true
}

// Multiplier reads "multiplier" as a number or a {value, sign} map, then the
// "divide" shortcut.
func (p VerboseParser) Multiplier(src any, r Reporter) (Multiplier, bool) {
	v, val, ok := p.field(src, KeyMultiplier)
	if ok {
		return multiplierFromField(val, v.Pos, r)
	}
	if n, ok := p.numberField(src, r, "multiplier", KeyDivide); ok {
		return Multiplier{Value: n, Sign: SignDivide}, true
	}
	return Multiplier{}, false
}

func multiplierFromField(val any, pos Position, r Reporter) (Multiplier, bool) {
	sign := SignMultiply
	raw := val
	if m, ok := val.(map[string]any); ok {
		if s, ok := m[KeySign].(string); ok {
			if sign, ok = LookupMultiplierSign(s); !ok {
				return Multiplier{}, false
			}
		}
		if raw, ok = m[KeyValue]; !ok {
			return Multiplier{}, false
		}
	}
	n, ok := toNumber(raw, pos, r, "multiplier")
	if !ok {
		return Multiplier{}, false
	}
	return Multiplier{Value: n, Sign: sign}, true
}

// Priority reads "priority".
func (p VerboseParser) Priority(src any, r Reporter) (float64, bool) {
	return p.numberField(src, r, "priority", KeyPriority)
}

// Identifier reads "identifier" (or "id").
func (p VerboseParser) Identifier(src any, _ Reporter) (string, bool) {
	return p.stringField(src, KeyIdentifier, KeyID)
}

// HorizontalSizeClass reads "horizontalSizeClass".
func (p VerboseParser) HorizontalSizeClass(src any, _ Reporter) (SizeClass, bool) {
	s, ok := p.stringField(src, KeyHorizontalSizeClass)
	if !ok {
		return SizeClassUnspecified, false
	}
	return LookupSizeClass(s)
}

// VerticalSizeClass reads "verticalSizeClass".
func (p VerboseParser) VerticalSizeClass(src any, _ Reporter) (SizeClass, bool) {
	s, ok := p.stringField(src, KeyVerticalSizeClass)
	if !ok {
		return SizeClassUnspecified, false
	}
	return LookupSizeClass(s)
}
