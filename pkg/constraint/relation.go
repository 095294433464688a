package constraint

import (
	"fmt"
	"strings"
)

// Relation is the comparison used when composing a constraint.
type Relation uint8

const (
	RelationEqual Relation = iota
	RelationGreaterOrEqual
	RelationLessOrEqual
)

// relationKeys covers both the shorthand symbols and the verbose names.
var relationKeys = map[string]Relation{
	"=":                  RelationEqual,
	"==":                 RelationEqual,
	"eq":                 RelationEqual,
	"equal":              RelationEqual,
	">=":                 RelationGreaterOrEqual,
	">":                  RelationGreaterOrEqual,
	"gte":                RelationGreaterOrEqual,
	"greaterorequal":     RelationGreaterOrEqual,
	"greaterthanorequal": RelationGreaterOrEqual,
	"<=":                 RelationLessOrEqual,
	"<":                  RelationLessOrEqual,
	"lte":                RelationLessOrEqual,
	"lessorequal":        RelationLessOrEqual,
	"lessthanorequal":    RelationLessOrEqual,
}

// LookupRelation resolves a relation symbol or name.
func LookupRelation(s string) (Relation, bool) {
	r, ok := relationKeys[strings.ToLower(strings.TrimSpace(s))]
	return r, ok
}

// String returns the relation symbol.
func (r Relation) String() string {
	switch r {
	case RelationEqual:
		return "=="
	case RelationGreaterOrEqual:
		return ">="
	case RelationLessOrEqual:
		return "<="
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
