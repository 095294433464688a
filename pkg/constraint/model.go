package constraint

// MaxPriority is the highest (required) constraint priority.
const MaxPriority = 1000

// Model is a read-only view over a parsed directive with defaults applied.
// Every field is read from the parser once, at construction.
type Model struct {
	directive Directive

	leftAttributes []Attribute

	rightAttribute    Attribute
	hasRightAttribute bool

	relation   Relation
	constant   Constant
	multiplier Multiplier

	priority    float64
	hasPriority bool

	reference    string
	hasReference bool

	identifier string

	sizeClass SizeClassCondition
}

// NewModel parses d. Field-level problems are reported to r and the field
// falls back to its default.
func NewModel(d Directive, r Reporter) *Model {
	m := &Model{
		directive:  d,
		relation:   RelationEqual,
		constant:   DefaultConstant(),
		multiplier: DefaultMultiplier(),
	}
	p, src := d.parser, d.source
	if p == nil {
		return m
	}

	if attrs, ok := p.LeftAttributes(src, r); ok {
		m.leftAttributes = attrs
	}
	m.rightAttribute, m.hasRightAttribute = p.RightAttribute(src, r)
	if rel, ok := p.Relation(src, r); ok {
		m.relation = rel
	}
	if c, ok := p.Constant(src, r); ok {
		m.constant = c
	}
	if mul, ok := p.Multiplier(src, r); ok {
		m.multiplier = mul
	}
	if prio, ok := p.Priority(src, r); ok {
		m.priority, m.hasPriority = clampPriority(prio, d.pos, r), true
	}
	m.reference, m.hasReference = p.ComparableViewReference(src, r)
	m.identifier, _ = p.Identifier(src, r)
	if sc, ok := p.HorizontalSizeClass(src, r); ok {
		m.sizeClass.Horizontal = sc
	}
	if sc, ok := p.VerticalSizeClass(src, r); ok {
		m.sizeClass.Vertical = sc
	}
	return m
}

func clampPriority(p float64, pos Position, r Reporter) float64 {
	switch {
	case p < 0:
		report(r, Warningf(pos, nil, "priority %v out of range, using 0", p))
		return 0
	case p > MaxPriority:
		report(r, Warningf(pos, nil, "priority %v out of range, using %d", p, MaxPriority))
		return MaxPriority
	}
	return p
}

// Directive returns the wrapped directive.
func (m *Model) Directive() Directive { return m.directive }

// Pos returns where the directive was declared.
func (m *Model) Pos() Position { return m.directive.pos }

// LeftAttributes returns the constrained attributes, compound aliases expanded.
func (m *Model) LeftAttributes() []Attribute { return m.leftAttributes }

// RightAttribute returns the comparable view's attribute, if one was named.
func (m *Model) RightAttribute() (Attribute, bool) { return m.rightAttribute, m.hasRightAttribute }

// Relation defaults to RelationEqual.
func (m *Model) Relation() Relation { return m.relation }

// Constant defaults to a positive zero.
func (m *Model) Constant() Constant { return m.constant }

// Multiplier defaults to multiply by one.
func (m *Model) Multiplier() Multiplier { return m.multiplier }

// Priority returns the priority, clamped to [0, MaxPriority], if one was given.
func (m *Model) Priority() (float64, bool) { return m.priority, m.hasPriority }

// ComparableViewReference returns the symbolic name of the comparable view.
func (m *Model) ComparableViewReference() (string, bool) { return m.reference, m.hasReference }

// Identifier returns the constraint identifier, or "".
func (m *Model) Identifier() string { return m.identifier }

// HorizontalSizeClass defaults to SizeClassUnspecified.
func (m *Model) HorizontalSizeClass() SizeClass { return m.sizeClass.Horizontal }

// VerticalSizeClass defaults to SizeClassUnspecified.
func (m *Model) VerticalSizeClass() SizeClass { return m.sizeClass.Vertical }

// SizeClass returns both size classes as a condition.
func (m *Model) SizeClass() SizeClassCondition { return m.sizeClass }
