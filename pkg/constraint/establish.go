package constraint

import (
	"github.com/grindlemire/go-autolayout/pkg/view"
)

// Reference names that mean the target's parent.
const (
	ReferenceSuper  = "super"
	ReferenceParent = "parent"
)

// Pass carries the collaborators of one constraint pass. Index and
// Environment are read-only for the duration of the pass.
type Pass struct {
	Index       view.Resolver
	Environment view.Resolver // optional; consulted when Index has no match
	Emitter     Emitter
	Reporter    Reporter
	Policy      IndependentPolicy
}

// resolveReference maps a symbolic name to a view: super/parent first, then
// the index, then the environment.
func (p Pass) resolveReference(target *view.Node, ref string) (*view.Node, bool) {
	if ref == ReferenceSuper || ref == ReferenceParent {
		parent := target.Parent()
		return parent, parent != nil
	}
	if p.Index != nil {
		if n, ok := p.Index.Lookup(ref); ok && n != nil {
			return n, true
		}
	}
	if p.Environment != nil {
		if n, ok := p.Environment.Lookup(ref); ok && n != nil {
			return n, true
		}
	}
	return nil, false
}

// Establish resolves the directive for target and emits one spec per left
// attribute. Failures are reported and skip only the affected attribute, so
// one bad reference never stops the rest of the pass. It returns the number
// of specs emitted.
func (m *Model) Establish(target *view.Node, p Pass) int {
	if target == nil || p.Emitter == nil {
		return 0
	}

	var comparable *view.Node
	if ref, ok := m.ComparableViewReference(); ok {
		n, found := p.resolveReference(target, ref)
		if !found {
			d := Errorf(m.Pos(), ErrUnresolvedView, "view %q referenced by %q not found", ref, target.Name)
			d.Identifier = m.identifier
			d.Hint = "check the view name, or use @super for the parent view"
			report(p.Reporter, d)
			return 0
		}
		comparable = n
	}

	emitted := 0
	for _, attr := range m.LeftAttributes() {
		ctx := Context{
			Target:            target,
			Attribute:         attr,
			Relation:          m.relation,
			View:              comparable,
			RightAttribute:    m.rightAttribute,
			HasRightAttribute: m.hasRightAttribute,
			Constant:          m.constant,
			Multiplier:        m.multiplier,
			Policy:            p.Policy,
		}
		spec, ok := m.specFor(ctx, p.Reporter)
		if !ok {
			continue
		}
		if err := p.Emitter.Emit(spec); err != nil {
			d := Errorf(m.Pos(), err, "emitting %s.%s: %v", target.Name, attr, err)
			d.Identifier = m.identifier
			report(p.Reporter, d)
			continue
		}
		emitted++
	}
	return emitted
}

// specFor builds the spec for one context, mirroring the left attribute when
// no right attribute was resolved, and checks the views share an ancestor.
func (m *Model) specFor(ctx Context, r Reporter) (Spec, bool) {
	target := ctx.Target

	multiplier, err := ctx.ResolvedMultiplier()
	if err != nil {
		d := Errorf(m.Pos(), err, "%s.%s: cannot divide by zero", target.Name, ctx.Attribute)
		d.Identifier = m.identifier
		report(r, d)
		return Spec{}, false
	}

	right, ok := ctx.ResolvedRightAttribute()
	if !ok {
		right = ctx.Attribute
	}

	comparable := ctx.ComparableView()
	if comparable == nil && !ctx.Attribute.IsIndependent() && !explicitNone(ctx) {
		d := Errorf(m.Pos(), ErrUnresolvedView,
			"%s.%s has no parent to constrain against", target.Name, ctx.Attribute)
		d.Identifier = m.identifier
		d.Hint = "reference a view with @name, or move the constraint to a subview"
		report(r, d)
		return Spec{}, false
	}
	other := comparable
	if other == nil {
		other = target
	}
	if !target.SharesAncestry(other) {
		d := Errorf(m.Pos(), ErrNoCommonAncestor,
			"views %q and %q do not share a view ancestry, constraint cannot be made", target.Name, other.Name)
		d.Identifier = m.identifier
		if m.identifier != "" {
			d.Message += ": " + m.identifier
		} else {
			d.Hint = "add an identifier (#name) to find the failing constraint"
		}
		report(r, d)
		return Spec{}, false
	}

	return Spec{
		Target:         target,
		Attribute:      ctx.Attribute,
		Relation:       ctx.Relation,
		Comparable:     comparable,
		RightAttribute: right,
		Constant:       ctx.ResolvedConstant(),
		Multiplier:     multiplier,
		Priority:       m.priority,
		HasPriority:    m.hasPriority,
		Identifier:     m.identifier,
		SizeClass:      m.sizeClass,
		Pos:            m.Pos(),
	}, true
}

// explicitNone reports whether the directive itself set the right attribute to none.
func explicitNone(ctx Context) bool {
	return ctx.HasRightAttribute && ctx.RightAttribute == AttrNone
}
