package constraint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexShorthand(t *testing.T) {
	type tc struct {
		input    string
		expected []shorthandToken
	}

	tests := map[string]tc{
		"empty": {
			input:    "",
			expected: nil,
		},
		"reference glued to inset": {
			input: "@super<20",
			expected: []shorthandToken{
				{mod: '@', value: "super", offset: 0},
				{mod: '<', value: "20", offset: 6},
			},
		},
		"reference with attribute": {
			input: "@header.bottom +8",
			expected: []shorthandToken{
				{mod: '@', value: "header.bottom", offset: 0},
				{mod: '+', value: "8", offset: 15},
			},
		},
		"relation then priority": {
			input: "%>= p750",
			expected: []shorthandToken{
				{mod: '%', value: ">=", offset: 0},
				{mod: 'p', value: "750", offset: 4},
			},
		},
		"relation glued to letter modifier": {
			input: "%<=p250",
			expected: []shorthandToken{
				{mod: '%', value: "<=", offset: 0},
				{mod: 'p', value: "250", offset: 3},
			},
		},
		"identifier runs to whitespace": {
			input: "#top-pin/1 *2",
			expected: []shorthandToken{
				{mod: '#', value: "top-pin/1", offset: 0},
				{mod: '*', value: "2", offset: 11},
			},
		},
		"size classes": {
			input: "hc vregular",
			expected: []shorthandToken{
				{mod: 'h', value: "c", offset: 0},
				{mod: 'v', value: "regular", offset: 3},
			},
		},
		"unknown chunk skipped": {
			input: "!bogus +1",
			expected: []shorthandToken{
				{mod: '+', value: "1", offset: 7},
			},
		},
		"invalid number kept for reporting": {
			input: "+abc",
			expected: []shorthandToken{
				{mod: '+', value: "abc", offset: 0},
			},
		},
		"exponent with negative sign": {
			input: "*1e-1",
			expected: []shorthandToken{
				{mod: '*', value: "1e-1", offset: 0},
			},
		},
		"exponent with positive sign then constant": {
			input: "+1e-3 -2E+1",
			expected: []shorthandToken{
				{mod: '+', value: "1e-3", offset: 0},
				{mod: '-', value: "2E+1", offset: 6},
			},
		},
		"hyphenated reference": {
			input: "@my-view +4",
			expected: []shorthandToken{
				{mod: '@', value: "my-view", offset: 0},
				{mod: '+', value: "4", offset: 9},
			},
		},
		"reference glued to negative constant": {
			input: "@super-8",
			expected: []shorthandToken{
				{mod: '@', value: "super", offset: 0},
				{mod: '-', value: "8", offset: 6},
			},
		},
		"divide glued to multiply": {
			input: "/2*3",
			expected: []shorthandToken{
				{mod: '/', value: "2", offset: 0},
				{mod: '*', value: "3", offset: 2},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lexShorthand(tt.input))
		})
	}
}

func shorthand(lhs, rhs string) Shorthand {
	return Shorthand{LHS: lhs, RHS: rhs}
}

func TestShorthandParser_LeftAttributes(t *testing.T) {
	type tc struct {
		lhs    string
		want   []Attribute
		wantOK bool
	}

	tests := map[string]tc{
		"single":           {lhs: "top", want: []Attribute{AttrTop}, wantOK: true},
		"space separated":  {lhs: "top left right bottom", want: []Attribute{AttrTop, AttrLeading, AttrTrailing, AttrBottom}, wantOK: true},
		"comma separated":  {lhs: "top,left,right,bottom", want: []Attribute{AttrTop, AttrLeading, AttrTrailing, AttrBottom}, wantOK: true},
		"colon separated":  {lhs: "width:height", want: []Attribute{AttrWidth, AttrHeight}, wantOK: true},
		"edges alias":      {lhs: "edges", want: []Attribute{AttrLeading, AttrTop, AttrTrailing, AttrBottom}, wantOK: true},
		"unknown dropped":  {lhs: "top wobble", want: []Attribute{AttrTop}, wantOK: true},
		"only unknown":     {lhs: "wobble", wantOK: false},
		"case and hyphens": {lhs: "Center-X centery", want: []Attribute{AttrCenterX, AttrCenterY}, wantOK: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ShorthandParser{}.LeftAttributes(shorthand(tt.lhs, ""), nil)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestShorthandParser_Fields(t *testing.T) {
	p := ShorthandParser{}
	src := shorthand("top", "@header.bottom %>= <12 *2 p750 #pin hc vr")

	ref, ok := p.ComparableViewReference(src, nil)
	require.True(t, ok)
	assert.Equal(t, "header", ref)

	right, ok := p.RightAttribute(src, nil)
	require.True(t, ok)
	assert.Equal(t, AttrBottom, right)

	rel, ok := p.Relation(src, nil)
	require.True(t, ok)
	assert.Equal(t, RelationGreaterOrEqual, rel)

	c, ok := p.Constant(src, nil)
	require.True(t, ok)
	assert.Equal(t, Constant{Value: 12, Sign: SignInset}, c)

	m, ok := p.Multiplier(src, nil)
	require.True(t, ok)
	assert.Equal(t, Multiplier{Value: 2, Sign: SignMultiply}, m)

	prio, ok := p.Priority(src, nil)
	require.True(t, ok)
	assert.Equal(t, 750.0, prio)

	id, ok := p.Identifier(src, nil)
	require.True(t, ok)
	assert.Equal(t, "pin", id)

	h, ok := p.HorizontalSizeClass(src, nil)
	require.True(t, ok)
	assert.Equal(t, SizeClassCompact, h)

	v, ok := p.VerticalSizeClass(src, nil)
	require.True(t, ok)
	assert.Equal(t, SizeClassRegular, v)
}

func TestShorthandParser_AbsentFields(t *testing.T) {
	p := ShorthandParser{}
	src := shorthand("top", "")

	_, ok := p.ComparableViewReference(src, nil)
	assert.False(t, ok)
	_, ok = p.RightAttribute(src, nil)
	assert.False(t, ok)
	_, ok = p.Relation(src, nil)
	assert.False(t, ok)
	_, ok = p.Constant(src, nil)
	assert.False(t, ok)
	_, ok = p.Multiplier(src, nil)
	assert.False(t, ok)
	_, ok = p.Priority(src, nil)
	assert.False(t, ok)
	_, ok = p.Identifier(src, nil)
	assert.False(t, ok)
	_, ok = p.HorizontalSizeClass(src, nil)
	assert.False(t, ok)
	_, ok = p.VerticalSizeClass(src, nil)
	assert.False(t, ok)
}

func TestShorthandParser_FirstTokenWins(t *testing.T) {
	p := ShorthandParser{}

	type tc struct {
		rhs  string
		want Constant
	}

	tests := map[string]tc{
		"inset before positive": {rhs: "<10 +5", want: Constant{Value: 10, Sign: SignInset}},
		"positive before inset": {rhs: "+5 <10", want: Constant{Value: 5, Sign: SignPositive}},
		"offset before negative": {rhs: ">3 -9", want: Constant{Value: 3, Sign: SignOffset}},
		"duplicate positives":   {rhs: "+1 +2", want: Constant{Value: 1, Sign: SignPositive}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := p.Constant(shorthand("top", tt.rhs), nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	m, ok := p.Multiplier(shorthand("width", "/4 *2"), nil)
	require.True(t, ok)
	assert.Equal(t, Multiplier{Value: 4, Sign: SignDivide}, m)

	ref, ok := p.ComparableViewReference(shorthand("top", "@a @b"), nil)
	require.True(t, ok)
	assert.Equal(t, "a", ref)
}

func TestShorthandParser_InvalidNumbersWarn(t *testing.T) {
	p := ShorthandParser{}
	diags := NewDiagnosticList()
	src := Shorthand{Pos: Position{View: "box", Key: "top"}, LHS: "top", RHS: "+abc *x pfast"}

	_, ok := p.Constant(src, diags)
	assert.False(t, ok)
	_, ok = p.Multiplier(src, diags)
	assert.False(t, ok)
	_, ok = p.Priority(src, diags)
	assert.False(t, ok)

	require.Equal(t, 3, diags.Len())
	for _, d := range diags.All() {
		assert.Equal(t, SeverityWarning, d.Severity)
		assert.True(t, errors.Is(d, ErrInvalidNumber))
		assert.Equal(t, "box", d.Pos.View)
	}
	assert.False(t, diags.HasErrors())
}

func TestShorthandParser_ExponentNumbers(t *testing.T) {
	p := ShorthandParser{}
	diags := NewDiagnosticList()

	m, ok := p.Multiplier(shorthand("height", "*1e-1"), diags)
	require.True(t, ok)
	assert.InDelta(t, 0.1, m.Value, 1e-12)
	assert.Equal(t, SignMultiply, m.Sign)
	_, ok = p.Constant(shorthand("height", "*1e-1"), diags)
	assert.False(t, ok, "exponent sign is not a constant")

	c, ok := p.Constant(shorthand("trailing", "+1e-3"), diags)
	require.True(t, ok)
	assert.InDelta(t, 0.001, c.Value, 1e-12)
	assert.Equal(t, SignPositive, c.Sign)

	assert.Zero(t, diags.Len())
}

func TestShorthandParser_UnknownValues(t *testing.T) {
	p := ShorthandParser{}

	_, ok := p.Relation(shorthand("top", "%=>"), nil)
	assert.False(t, ok, "unknown relation")

	_, ok = p.RightAttribute(shorthand("top", "@header.wobble"), nil)
	assert.False(t, ok, "unknown right attribute")

	ref, ok := p.ComparableViewReference(shorthand("top", "@header.wobble"), nil)
	assert.True(t, ok, "reference survives an unknown attribute")
	assert.Equal(t, "header", ref)

	_, ok = p.HorizontalSizeClass(shorthand("top", "hx"), nil)
	assert.False(t, ok, "unknown size class")

	_, ok = p.ComparableViewReference(shorthand("top", "@ +1"), nil)
	assert.False(t, ok, "empty reference")
}

func TestShorthandParser_MalformedSource(t *testing.T) {
	p := ShorthandParser{}
	for name, src := range map[string]any{
		"nil":     nil,
		"string":  "top",
		"verbose": Verbose{LHS: "top", Fields: map[string]any{}},
		"nil ptr": (*Shorthand)(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := p.LeftAttributes(src, nil)
			assert.False(t, ok)
			_, ok = p.Constant(src, nil)
			assert.False(t, ok)
			_, ok = p.ComparableViewReference(src, nil)
			assert.False(t, ok)
			_, ok = p.Priority(src, nil)
			assert.False(t, ok)
		})
	}
}
