package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-autolayout/pkg/view"
)

var allAttributes = []Attribute{
	AttrLeading, AttrTrailing, AttrTop, AttrBottom, AttrWidth, AttrHeight,
	AttrCenterX, AttrCenterY, AttrFirstBaseline, AttrLastBaseline,
	AttrLeadingMargin, AttrTrailingMargin, AttrTopMargin, AttrBottomMargin,
	AttrCenterXWithinMargins, AttrCenterYWithinMargins,
}

func TestContext_ResolvedConstant_Inset(t *testing.T) {
	flips := map[Attribute]bool{
		AttrTrailing: true, AttrBottom: true, AttrWidth: true, AttrHeight: true, AttrTrailingMargin: true,
	}
	for _, attr := range allAttributes {
		t.Run(attr.String(), func(t *testing.T) {
			ctx := Context{Attribute: attr, Constant: Constant{Value: 12, Sign: SignInset}}
			want := 12.0
			if flips[attr] {
				want = -12
			}
			assert.Equal(t, want, ctx.ResolvedConstant())
		})
	}
}

func TestContext_ResolvedConstant_Offset(t *testing.T) {
	flips := map[Attribute]bool{
		AttrLeading: true, AttrTop: true, AttrWidth: true, AttrHeight: true,
	}
	for _, attr := range allAttributes {
		t.Run(attr.String(), func(t *testing.T) {
			ctx := Context{Attribute: attr, Constant: Constant{Value: 7.5, Sign: SignOffset}}
			want := 7.5
			if flips[attr] {
				want = -7.5
			}
			assert.Equal(t, want, ctx.ResolvedConstant())
		})
	}
}

func TestContext_ResolvedConstant_NegativeAndPositive(t *testing.T) {
	for _, attr := range allAttributes {
		t.Run(attr.String(), func(t *testing.T) {
			neg := Context{Attribute: attr, Constant: Constant{Value: 4, Sign: SignNegative}}
			pos := Context{Attribute: attr, Constant: Constant{Value: 4, Sign: SignPositive}}
			assert.Equal(t, -4.0, neg.ResolvedConstant())
			assert.Equal(t, 4.0, pos.ResolvedConstant())
		})
	}
}

func TestContext_ResolvedMultiplier(t *testing.T) {
	type tc struct {
		multiplier Multiplier
		want       float64
		wantErr    error
	}

	tests := map[string]tc{
		"multiply passes through": {multiplier: Multiplier{Value: 3, Sign: SignMultiply}, want: 3},
		"divide takes reciprocal": {multiplier: Multiplier{Value: 2, Sign: SignDivide}, want: 0.5},
		"divide by quarter":       {multiplier: Multiplier{Value: 0.25, Sign: SignDivide}, want: 4},
		"default":                 {multiplier: DefaultMultiplier(), want: 1},
		"divide by zero":          {multiplier: Multiplier{Value: 0, Sign: SignDivide}, wantErr: ErrZeroDivisor},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := Context{Attribute: AttrWidth, Multiplier: tt.multiplier}
			got, err := ctx.ResolvedMultiplier()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestContext_DivideIsReciprocalOfMultiply(t *testing.T) {
	for _, m := range []float64{0.1, 0.5, 1, 2, 3, 7.25, 100, -4} {
		mul, err := Context{Multiplier: Multiplier{Value: m, Sign: SignMultiply}}.ResolvedMultiplier()
		require.NoError(t, err)
		div, err := Context{Multiplier: Multiplier{Value: m, Sign: SignDivide}}.ResolvedMultiplier()
		require.NoError(t, err)
		assert.InDelta(t, 1/mul, div, 1e-12, "m=%v", m)
	}
}

func TestContext_ComparableViewAndRightAttribute(t *testing.T) {
	root := view.NewNode("root")
	child := view.NewNode("child")
	other := view.NewNode("other")
	root.AddChild(child, other)

	type tc struct {
		ctx          Context
		wantView     *view.Node
		wantRight    Attribute
		wantHasRight bool
	}

	tests := map[string]tc{
		"dependent attribute defaults to parent": {
			ctx:      Context{Target: child, Attribute: AttrTop},
			wantView: root,
		},
		"explicit view is kept": {
			ctx:          Context{Target: child, Attribute: AttrTop, View: other, RightAttribute: AttrBottom, HasRightAttribute: true},
			wantView:     other,
			wantRight:    AttrBottom,
			wantHasRight: true,
		},
		"width without view is a constant size": {
			ctx:          Context{Target: child, Attribute: AttrWidth},
			wantView:     nil,
			wantRight:    AttrNone,
			wantHasRight: true,
		},
		"height ignores supplied right attribute without view": {
			ctx:          Context{Target: child, Attribute: AttrHeight, RightAttribute: AttrWidth, HasRightAttribute: true},
			wantView:     nil,
			wantRight:    AttrNone,
			wantHasRight: true,
		},
		"width with view keeps right attribute by default": {
			ctx:          Context{Target: child, Attribute: AttrWidth, View: other, RightAttribute: AttrHeight, HasRightAttribute: true},
			wantView:     other,
			wantRight:    AttrHeight,
			wantHasRight: true,
		},
		"width with view under always policy is a constant size": {
			ctx:          Context{Target: child, Attribute: AttrWidth, View: other, RightAttribute: AttrHeight, HasRightAttribute: true, Policy: IndependentAlways},
			wantView:     nil,
			wantRight:    AttrNone,
			wantHasRight: true,
		},
		"explicit none right attribute drops parent default": {
			ctx:          Context{Target: child, Attribute: AttrTop, RightAttribute: AttrNone, HasRightAttribute: true},
			wantView:     nil,
			wantRight:    AttrNone,
			wantHasRight: true,
		},
		"root target has no parent to default to": {
			ctx:      Context{Target: root, Attribute: AttrLeading},
			wantView: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Same(t, tt.wantView, tt.ctx.ComparableView())
			right, ok := tt.ctx.ResolvedRightAttribute()
			assert.Equal(t, tt.wantHasRight, ok)
			if tt.wantHasRight {
				assert.Equal(t, tt.wantRight, right)
			}
		})
	}
}

func TestParseIndependentPolicy(t *testing.T) {
	p, err := ParseIndependentPolicy("")
	require.NoError(t, err)
	assert.Equal(t, IndependentUnlessReferenced, p)

	p, err = ParseIndependentPolicy("Always")
	require.NoError(t, err)
	assert.Equal(t, IndependentAlways, p)

	_, err = ParseIndependentPolicy("sometimes")
	assert.Error(t, err)
}
