package constraint

import (
	"fmt"
	"strings"
)

// ConstantSign qualifies how a constant's magnitude maps to its effective value.
// Inset and offset are directional: their numeric sign depends on the attribute
// being constrained.
type ConstantSign uint8

const (
	SignPositive ConstantSign = iota
	SignNegative
	SignInset
	SignOffset
)

var constantSignNames = map[string]ConstantSign{
	"positive": SignPositive,
	"+":        SignPositive,
	"negative": SignNegative,
	"-":        SignNegative,
	"inset":    SignInset,
	"<":        SignInset,
	"offset":   SignOffset,
	">":        SignOffset,
}

// LookupConstantSign resolves a sign name or its shorthand modifier.
func LookupConstantSign(s string) (ConstantSign, bool) {
	sign, ok := constantSignNames[strings.ToLower(strings.TrimSpace(s))]
	return sign, ok
}

func (s ConstantSign) String() string {
	switch s {
	case SignPositive:
		return "positive"
	case SignNegative:
		return "negative"
	case SignInset:
		return "inset"
	case SignOffset:
		return "offset"
	default:
		return fmt.Sprintf("ConstantSign(%d)", uint8(s))
	}
}

// Constant is a magnitude plus the sign it was written with.
type Constant struct {
	Value float64
	Sign  ConstantSign
}

// DefaultConstant is used when a directive names no constant.
func DefaultConstant() Constant {
	return Constant{Value: 0, Sign: SignPositive}
}

// MultiplierSign qualifies how a multiplier's magnitude is applied.
type MultiplierSign uint8

const (
	SignMultiply MultiplierSign = iota
	SignDivide
)

var multiplierSignNames = map[string]MultiplierSign{
	"multiply": SignMultiply,
	"*":        SignMultiply,
	"divide":   SignDivide,
	"/":        SignDivide,
}

// LookupMultiplierSign resolves a multiplier sign name or its shorthand modifier.
func LookupMultiplierSign(s string) (MultiplierSign, bool) {
	sign, ok := multiplierSignNames[strings.ToLower(strings.TrimSpace(s))]
	return sign, ok
}

func (s MultiplierSign) String() string {
	switch s {
	case SignMultiply:
		return "multiply"
	case SignDivide:
		return "divide"
	default:
		return fmt.Sprintf("MultiplierSign(%d)", uint8(s))
	}
}

// Multiplier is a magnitude plus whether it multiplies or divides.
type Multiplier struct {
	Value float64
	Sign  MultiplierSign
}

// DefaultMultiplier is used when a directive names no multiplier.
func DefaultMultiplier() Multiplier {
	return Multiplier{Value: 1, Sign: SignMultiply}
}
