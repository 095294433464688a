package constraint

import (
	"fmt"
	"strings"
)

// SizeClass is a coarse environment width or height class.
type SizeClass uint8

const (
	SizeClassUnspecified SizeClass = iota // Matches any environment
	SizeClassCompact
	SizeClassRegular
)

var sizeClassKeys = map[string]SizeClass{
	"u":           SizeClassUnspecified,
	"any":         SizeClassUnspecified,
	"unspecified": SizeClassUnspecified,
	"c":           SizeClassCompact,
	"compact":     SizeClassCompact,
	"r":           SizeClassRegular,
	"regular":     SizeClassRegular,
}

// LookupSizeClass resolves a size class name or its one-letter form.
func LookupSizeClass(s string) (SizeClass, bool) {
	sc, ok := sizeClassKeys[strings.ToLower(strings.TrimSpace(s))]
	return sc, ok
}

func (s SizeClass) String() string {
	switch s {
	case SizeClassUnspecified:
		return "unspecified"
	case SizeClassCompact:
		return "compact"
	case SizeClassRegular:
		return "regular"
	default:
		return fmt.Sprintf("SizeClass(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SizeClass) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SizeClass) UnmarshalText(text []byte) error {
	sc, ok := LookupSizeClass(string(text))
	if !ok {
		return fmt.Errorf("unknown size class %q", text)
	}
	*s = sc
	return nil
}

// SizeClassCondition gates a constraint on the environment's size classes.
type SizeClassCondition struct {
	Horizontal SizeClass `json:"horizontal" yaml:"horizontal"`
	Vertical   SizeClass `json:"vertical" yaml:"vertical"`
}

// IsUnconditional reports whether the condition matches every environment.
func (c SizeClassCondition) IsUnconditional() bool {
	return c.Horizontal == SizeClassUnspecified && c.Vertical == SizeClassUnspecified
}

// Matches reports whether an environment with the given traits satisfies the
// condition. An unspecified class in the condition acts as a wildcard.
func (c SizeClassCondition) Matches(traits SizeClassCondition) bool {
	return sizeClassMatches(c.Horizontal, traits.Horizontal) &&
		sizeClassMatches(c.Vertical, traits.Vertical)
}

func sizeClassMatches(want, have SizeClass) bool {
	return want == SizeClassUnspecified || want == have
}
