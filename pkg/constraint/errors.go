package constraint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedSource  = errors.New("constraint source in unrecognized format")
	ErrInvalidNumber    = errors.New("invalid numeric value")
	ErrUnresolvedView   = errors.New("unresolved view reference")
	ErrNoCommonAncestor = errors.New("views do not share a common ancestor")
	ErrZeroDivisor      = errors.New("divide multiplier with zero magnitude")
	ErrUnknownTemplate  = errors.New("unknown template")
	ErrTemplateCycle    = errors.New("template cycle")
)

// Severity ranks a diagnostic. Nothing here is fatal; an error means a
// constraint was not applied, a warning means a field was ignored.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Position locates a directive in its layout description.
type Position struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int
	View   string // view id owning the directive
	Key    string // left-hand side of the directive
}

// String renders the position as file:line:col, falling back to view[key].
func (p Position) String() string {
	var sb strings.Builder
	if p.File != "" {
		sb.WriteString(p.File)
	}
	if p.Line > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%d:%d", p.Line, p.Column)
	}
	if p.View != "" || p.Key != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.View)
		if p.Key != "" {
			fmt.Fprintf(&sb, "[%s]", p.Key)
		}
	}
	if sb.Len() == 0 {
		return "<unknown>"
	}
	return sb.String()
}

// Diagnostic is one structured warning or error raised while parsing or
// resolving a directive.
type Diagnostic struct {
	Severity   Severity
	Pos        Position
	Message    string
	Hint       string // optional suggestion for fixing the problem
	Identifier string // constraint identifier, when the directive has one
	Err        error  // sentinel for errors.Is
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	sb.WriteString(d.Pos.String())
	sb.WriteString(": ")
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if d.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(d.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap exposes the sentinel error.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Warningf creates a warning diagnostic with a formatted message.
func Warningf(pos Position, err error, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: SeverityWarning, Pos: pos, Err: err, Message: fmt.Sprintf(format, args...)}
}

// Errorf creates an error diagnostic with a formatted message.
func Errorf(pos Position, err error, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: SeverityError, Pos: pos, Err: err, Message: fmt.Sprintf(format, args...)}
}

// Reporter receives diagnostics. It is passed explicitly through a pass so
// callers decide where diagnostics go.
type Reporter interface {
	Report(d *Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d *Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d *Diagnostic) {
	f(d)
}

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(*Diagnostic) {})

// report sends d to r, tolerating a nil reporter.
func report(r Reporter, d *Diagnostic) {
	if r != nil {
		r.Report(d)
	}
}

// DiagnosticList collects diagnostics during a pass.
type DiagnosticList struct {
	diags []*Diagnostic
}

// NewDiagnosticList creates an empty list.
func NewDiagnosticList() *DiagnosticList {
	return &DiagnosticList{}
}

// Report implements Reporter.
func (dl *DiagnosticList) Report(d *Diagnostic) {
	dl.diags = append(dl.diags, d)
}

// Len returns the number of diagnostics of any severity.
func (dl *DiagnosticList) Len() int {
	return len(dl.diags)
}

// HasErrors returns true if any diagnostic has error severity.
func (dl *DiagnosticList) HasErrors() bool {
	for _, d := range dl.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns a copy of every diagnostic in report order.
func (dl *DiagnosticList) All() []*Diagnostic {
	result := make([]*Diagnostic, len(dl.diags))
	copy(result, dl.diags)
	return result
}

// Errors returns the error-severity diagnostics.
func (dl *DiagnosticList) Errors() []*Diagnostic {
	return dl.filter(SeverityError)
}

// Warnings returns the warning-severity diagnostics.
func (dl *DiagnosticList) Warnings() []*Diagnostic {
	return dl.filter(SeverityWarning)
}

func (dl *DiagnosticList) filter(s Severity) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range dl.diags {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// Error implements the error interface, returning all diagnostics joined by newlines.
func (dl *DiagnosticList) Error() string {
	var sb strings.Builder
	for i, d := range dl.diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.Error())
	}
	return sb.String()
}

// Err returns nil unless the list holds at least one error-severity diagnostic.
func (dl *DiagnosticList) Err() error {
	if !dl.HasErrors() {
		return nil
	}
	return dl
}

// Tee returns a Reporter that forwards every diagnostic to each of rs.
func Tee(rs ...Reporter) Reporter {
	return ReporterFunc(func(d *Diagnostic) {
		for _, r := range rs {
			report(r, d)
		}
	})
}
