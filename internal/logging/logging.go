// Package logging builds the zap logger used by the alc command and adapts
// it to receive constraint diagnostics.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
)

// New builds a logger at the named level ("debug", "info", "warn", "error").
// Development loggers write human-readable console output.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Reporter logs each diagnostic it receives: warnings at warn level, errors
// at error level. It is safe for concurrent use.
type Reporter struct {
	log *zap.Logger
}

var _ constraint.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to log.
func NewReporter(log *zap.Logger) *Reporter {
	return &Reporter{log: log}
}

// Report implements constraint.Reporter.
func (r *Reporter) Report(d *constraint.Diagnostic) {
	fields := Fields(d)
	if d.Severity == constraint.SeverityError {
		r.log.Error(d.Message, fields...)
		return
	}
	r.log.Warn(d.Message, fields...)
}

// Fields returns the structured fields describing d.
func Fields(d *constraint.Diagnostic) []zap.Field {
	fields := make([]zap.Field, 0, 7)
	if d.Pos.File != "" {
		fields = append(fields, zap.String("file", d.Pos.File))
	}
	if d.Pos.Line > 0 {
		fields = append(fields, zap.Int("line", d.Pos.Line), zap.Int("column", d.Pos.Column))
	}
	if d.Pos.View != "" {
		fields = append(fields, zap.String("view", d.Pos.View))
	}
	if d.Pos.Key != "" {
		fields = append(fields, zap.String("key", d.Pos.Key))
	}
	if d.Identifier != "" {
		fields = append(fields, zap.String("identifier", d.Identifier))
	}
	if d.Hint != "" {
		fields = append(fields, zap.String("hint", d.Hint))
	}
	return fields
}
