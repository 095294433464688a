package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-autolayout/internal/config"
	"github.com/grindlemire/go-autolayout/pkg/compile"
	"github.com/grindlemire/go-autolayout/pkg/constraint"
)

// fileOutput is the serialized result of one file.
type fileOutput struct {
	File        string              `json:"file" yaml:"file"`
	Error       string              `json:"error,omitempty" yaml:"error,omitempty"`
	Constraints []constraint.Record `json:"constraints" yaml:"constraints"`
	Diagnostics []diagnosticOutput  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

type diagnosticOutput struct {
	Severity   string `json:"severity" yaml:"severity"`
	Position   string `json:"position" yaml:"position"`
	Message    string `json:"message" yaml:"message"`
	Hint       string `json:"hint,omitempty" yaml:"hint,omitempty"`
	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
}

func toOutput(fr *compile.FileResult) fileOutput {
	out := fileOutput{File: fr.Path, Constraints: []constraint.Record{}}
	if fr.Err != nil {
		out.Error = fr.Err.Error()
	}
	if fr.Result == nil {
		return out
	}
	for _, s := range fr.Result.Specs {
		out.Constraints = append(out.Constraints, s.Record())
	}
	for _, d := range fr.Result.Diagnostics.All() {
		out.Diagnostics = append(out.Diagnostics, diagnosticOutput{
			Severity:   d.Severity.String(),
			Position:   d.Pos.String(),
			Message:    d.Message,
			Hint:       d.Hint,
			Identifier: d.Identifier,
		})
	}
	return out
}

// writeResults prints the resolved constraints of every file in format.
func writeResults(w io.Writer, format string, results []*compile.FileResult) error {
	switch format {
	case config.FormatJSON:
		outputs := make([]fileOutput, 0, len(results))
		for _, fr := range results {
			outputs = append(outputs, toOutput(fr))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)

	case config.FormatYAML:
		outputs := make([]fileOutput, 0, len(results))
		for _, fr := range results {
			outputs = append(outputs, toOutput(fr))
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outputs); err != nil {
			return err
		}
		return enc.Close()

	default:
		for i, fr := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", fr.Path)
			if fr.Result == nil {
				continue
			}
			for _, s := range fr.Result.Specs {
				marker := " "
				if !s.Active {
					marker = "-"
				}
				fmt.Fprintf(w, "%s %s\n", marker, s)
			}
		}
		return nil
	}
}

// writeDiagnostics prints file errors and diagnostics in compiler style and
// returns the number of files that failed.
func writeDiagnostics(w io.Writer, results []*compile.FileResult) int {
	failed := 0
	for _, fr := range results {
		if fr.Err != nil {
			fmt.Fprintf(w, "%s: %v\n", fr.Path, fr.Err)
		}
		if fr.Result != nil {
			for _, d := range fr.Result.Diagnostics.All() {
				fmt.Fprintln(w, d.Error())
			}
		}
		if fr.Failed() {
			failed++
		}
	}
	return failed
}
