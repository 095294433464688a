// Package main provides alc, the compiler for declarative layout files.
//
// Usage:
//
//	alc compile [path...]    Resolve constraints and print them
//	alc check [path...]      Report diagnostics without printing constraints
//	alc watch [path...]      Recompile layout files as they change
//	alc version              Print version information
//
// Examples:
//
//	alc compile ./...                 Recursively compile all layout files
//	alc compile ./screens             Compile the files in a directory
//	alc compile 'screens/**/*.layout.yaml' --exclude '**/legacy/**'
//	alc check --horizontal compact home.layout.yaml
//	alc compile --format json profile.layout.yaml
package main

import (
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
