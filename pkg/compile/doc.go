// Package compile turns layout documents into resolved constraints.
//
// Compile builds the view hierarchy of one document, expands templates,
// indexes every view by name and runs each constraint directive through the
// constraint package. CompileFiles does the same for many files in parallel,
// each with its own hierarchy and index.
package compile
