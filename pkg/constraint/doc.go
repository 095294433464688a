// Package constraint compiles layout constraint directives into resolved
// constraint specs.
//
// The pipeline consists of:
//   - [ShorthandParser] and [VerboseParser]: read one raw directive through the
//     shared [Parser] contract
//   - [Model]: the parsed directive with defaults applied
//   - [Context]: per-attribute sign and inversion rules
//   - [Model.Establish]: resolves view references, checks ancestry, and hands
//     one [Spec] per left attribute to an [Emitter]
//
// Problems are reported as [Diagnostic] values through a [Reporter] passed in
// by the caller; nothing in the pass is fatal.
package constraint
