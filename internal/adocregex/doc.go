// Package adocregex provides pre-compiled regular expression patterns for
// the quotes, replacements, and macros substitution passes.
//
// This package consolidates every regex-driven inline recognizer used by
// the substitution engine:
//   - quotes.go: constrained/unconstrained bold, emphasis, monospace,
//     mark, superscript, subscript, and curved-quote pairs
//   - replacements.go: fixed character-sequence transformations (ellipsis,
//     em dash, copyright/registered/trademark, arrows, apostrophes)
//   - macros.go: inline macro forms (image, link, mailto, pass, autolinks)
//     and the passthrough shorthand forms
//
// All patterns are pre-compiled at package initialization using
// regexp.MustCompile, ensuring single compilation and efficient matching
// across every document the parser processes.
//
// # Pattern Organization
//
// Each category's patterns are package-level vars named for the
// construct they recognize. There is no further abstraction: the
// substitution engine applies them directly, in pass order, with
// ReplaceAllString or ReplaceAllStringFunc as each construct requires.
package adocregex
