// Package asciidoc parses AsciiDoc source into a structured tree of blocks
// and inline content, alongside a catalog of cross-reference targets and a
// set of non-fatal diagnostic warnings.
//
// The parser is non-rendering: it identifies document structure, captures
// provenance (line, column, and byte offset) for every recognized span, and
// applies the AsciiDoc substitution pipeline to produce rendered inline
// content. It does not lower to HTML, DocBook, or any other output format —
// that is the job of a downstream converter built on top of the tree
// returned by [Parse].
//
// # Usage
//
//	doc, err := asciidoc.Parse(source)
//	if err != nil {
//	    // err is only non-nil for malformed UTF-8; structural problems are
//	    // reported as warnings, not errors.
//	}
//	for _, w := range doc.Warnings {
//	    fmt.Printf("%d:%d: %s\n", w.Source.Line(), w.Source.Col(), w.Kind)
//	}
//
// # Design principles
//
//   - Zero-copy spans: every node in the tree is a view over the original
//     source string, never a duplicate of it.
//   - Best-effort parsing: the parser never fails fatally on well-formed
//     UTF-8 input. Malformed constructs emit a [Warning] and produce the
//     best tree the parser can still construct.
//   - Single-threaded: a [Parser] is not safe for concurrent use. Build one
//     per parse.
package asciidoc
