package asciidoc

// MatchedItem pairs a successfully parsed item with the span remaining
// after it. It is the universal return type of every sub-parser in this
// package.
type MatchedItem[T any] struct {
	// Item is the parsed value.
	Item T

	// After is the span immediately following the parsed item.
	After Span
}

// MatchAndWarnings pairs a parse result with any non-fatal diagnostics
// emitted while producing it. Warnings accumulate from nested calls and are
// concatenated by the caller to preserve source order.
type MatchAndWarnings[T any] struct {
	Item     T
	Warnings []Warning
}
