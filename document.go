package asciidoc

// Header holds the document's title, author/revision lines, attribute
// entries, and line comments: the contiguous prefix preceding the first
// block.
type Header struct {
	TitleSource  *Span
	Title        *string
	Attributes   []DocumentAttributeBlock
	AuthorLine   *Span
	RevisionLine *Span
	Comments     []Span
}

// Document is the root of a parse: the header, the top-level block
// sequence, the full source span, the accumulated warnings in emission
// order, and the finalized cross-reference catalog.
type Document struct {
	Header   Header
	Blocks   []Block
	Source   Span
	Warnings []Warning
	Catalog  *Catalog
}

// AllBlocks walks the tree depth-first (pre-order) and returns every
// block, nested or top-level, in source order.
func (d *Document) AllBlocks() []Block {
	var out []Block

	var walk func([]Block)
	walk = func(blocks []Block) {
		for _, b := range blocks {
			out = append(out, b)
			walk(b.NestedBlocks())
		}
	}

	walk(d.Blocks)

	return out
}
