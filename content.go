package asciidoc

// Content holds a block's textual payload both as originally written and
// after substitutions have been rendered.
type Content struct {
	// Original is the exact source span this content was captured from,
	// before any substitution pass ran.
	Original Span

	// Rendered is the result of applying the block's active substitution
	// group to Original.
	Rendered string
}

func renderContent(source Span, group SubstitutionGroup, p *Parser) Content {
	return Content{
		Original: source,
		Rendered: RenderSubstitutions(source, group, p),
	}
}
