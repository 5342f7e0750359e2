package asciidoc

// Prelude captures the optional title line, block anchor, and attribute
// list that may precede any block, in any order. Each kind may appear at
// most once; the loop stops at the first iteration that consumes nothing
// new.
type Prelude struct {
	TitleSource   *Span
	Title         *string
	Anchor        *Span
	AnchorReftext *Span
	Attrlist      *Attrlist

	// Source is the span as first encountered, before any metadata lines
	// were consumed.
	Source Span

	// BlockStart is the span immediately following the consumed metadata
	// lines: the start of the block body.
	BlockStart Span
}

// IsEmpty reports whether neither a title nor an attribute list was found.
func (p Prelude) IsEmpty() bool {
	return p.Title == nil && p.Attrlist == nil
}

// IsDiscrete reports whether the prelude's attrlist declares the `discrete`
// or `float` block style, which (when found preceding a heading line)
// suppresses section recognition.
func (p Prelude) IsDiscrete() bool {
	if p.Attrlist == nil {
		return false
	}

	style, ok := p.Attrlist.BlockStyle()

	return ok && (style == "discrete" || style == "float")
}

// parsePrelude consumes the block metadata prelude: title line, block
// anchor, and attribute list, in any order, rendering any discovered
// title through the Normal substitution group using the parser's current
// attribute state.
func parsePrelude(source Span, p *Parser) MatchAndWarnings[Prelude] {
	var warnings []Warning

	src := source.DiscardEmptyLines()

	var titleSource *Span
	var anchor *Span
	var reftext *Span
	var attrlist *Attrlist

	blockStart := src

	for {
		originalBlockStart := blockStart
		progressed := false

		if titleSource == nil {
			if mi, ok := tryParseTitle(blockStart); ok {
				t := mi.Item
				titleSource = &t
				blockStart = mi.After
				progressed = true
			}
		}

		if !progressed && anchor == nil {
			if res, ok := tryParseBlockAnchor(blockStart); ok {
				if len(res.warnings) > 0 {
					warnings = append(warnings, res.warnings...)
				}

				if res.mi != nil {
					a, r, valid := splitAnchorReftext(res.mi.Item)
					if valid {
						anchor = &a
						if r != nil {
							reftext = r
						}
						blockStart = res.mi.After
						progressed = true
					} else {
						warnings = append(warnings, Warning{Source: a, Kind: WarningInvalidBlockAnchorName})
					}
				}
			}
		}

		if !progressed && attrlist == nil {
			if mi, maw, ok := tryParseAttrlistLine(blockStart, p); ok {
				warnings = append(warnings, maw.Warnings...)
				al := maw.Item
				attrlist = &al
				blockStart = mi.After
				progressed = true
			}
		}

		if !progressed || blockStart == originalBlockStart {
			break
		}
	}

	var title *string
	if titleSource != nil {
		rendered := RenderSubstitutions(*titleSource, SubstitutionNormal, p)
		title = &rendered
	}

	return MatchAndWarnings[Prelude]{
		Item: Prelude{
			TitleSource:   titleSource,
			Title:         title,
			Anchor:        anchor,
			AnchorReftext: reftext,
			Attrlist:      attrlist,
			Source:        src,
			BlockStart:    blockStart,
		},
		Warnings: warnings,
	}
}

// tryParseTitle recognizes a `.Title` line: a line beginning with exactly
// one `.` (not two) followed by non-whitespace content.
func tryParseTitle(blockStart Span) (MatchedItem[Span], bool) {
	mi := blockStart.TakeNormalizedLine()
	if !mi.Item.StartsWith(".") || mi.Item.StartsWith("..") {
		return MatchedItem[Span]{}, false
	}

	title := mi.Item.Discard(1)
	if title.DiscardWhitespace().IsEmpty() {
		return MatchedItem[Span]{}, false
	}

	return MatchedItem[Span]{Item: title, After: mi.After}, true
}

type anchorLineResult struct {
	mi       *MatchedItem[Span]
	warnings []Warning
}

// tryParseBlockAnchor recognizes a `[[...]]` line. ok is false if the line
// does not even look like a block anchor (so other metadata kinds get a
// chance); when ok is true but mi is nil, an EmptyBlockAnchorName warning
// was recorded and no anchor was consumed.
func tryParseBlockAnchor(blockStart Span) (anchorLineResult, bool) {
	if !blockStart.StartsWith("[[") {
		return anchorLineResult{}, false
	}

	mi := blockStart.TakeNormalizedLine()
	if !mi.Item.EndsWith("]]") {
		return anchorLineResult{}, false
	}

	anchorSrc := mi.Item.Slice(2, mi.Item.Len()-2)
	if anchorSrc.IsEmpty() {
		return anchorLineResult{
			warnings: []Warning{{Source: anchorSrc, Kind: WarningEmptyBlockAnchorName}},
		}, true
	}

	item := MatchedItem[Span]{Item: anchorSrc, After: mi.After}

	return anchorLineResult{mi: &item}, true
}

// splitAnchorReftext splits `[[id,reftext]]` content at the first comma
// (only when something follows it) and validates the anchor name is a
// valid XML Name.
func splitAnchorReftext(content Span) (anchor Span, reftext *Span, valid bool) {
	if n, found := content.Position(func(r rune) bool { return r == ',' }); found && n < content.Len()-1 {
		a := content.SliceTo(n)
		r := content.SliceFrom(n + 1)

		return a, &r, a.IsXMLName()
	}

	return content, nil, content.IsXMLName()
}

// tryParseAttrlistLine recognizes a `[...]` line that is a genuine block
// attribute list (not bibliography-style `[[[id]]]` or a line whose
// bracketed content starts with whitespace or is itself bracketed).
func tryParseAttrlistLine(blockStart Span, p *Parser) (MatchedItem[Span], MatchAndWarnings[Attrlist], bool) {
	r, width := blockStart.firstRune()
	if width == 0 || r != '[' {
		return MatchedItem[Span]{}, MatchAndWarnings[Attrlist]{}, false
	}

	mi := blockStart.TakeNormalizedLine()
	if !mi.Item.EndsWith("]") {
		return MatchedItem[Span]{}, MatchAndWarnings[Attrlist]{}, false
	}

	attrlistSrc := mi.Item.Slice(1, mi.Item.Len()-1)

	if attrlistSrc.StartsWith(" ") || attrlistSrc.StartsWith("\t") ||
		(attrlistSrc.StartsWith("[") && attrlistSrc.EndsWith("]")) {
		return MatchedItem[Span]{}, MatchAndWarnings[Attrlist]{}, false
	}

	expanded := expandAttributeReferences(attrlistSrc, p)
	maw := ParseAttrlist(expanded)

	return MatchedItem[Span]{Item: attrlistSrc, After: mi.After}, maw, true
}
