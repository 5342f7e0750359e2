package asciidoc

import "strings"

// headerResult wraps the assembled Header together with the set of
// attribute names it declared, which the caller locks against further
// override once parsing continues past the header.
type headerResult struct {
	Header        Header
	attributesSet map[string]bool
}

// parseHeader consumes the document header: an optional level-0 heading,
// an optional author line, an optional revision
// line, any number of attribute-entry and comment lines, terminated by a
// blank line or end-of-input. Anything else ends the header immediately.
func parseHeader(source Span, p *Parser, sink *warningSink) (headerResult, Span) {
	result := headerResult{attributesSet: make(map[string]bool)}

	cur := source.DiscardEmptyLines()
	headerStart := cur

	firstLine := cur.TakeNormalizedLine()
	if strings.HasPrefix(firstLine.Item.Data(), "= ") {
		titleSource := firstLine.Item.Slice(2, firstLine.Item.Len())
		rendered := RenderSubstitutions(titleSource, SubstitutionHeader, p)

		result.Header.TitleSource = &titleSource
		result.Header.Title = &rendered
		cur = firstLine.After

		if authorLine, ok := tryAuthorLine(cur); ok {
			result.Header.AuthorLine = &authorLine.Item
			cur = authorLine.After

			if revLine, ok := tryRevisionLine(cur); ok {
				result.Header.RevisionLine = &revLine.Item
				cur = revLine.After
			}
		}
	}

	for {
		if cur.IsEmpty() {
			break
		}

		peek := cur.TakeNormalizedLine()
		if peek.Item.IsEmpty() {
			cur = peek.After

			break
		}

		line := peek.Item.Data()

		if strings.HasPrefix(line, "//") && !strings.HasPrefix(line, "///") {
			result.Header.Comments = append(result.Header.Comments, peek.Item)
			cur = peek.After

			continue
		}

		if isAttributeEntryLine(line) {
			block, rest := parseAttributeEntry(Prelude{Source: cur, BlockStart: cur}, cur, peek, p)
			result.Header.Attributes = append(result.Header.Attributes, *block.DocumentAttribute)
			result.attributesSet[block.DocumentAttribute.Name] = true
			cur = rest

			continue
		}

		break
	}

	_ = headerStart

	return result, cur
}

// tryAuthorLine recognizes the line immediately after a document title as
// an author line: present whenever it is non-blank and not itself an
// attribute entry or comment (those belong to the metadata section that
// follows) or a section heading.
func tryAuthorLine(cur Span) (MatchedItem[Span], bool) {
	mi := cur.TakeNormalizedLine()
	if mi.Item.IsEmpty() {
		return MatchedItem[Span]{}, false
	}

	line := mi.Item.Data()
	if isAttributeEntryLine(line) || strings.HasPrefix(line, "//") || isSectionHeading(line) {
		return MatchedItem[Span]{}, false
	}

	return mi, true
}

// tryRevisionLine recognizes a revision line: `version[, date][: remark]`,
// distinguished from an author line by requiring a leading `v` followed by
// a digit, or a line starting with a digit and containing a comma.
func tryRevisionLine(cur Span) (MatchedItem[Span], bool) {
	mi := cur.TakeNormalizedLine()
	if mi.Item.IsEmpty() {
		return MatchedItem[Span]{}, false
	}

	line := mi.Item.Data()

	looksLikeRevision := false
	if len(line) >= 2 && (line[0] == 'v' || line[0] == 'V') && line[1] >= '0' && line[1] <= '9' {
		looksLikeRevision = true
	} else if len(line) >= 1 && line[0] >= '0' && line[0] <= '9' && strings.Contains(line, ",") {
		looksLikeRevision = true
	}

	if !looksLikeRevision {
		return MatchedItem[Span]{}, false
	}

	return mi, true
}

// parsePreambleAndSections handles the content following the document
// header: any leading non-section blocks form the Preamble, and the
// remaining top-level blocks (strictly Section, recursively containing
// their own subsections) follow in source order.
func parsePreambleAndSections(source Span, p *Parser, sink *warningSink) []Block {
	var result []Block

	cur := source.DiscardEmptyLines()

	var preambleBlocks []Block

	preambleStart := cur

	preambleEnd := cur

	for !cur.IsEmpty() {
		peekPrelude := parsePrelude(cur, p)
		peekLine := peekPrelude.Item.BlockStart.TakeNormalizedLine()

		if !peekPrelude.Item.IsDiscrete() && isSectionHeading(peekLine.Item.Data()) {
			break
		}

		block, rest := parseOneBlock(cur, p, sink)
		preambleBlocks = append(preambleBlocks, block)
		preambleEnd = rest
		cur = rest.DiscardEmptyLines()
	}

	// Content preceding the first section is only a Preamble when a
	// section actually follows it; cur is non-empty here exactly when the
	// loop above broke on a section heading rather than running out of
	// input. With no section anywhere, the same blocks are already
	// top-level content and must not be wrapped.
	if len(preambleBlocks) > 0 && !cur.IsEmpty() {
		preambleSource := preambleStart.Slice(0, preambleEnd.Offset()-preambleStart.Offset())
		result = append(result, Block{
			Kind:        KindPreamble,
			blockCommon: blockCommon{source: preambleSource},
			Preamble:    &PreambleBlock{Blocks: preambleBlocks},
		})
	} else {
		result = append(result, preambleBlocks...)
	}

	for !cur.IsEmpty() {
		block, rest := parseOneBlock(cur, p, sink)
		result = append(result, block)
		cur = rest.DiscardEmptyLines()
	}

	return result
}
