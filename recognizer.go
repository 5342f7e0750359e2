package asciidoc

import (
	"strconv"
	"strings"
)

// delimiterSpec associates an opening line's sigil and required run length
// with the block kind and context it introduces.
type delimiterSpec struct {
	sigil            byte
	minLen           int
	exact            bool // true when length must equal minLen exactly (open block)
	compoundContext  CompoundDelimitedContext
	rawContext       RawDelimitedContext
	isCompound       bool
}

var delimiterSpecs = []delimiterSpec{
	{sigil: '=', minLen: 4, compoundContext: ContextExample, isCompound: true},
	{sigil: '*', minLen: 4, compoundContext: ContextSidebar, isCompound: true},
	{sigil: '_', minLen: 4, compoundContext: ContextQuote, isCompound: true},
	{sigil: '-', minLen: 2, exact: true, compoundContext: ContextOpen, isCompound: true},
	{sigil: '-', minLen: 4, rawContext: ContextListing},
	{sigil: '.', minLen: 4, rawContext: ContextLiteral},
	{sigil: '+', minLen: 4, rawContext: ContextPass},
	{sigil: '/', minLen: 4, rawContext: ContextComment},
}

// matchDelimiterLine reports whether line is entirely a repetition of one
// sigil, and if so returns that sigil and the run length.
func matchDelimiterLine(line string) (byte, int, bool) {
	if line == "" {
		return 0, 0, false
	}

	sigil := line[0]
	for i := 0; i < len(line); i++ {
		if line[i] != sigil {
			return 0, 0, false
		}
	}

	return sigil, len(line), true
}

func findDelimiterSpec(sigil byte, length int) (delimiterSpec, bool) {
	for _, spec := range delimiterSpecs {
		if spec.sigil != sigil {
			continue
		}

		if spec.exact {
			if length == spec.minLen {
				return spec, true
			}

			continue
		}

		if length >= spec.minLen {
			return spec, true
		}
	}

	return delimiterSpec{}, false
}

var tableDelimiterSigils = []byte{'|', ',', ':', '!'}

func isTableDelimiterLine(line string) bool {
	if !strings.HasSuffix(line, "===") {
		return false
	}

	prefix := line[:len(line)-3]
	if len(prefix) != 1 {
		return false
	}

	for _, s := range tableDelimiterSigils {
		if prefix[0] == s {
			return true
		}
	}

	return false
}

// parseBlocks recognizes a sequence of blocks from source until source is
// exhausted. It is the entry point used both for the top-level document
// body and for the interior of any container block.
func parseBlocks(source Span, p *Parser, sink *warningSink) []Block {
	var blocks []Block

	cur := source.DiscardEmptyLines()

	for !cur.IsEmpty() {
		block, rest := parseOneBlock(cur, p, sink)
		if rest.Offset() <= cur.Offset() && rest.Len() >= cur.Len() {
			// No progress: guard against infinite loop on unrecognized
			// content by force-consuming one line as a simple block.
			mi := cur.TakeNormalizedLine()
			blocks = append(blocks, Block{
				Kind:        KindSimple,
				blockCommon: blockCommon{source: cur.SliceTo(cur.Len() - mi.After.Len())},
				Simple:      &SimpleBlock{Content: renderContent(mi.Item, SubstitutionNormal, p)},
			})
			cur = mi.After.DiscardEmptyLines()

			continue
		}

		blocks = append(blocks, block)
		cur = rest.DiscardEmptyLines()
	}

	return blocks
}

// parseOneBlock consumes the metadata prelude and then one block from the
// front of source, returning the block and the span immediately after it.
func parseOneBlock(source Span, p *Parser, sink *warningSink) (Block, Span) {
	preludeResult := parsePrelude(source, p)
	sink.addAll(preludeResult.Warnings)

	prelude := preludeResult.Item
	blockStart := prelude.BlockStart

	firstLine := blockStart.TakeNormalizedLine()
	line := firstLine.Item.Data()

	// Sections catalog their own ID; any other block with an explicit ID is
	// catalogued here, before its body is parsed.
	if id, ok := commonFromPrelude(Span{}, prelude).id(); ok && (prelude.IsDiscrete() || !isSectionHeading(line)) {
		var reftext *string
		if prelude.AnchorReftext != nil {
			rt := prelude.AnchorReftext.Data()
			reftext = &rt
		}

		metadata := prelude.Source.SliceTo(prelude.Source.Len() - blockStart.Len())
		if warn, dup := p.catalog.insert(id, reftext, RefBlock, metadata); dup {
			sink.add(warn)
		}
	}

	switch {
	case !prelude.IsDiscrete() && isSectionHeading(line):
		return parseSection(prelude, blockStart, firstLine, p, sink)

	case isDelimiterLine(line):
		return parseDelimited(prelude, blockStart, firstLine, line, p, sink)

	case isTableDelimiterLine(line):
		return parseOpaqueTable(prelude, blockStart, firstLine, line, p, sink)

	case isMediaMacroLine(line):
		return parseMedia(prelude, blockStart, firstLine, p)

	case isBreakLine(line):
		return parseBreak(prelude, blockStart, firstLine)

	case isAttributeEntryLine(line):
		return parseAttributeEntry(prelude, blockStart, firstLine, p)

	case matchListMarker(line) != nil:
		return parseList(prelude, blockStart, p, sink)

	default:
		return parseSimple(prelude, blockStart, p)
	}
}

func isSectionHeading(line string) bool {
	n := 0
	for n < len(line) && n < 6 && line[n] == '=' {
		n++
	}

	if n < 1 || n >= len(line) {
		return false
	}

	return line[n] == ' ' && n+1 < len(line) && strings.TrimSpace(line[n+1:]) != ""
}

func isDelimiterLine(line string) bool {
	sigil, length, ok := matchDelimiterLine(line)
	if !ok {
		return false
	}

	_, found := findDelimiterSpec(sigil, length)

	return found
}

func isMediaMacroLine(line string) bool {
	for _, name := range []string{"image::", "video::", "audio::"} {
		if strings.HasPrefix(line, name) {
			idx := strings.IndexByte(line, '[')

			return idx > len(name) && strings.HasSuffix(line, "]")
		}
	}

	return false
}

func isBreakLine(line string) bool {
	return line == "'''" || line == "<<<"
}

func isAttributeEntryLine(line string) bool {
	if !strings.HasPrefix(line, ":") {
		return false
	}

	rest := line[1:]
	if strings.HasPrefix(rest, "!") {
		rest = rest[1:]
	}

	idx := strings.IndexByte(rest, ':')
	if idx <= 0 {
		return false
	}

	name := rest[:idx]

	return isValidAttributeName(name)
}

func isValidAttributeName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		if !isAttrNameChar(name[i]) {
			return false
		}
	}

	return true
}

// parseSimple consumes consecutive non-blank lines that do not start a new
// block kind, rendering them as one paragraph.
func parseSimple(prelude Prelude, blockStart Span, p *Parser) (Block, Span) {
	cur := blockStart
	end := blockStart

	for {
		mi := cur.TakeNormalizedLine()
		if mi.Item.IsEmpty() {
			break
		}

		end = mi.After
		cur = mi.After

		if cur.IsEmpty() {
			break
		}

		peek := cur.TakeNormalizedLine()
		if peek.Item.IsEmpty() || startsNewBlock(peek.Item.Data()) {
			break
		}
	}

	bodySource := blockStart.Slice(0, blockStart.Len()-end.Len())
	content := renderContent(bodySource.TrimTrailingLineEnd(), subsForOverride(SubstitutionNormal, prelude), p)

	full := fullSource(prelude, end).TrimTrailingLineEnd()

	return Block{
		Kind:        KindSimple,
		blockCommon: commonFromPreludeAndEnd(prelude, full),
		Simple:      &SimpleBlock{Content: content},
	}, end
}

func startsNewBlock(line string) bool {
	if isSectionHeading(line) || isDelimiterLine(line) || isTableDelimiterLine(line) ||
		isMediaMacroLine(line) || isBreakLine(line) || isAttributeEntryLine(line) {
		return true
	}

	return matchListMarker(line) != nil
}

func subsForOverride(base SubstitutionGroup, prelude Prelude) SubstitutionGroup {
	if prelude.Attrlist == nil {
		return base
	}

	if a, ok := prelude.Attrlist.NamedAttribute("subs"); ok {
		return ResolveSubsOverride(base, a.Value.Data())
	}

	return base
}

func commonFromPreludeAndEnd(prelude Prelude, full Span) blockCommon {
	c := commonFromPrelude(full, prelude)

	return c
}

// fullSource computes the block's full source span: from the prelude's
// original source start through end.
func fullSource(prelude Prelude, end Span) Span {
	return prelude.Source.Slice(0, end.Offset()-prelude.Source.Offset())
}

// parseDelimited handles both compound and raw delimited blocks.
func parseDelimited(
	prelude Prelude, blockStart Span, firstLine MatchedItem[Span], line string, p *Parser, sink *warningSink,
) (Block, Span) {
	sigil, length, _ := matchDelimiterLine(line)
	spec, _ := findDelimiterSpec(sigil, length)

	opener := line
	interiorStart := firstLine.After

	closeMI, found := findClosingDelimiter(interiorStart, opener)

	var interior Span
	var after Span

	if !found {
		sink.add(Warning{Source: blockStart.SliceTo(firstLine.Item.Len()), Kind: WarningUnterminatedDelimitedBlock})
		interior = interiorStart
		after = interiorStart.DiscardAll()
	} else {
		interior = interiorStart.Slice(0, closeMI.Item.Offset()-interiorStart.Offset())
		after = closeMI.After
	}

	full := fullSource(prelude, after)
	common := commonFromPreludeAndEnd(prelude, full)

	if spec.isCompound {
		nested := parseBlocks(interior, p, sink)

		return Block{
			Kind:              KindCompoundDelimited,
			blockCommon:       common,
			CompoundDelimited: &CompoundDelimitedBlock{Context: spec.compoundContext, Blocks: nested},
		}, after
	}

	group := SubstitutionVerbatim
	if spec.rawContext == ContextComment || spec.rawContext == ContextPass {
		group = SubstitutionNone
	}

	content := renderContent(interior.TrimTrailingLineEnd(), subsForOverride(group, prelude), p)

	return Block{
		Kind:         KindRawDelimited,
		blockCommon:  common,
		RawDelimited: &RawDelimitedBlock{Context: spec.rawContext, Content: content},
	}, after
}

// findClosingDelimiter scans source line-by-line for the first line whose
// trimmed content exactly equals opener, returning the matching line's own
// span (so callers can compute offsets) via a MatchedItem whose Item is
// that line's span within source and After is the span following it.
func findClosingDelimiter(source Span, opener string) (MatchedItem[Span], bool) {
	cur := source

	for !cur.IsEmpty() {
		lineStart := cur
		mi := cur.TakeNormalizedLine()

		if mi.Item.Data() == opener {
			return MatchedItem[Span]{Item: lineStart.Slice(0, lineStart.Len()-mi.After.Len()), After: mi.After}, true
		}

		if mi.After.Offset() == cur.Offset() {
			break
		}

		cur = mi.After
	}

	return MatchedItem[Span]{}, false
}

// parseOpaqueTable captures a table's delimited content verbatim as a
// RawDelimited block with Context "table": table body parsing is a
// pluggable collaborator rather than built into the recognizer.
func parseOpaqueTable(
	prelude Prelude, blockStart Span, firstLine MatchedItem[Span], line string, p *Parser, sink *warningSink,
) (Block, Span) {
	interiorStart := firstLine.After
	closeMI, found := findClosingDelimiter(interiorStart, line)

	var interior Span
	var after Span

	if !found {
		sink.add(Warning{Source: blockStart.SliceTo(firstLine.Item.Len()), Kind: WarningUnterminatedDelimitedBlock})
		interior = interiorStart
		after = interiorStart.DiscardAll()
	} else {
		interior = interiorStart.Slice(0, closeMI.Item.Offset()-interiorStart.Offset())
		after = closeMI.After
	}

	full := fullSource(prelude, after)
	common := commonFromPreludeAndEnd(prelude, full)

	if p != nil && p.tableParser != nil {
		var attrs *Attrlist
		if prelude.Attrlist != nil {
			attrs = prelude.Attrlist
		}

		_, _ = p.tableParser.ParseTable(string(line[0]), attrs, interior)
	}

	return Block{
		Kind:         KindRawDelimited,
		blockCommon:  common,
		RawDelimited: &RawDelimitedBlock{Context: RawDelimitedContext("table"), Content: Content{Original: interior}},
	}, after
}

func parseMedia(prelude Prelude, blockStart Span, firstLine MatchedItem[Span], p *Parser) (Block, Span) {
	line := firstLine.Item.Data()

	var mediaType MediaType
	var name string

	switch {
	case strings.HasPrefix(line, "image::"):
		mediaType, name = MediaImage, "image::"
	case strings.HasPrefix(line, "video::"):
		mediaType, name = MediaVideo, "video::"
	default:
		mediaType, name = MediaAudio, "audio::"
	}

	openIdx := strings.IndexByte(line, '[')

	targetSpan := firstLine.Item.Slice(len(name), openIdx)
	attrSpan := firstLine.Item.Slice(openIdx+1, len(line)-1)

	expanded := expandAttributeReferences(attrSpan, p)
	maw := ParseAttrlist(expanded)

	full := fullSource(prelude, firstLine.After)
	common := commonFromPreludeAndEnd(prelude, full)

	return Block{
		Kind:        KindMedia,
		blockCommon: common,
		Media:       &MediaBlock{MediaType: mediaType, Target: targetSpan, MacroAttrlist: maw.Item},
	}, firstLine.After
}

func parseBreak(prelude Prelude, blockStart Span, firstLine MatchedItem[Span]) (Block, Span) {
	kind := BreakThematic
	if firstLine.Item.Data() == "<<<" {
		kind = BreakPage
	}

	full := fullSource(prelude, firstLine.After)
	common := commonFromPreludeAndEnd(prelude, full)

	return Block{
		Kind:        KindBreak,
		blockCommon: common,
		Break:       &BreakBlock{BreakKind: kind},
	}, firstLine.After
}

func parseAttributeEntry(prelude Prelude, blockStart Span, firstLine MatchedItem[Span], p *Parser) (Block, Span) {
	line := firstLine.Item.Data()
	rest := line[1:]
	unset := strings.HasPrefix(rest, "!")

	if unset {
		rest = rest[1:]
	}

	idx := strings.IndexByte(rest, ':')
	name := rest[:idx]
	valueText := strings.TrimSpace(rest[idx+1:])

	var value InterpretedValue
	switch {
	case unset:
		value = InterpretedValue{Kind: AttributeUnset}
		p.UnsetAttribute(name)
	case valueText == "":
		value = InterpretedValue{Kind: AttributeSet}
		p.SetAttribute(name, "")
	default:
		value = InterpretedValue{Kind: AttributeValue, Text: valueText}
		p.SetAttribute(name, valueText)
	}

	full := fullSource(prelude, firstLine.After)
	common := commonFromPreludeAndEnd(prelude, full)

	return Block{
		Kind:              KindDocumentAttribute,
		blockCommon:       common,
		DocumentAttribute: &DocumentAttributeBlock{Name: name, Value: value},
	}, firstLine.After
}

// listMarkerMatch describes a recognized list marker at the start of a
// line, along with the byte length it occupies.
type listMarkerMatch struct {
	marker ListMarker
	width  int
}

func matchListMarker(line string) *listMarkerMatch {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return nil
	}

	indent := len(line) - len(trimmed)

	if n, w := countRun(trimmed, '*'); n > 0 && w < len(trimmed) && trimmed[w] == ' ' {
		return &listMarkerMatch{marker: ListMarker{Kind: MarkerBullet, Depth: n}, width: indent + w + 1}
	}

	if n, w := countRun(trimmed, '-'); n == 1 && w < len(trimmed) && trimmed[w] == ' ' {
		return &listMarkerMatch{marker: ListMarker{Kind: MarkerBullet, Depth: 1}, width: indent + w + 1}
	}

	if n, w := countRun(trimmed, '.'); n > 0 && w < len(trimmed) && trimmed[w] == ' ' {
		return &listMarkerMatch{marker: ListMarker{Kind: MarkerNumbered, Depth: n}, width: indent + w + 1}
	}

	if w, ok := matchArabicMarker(trimmed); ok {
		return &listMarkerMatch{marker: ListMarker{Kind: MarkerNumbered, Depth: 1}, width: indent + w}
	}

	if term, width, ok := matchDescriptionMarker(trimmed); ok {
		return &listMarkerMatch{marker: ListMarker{Kind: MarkerDefinedTerm, Term: term}, width: indent + width}
	}

	return nil
}

func countRun(s string, b byte) (int, int) {
	n := 0
	for n < len(s) && s[n] == b {
		n++
	}

	return n, n
}

func matchArabicMarker(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == 0 || i >= len(s) || s[i] != '.' {
		return 0, false
	}

	i++
	if i >= len(s) || s[i] != ' ' {
		return 0, false
	}

	return i + 1, true
}

func matchDescriptionMarker(s string) (string, int, bool) {
	for colons := 4; colons >= 2; colons-- {
		sep := strings.Repeat(":", colons)

		idx := strings.Index(s, sep)
		if idx <= 0 {
			continue
		}

		after := idx + colons
		if after < len(s) && s[after] != ' ' {
			continue
		}

		term := s[:idx]
		width := after

		if after < len(s) {
			width++
		}

		return term, width, true
	}

	return "", 0, false
}

// parseList consumes a run of consecutive list items sharing the first
// item's kind and depth, recursing into each item's own blocks.
func parseList(prelude Prelude, blockStart Span, p *Parser, sink *warningSink) (Block, Span) {
	cur := blockStart

	first := matchListMarker(cur.TakeNormalizedLine().Item.Data())

	var items []ListItemBlock

	end := blockStart

	for {
		peekLine := cur.TakeNormalizedLine()
		if peekLine.Item.IsEmpty() {
			break
		}

		m := matchListMarker(peekLine.Item.Data())
		if m == nil || m.marker.Kind != first.marker.Kind || m.marker.Depth != first.marker.Depth {
			break
		}

		itemStart := cur
		itemLineEnd := peekLine.After
		bodyAfterMarker := peekLine.Item.Slice(m.width, peekLine.Item.Len())

		itemText := strings.TrimSpace(bodyAfterMarker.Data())
		itemSourceEnd := itemLineEnd

		var nestedBlocks []Block

		if itemText != "" {
			nestedBlocks = append(nestedBlocks, Block{
				Kind: KindSimple,
				blockCommon: blockCommon{
					source: bodyAfterMarker,
				},
				Simple: &SimpleBlock{Content: renderContent(bodyAfterMarker, SubstitutionNormal, p)},
			})
		}

		cur = itemLineEnd

		for {
			contLine := cur.TakeNormalizedLine()
			if contLine.Item.Data() == "+" {
				afterPlus := contLine.After
				nextBlock, rest := parseOneBlock(afterPlus, p, sink)
				nestedBlocks = append(nestedBlocks, nextBlock)
				cur = rest
				itemSourceEnd = rest

				continue
			}

			break
		}

		items = append(items, ListItemBlock{
			Marker: first.marker,
			Blocks: nestedBlocks,
			source: itemStart.Slice(0, itemSourceEnd.Offset()-itemStart.Offset()),
		})

		end = itemSourceEnd

		cur = end.DiscardEmptyLines()
		if cur.Offset() != end.Offset() {
			break
		}
	}

	listType := ListUnordered
	switch first.marker.Kind {
	case MarkerNumbered:
		listType = ListOrdered
	case MarkerDefinedTerm:
		listType = ListDescription
	}

	full := fullSource(prelude, end)
	common := commonFromPreludeAndEnd(prelude, full)

	return Block{
		Kind:        KindList,
		blockCommon: common,
		List:        &ListBlock{Type: listType, Items: items},
	}, end
}

// parseSection recognizes a heading line and consumes everything up to
// (but not including) the next heading of equal or lower level.
func parseSection(
	prelude Prelude, blockStart Span, firstLine MatchedItem[Span], p *Parser, sink *warningSink,
) (Block, Span) {
	line := firstLine.Item.Data()

	n := 0
	for n < len(line) && line[n] == '=' {
		n++
	}

	level := n - 1
	titleSource := firstLine.Item.Slice(n+1, firstLine.Item.Len())

	renderedTitle := RenderSubstitutions(titleSource, SubstitutionHeader, p)

	id, reftext := resolveSectionID(prelude, renderedTitle, p)
	if warn, dup := p.catalog.insert(id, reftext, RefSection, titleSource); dup {
		sink.add(warn)
	}

	cur := firstLine.After
	var bodyBlocks []Block
	end := firstLine.After

	for {
		cur = cur.DiscardEmptyLines()
		if cur.IsEmpty() {
			end = cur

			break
		}

		peekPrelude := parsePrelude(cur, p)
		peekLine := peekPrelude.Item.BlockStart.TakeNormalizedLine()

		if !peekPrelude.Item.IsDiscrete() && isSectionHeading(peekLine.Item.Data()) {
			peekLevel := headingLevel(peekLine.Item.Data())
			if peekLevel <= level {
				end = cur

				break
			}
		}

		block, rest := parseOneBlock(cur, p, sink)
		bodyBlocks = append(bodyBlocks, block)
		cur = rest
		end = rest
	}

	full := fullSource(prelude, end)
	common := commonFromPreludeAndEnd(prelude, full)
	common.title = &renderedTitle
	common.titleSource = &titleSource

	anchor := Span{data: id}
	common.anchor = &anchor

	return Block{
		Kind:        KindSection,
		blockCommon: common,
		Section:     &SectionBlock{Level: level, Blocks: bodyBlocks},
	}, end
}

func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '=' {
		n++
	}

	return n - 1
}

func resolveSectionID(prelude Prelude, renderedTitle string, p *Parser) (string, *string) {
	if prelude.Anchor != nil {
		id := prelude.Anchor.Data()
		if prelude.AnchorReftext != nil {
			rt := prelude.AnchorReftext.Data()

			return id, &rt
		}

		rt := renderedTitle

		return id, &rt
	}

	if prelude.Attrlist != nil {
		if id, ok := prelude.Attrlist.ID(); ok {
			rt := renderedTitle

			return id, &rt
		}
	}

	id := generateID(renderedTitle, p)
	rt := renderedTitle

	return id, &rt
}

func generateID(title string, p *Parser) string {
	base := "_" + slugify(title)
	id := base

	n := 2
	for {
		if _, exists := p.catalog.Lookup(id); !exists {
			return id
		}

		id = base + "_" + strconv.Itoa(n)
		n++
	}
}

func slugify(title string) string {
	var b strings.Builder

	prevUnderscore := false

	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevUnderscore = false

			continue
		}

		if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}
