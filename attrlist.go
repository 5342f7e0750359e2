package asciidoc

import "strings"

// ElementAttribute is a single entry in an attribute list: either a named
// attribute (`name=value`), a plain positional attribute, or — only for the
// first positional attribute of a block — a positional attribute whose
// value decomposes into shorthand items (`style#id.role%option`).
type ElementAttribute struct {
	// Name is set for named attributes (`name=value`); nil for positional
	// attributes.
	Name *Span

	// ShorthandItems holds the decomposition of the first positional
	// attribute's value, if shorthand syntax was used. Each item retains
	// its leading sigil (`#`, `.`, `%`), or no sigil for a leading block
	// style token.
	ShorthandItems []Span

	// Value is the attribute's raw value (quotes removed, escapes
	// resolved for quoted values).
	Value Span

	// Source is the exact span of text in the input contributed by this
	// attribute.
	Source Span
}

// IsPositional reports whether this attribute has no name.
func (a ElementAttribute) IsPositional() bool { return a.Name == nil }

// Attrlist is the parsed form of the text between (but not including) the
// enclosing `[` and `]` of a block or inline macro attribute list.
type Attrlist struct {
	Attributes []ElementAttribute
	Source     Span
}

// NamedAttribute returns the named attribute with the given name, if any.
func (al Attrlist) NamedAttribute(name string) (ElementAttribute, bool) {
	for _, a := range al.Attributes {
		if a.Name != nil && a.Name.Data() == name {
			return a, true
		}
	}

	return ElementAttribute{}, false
}

// NthAttribute returns the nth (1-based) positional attribute, counting
// only positional entries.
func (al Attrlist) NthAttribute(n int) (ElementAttribute, bool) {
	if n < 1 {
		return ElementAttribute{}, false
	}

	count := 0
	for _, a := range al.Attributes {
		if a.IsPositional() {
			count++
			if count == n {
				return a, true
			}
		}
	}

	return ElementAttribute{}, false
}

// NamedOrPositionalAttribute returns the named attribute `name` if present,
// falling back to the nth positional attribute otherwise.
func (al Attrlist) NamedOrPositionalAttribute(name string, n int) (ElementAttribute, bool) {
	if a, ok := al.NamedAttribute(name); ok {
		return a, true
	}

	return al.NthAttribute(n)
}

// ID returns the block's ID: the shorthand `#id` item of the first
// positional attribute if present (shorthand takes precedence), otherwise
// the value of a named `id=` attribute.
func (al Attrlist) ID() (string, bool) {
	if first, ok := al.NthAttribute(1); ok {
		for _, item := range first.ShorthandItems {
			if strings.HasPrefix(item.Data(), "#") {
				return item.Data()[1:], true
			}
		}
	}

	if a, ok := al.NamedAttribute("id"); ok {
		return a.Value.Data(), true
	}

	return "", false
}

// Roles returns every role applied to the block: shorthand `.role` items
// of the first positional attribute plus the whitespace-split tokens of a
// `role=` attribute.
func (al Attrlist) Roles() []string {
	var roles []string

	if first, ok := al.NthAttribute(1); ok {
		for _, item := range first.ShorthandItems {
			if strings.HasPrefix(item.Data(), ".") {
				roles = append(roles, item.Data()[1:])
			}
		}
	}

	if a, ok := al.NamedAttribute("role"); ok {
		roles = append(roles, strings.Fields(a.Value.Data())...)
	}

	return roles
}

// Options returns every option applied to the block: shorthand `%option`
// items of the first positional attribute plus the comma-split tokens of
// an `opts=`/`options=` attribute.
func (al Attrlist) Options() []string {
	var opts []string

	if first, ok := al.NthAttribute(1); ok {
		for _, item := range first.ShorthandItems {
			if strings.HasPrefix(item.Data(), "%") {
				opts = append(opts, item.Data()[1:])
			}
		}
	}

	for _, name := range []string{"opts", "options"} {
		if a, ok := al.NamedAttribute(name); ok {
			for _, tok := range strings.Split(a.Value.Data(), ",") {
				tok = strings.TrimSpace(tok)
				if tok != "" {
					opts = append(opts, tok)
				}
			}
		}
	}

	return opts
}

// BlockStyle returns the leading shorthand token of the first positional
// attribute (the text before the first `#`, `.`, or `%`), if present.
func (al Attrlist) BlockStyle() (string, bool) {
	first, ok := al.NthAttribute(1)
	if !ok || len(first.ShorthandItems) == 0 {
		return "", false
	}

	leading := first.ShorthandItems[0]
	if isShorthandSigil(leading.Data()) {
		return "", false
	}

	return leading.Data(), true
}

func isShorthandSigil(item string) bool {
	return strings.HasPrefix(item, "#") || strings.HasPrefix(item, ".") || strings.HasPrefix(item, "%")
}

// isAttrNameChar reports whether r is valid within an attribute name: a
// word character or hyphen.
func isAttrNameChar(r byte) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ParseAttrlist tokenizes the text between (but not including) the
// enclosing `[` `]` of a block or inline macro attribute list.
func ParseAttrlist(source Span) MatchAndWarnings[Attrlist] {
	var warnings []Warning

	var attrs []ElementAttribute
	cur := source
	positionalIndex := 0

	for {
		cur = cur.DiscardWhitespace()
		if cur.IsEmpty() {
			break
		}

		// Two consecutive commas: empty attribute value.
		if cur.StartsWith(",") {
			warnings = append(warnings, Warning{Source: cur.SliceTo(1), Kind: WarningEmptyAttributeValue})
			cur = cur.Discard(1)

			continue
		}

		entryStart := cur

		name, isNamed, afterName := tryParseAttributeName(cur)

		var value Span
		var valueSource Span
		var shorthand []Span
		var quoted bool

		if isNamed {
			cur = afterName
		}

		value, valueSource, quoted, cur = parseAttributeValue(cur)

		if quoted {
			// After a quoted value, the next char must be `,` or EOL.
			trimmed := cur.DiscardWhitespace()
			if !trimmed.IsEmpty() && !trimmed.StartsWith(",") {
				warnings = append(warnings, Warning{
					Source: trimmed.SliceTo(1),
					Kind:   WarningMissingCommaAfterQuotedAttributeValue,
				})
			}
		}

		var namePtr *Span
		if isNamed {
			n := name

			namePtr = &n
		} else {
			positionalIndex++
			if positionalIndex == 1 {
				var shorthandWarnings []Warning
				shorthand, shorthandWarnings = decomposeShorthand(value)
				warnings = append(warnings, shorthandWarnings...)
			}
		}

		attrSource := entryStart.Slice(0, entryStart.Len()-cur.Len())
		_ = valueSource

		attrs = append(attrs, ElementAttribute{
			Name:           namePtr,
			ShorthandItems: shorthand,
			Value:          value,
			Source:         attrSource,
		})

		cur = cur.DiscardWhitespace()
		if cur.StartsWith(",") {
			cur = cur.Discard(1)
		}
	}

	return MatchAndWarnings[Attrlist]{
		Item:     Attrlist{Attributes: attrs, Source: source},
		Warnings: warnings,
	}
}

// tryParseAttributeName checks whether cur begins with `name=` (ignoring
// surrounding horizontal whitespace around `=`). If so it returns the name
// span, true, and the span immediately following `=`.
func tryParseAttributeName(cur Span) (Span, bool, Span) {
	data := cur.Data()

	i := 0
	for i < len(data) && isAttrNameChar(data[i]) {
		i++
	}

	if i == 0 {
		return Span{}, false, cur
	}

	nameEnd := i
	j := i
	for j < len(data) && isHorizontalSpace(data[j]) {
		j++
	}

	if j >= len(data) || data[j] != '=' {
		return Span{}, false, cur
	}

	name := cur.SliceTo(nameEnd)
	after := cur.Discard(j + 1).DiscardWhitespace()

	return name, true, after
}

// parseAttributeValue parses one attribute's value starting at cur,
// handling single- and double-quoted values and their escape sequences.
// It returns the
// unescaped value, the raw source span of the value including quotes if
// any, whether the value was quoted, and the remaining span.
func parseAttributeValue(cur Span) (value Span, valueSource Span, quoted bool, rest Span) {
	if cur.IsEmpty() {
		return cur, cur, false, cur
	}

	first, width := cur.firstRune()
	if first == '"' || first == '\'' {
		quote := byte(first)

		return parseQuotedValue(cur, width, quote)
	}

	n, found := cur.Position(func(r rune) bool { return r == ',' })
	if !found {
		n = cur.Len()
	}

	v := cur.SliceTo(n)

	return v, v, false, cur.Discard(n)
}

// parseQuotedValue consumes a quoted value starting at cur (whose first
// rune is the opening quote of width quoteWidth), unescaping `\"`/`\'` and
// returning the span after the closing quote.
func parseQuotedValue(cur Span, quoteWidth int, quote byte) (value Span, valueSource Span, quoted bool, rest Span) {
	data := cur.Data()
	i := quoteWidth

	var unescaped strings.Builder

	for i < len(data) {
		if data[i] == '\\' && i+1 < len(data) && data[i+1] == quote {
			unescaped.WriteByte(quote)
			i += 2

			continue
		}

		if data[i] == quote {
			inner := cur.Slice(quoteWidth, i)
			value = Span{data: unescaped.String(), line: inner.line, col: inner.col, offset: inner.offset}
			valueSource = cur.SliceTo(i + 1)
			rest = cur.Discard(i + 1)

			return value, valueSource, true, rest
		}

		_, w := decodeRuneAt(data, i)
		unescaped.WriteString(data[i : i+w])
		i += w
	}

	// Unterminated quote: best-effort, treat rest of span as the value.
	inner := cur.Slice(quoteWidth, len(data))
	value = Span{data: unescaped.String(), line: inner.line, col: inner.col, offset: inner.offset}
	valueSource = cur

	return value, valueSource, true, cur.DiscardAll()
}

func decodeRuneAt(data string, i int) (rune, int) {
	s := Span{data: data[i:]}

	return s.firstRune()
}

// decomposeShorthand splits a first positional attribute's value into the
// optional leading block-style token followed by repeated `#id`, `.role`,
// and `%option` items in the order they appear.
func decomposeShorthand(value Span) ([]Span, []Warning) {
	var items []Span
	var warnings []Warning

	data := value.Data()
	if data == "" {
		return nil, nil
	}

	isSigil := func(b byte) bool { return b == '#' || b == '.' || b == '%' }

	cur := value
	if !isSigil(data[0]) {
		n, found := cur.Position(func(r rune) bool { return r == '#' || r == '.' || r == '%' })
		if !found {
			items = append(items, cur)

			return items, nil
		}

		items = append(items, cur.SliceTo(n))
		cur = cur.SliceFrom(n)
	}

	for !cur.IsEmpty() {
		n, found := cur.SliceFrom(1).Position(func(r rune) bool { return r == '#' || r == '.' || r == '%' })

		var item Span
		if found {
			item = cur.SliceTo(n + 1)
			cur = cur.SliceFrom(n + 1)
		} else {
			item = cur
			cur = cur.DiscardAll()
		}

		if item.Len() == 1 {
			warnings = append(warnings, Warning{Source: item, Kind: WarningEmptyShorthandItem})
		}

		items = append(items, item)
	}

	return items, warnings
}
