package asciidoc

import (
	"strconv"
	"strings"

	"github.com/go-asciidoc/asciidoc/internal/adocregex"
)

// SubstitutionPass identifies one of the six ordered substitution passes
// applied to a block's captured content.
type SubstitutionPass uint8

const (
	SubSpecialCharacters SubstitutionPass = iota
	SubQuotes
	SubAttributes
	SubReplacements
	SubMacros
	SubPostReplacements
)

//nolint:revive // switch cases are simple string returns
func (p SubstitutionPass) String() string {
	switch p {
	case SubSpecialCharacters:
		return "specialchars"
	case SubQuotes:
		return "quotes"
	case SubAttributes:
		return "attributes"
	case SubReplacements:
		return "replacements"
	case SubMacros:
		return "macros"
	case SubPostReplacements:
		return "post_replacements"
	default:
		return "unknown"
	}
}

// SubstitutionGroup is a named, ordered sequence of passes.
type SubstitutionGroup []SubstitutionPass

// Named substitution groups.
var (
	// SubstitutionNormal is used for paragraphs, titles, open/example/
	// sidebar/quote/verse content, and section headers.
	SubstitutionNormal = SubstitutionGroup{
		SubSpecialCharacters, SubQuotes, SubAttributes, SubReplacements, SubMacros, SubPostReplacements,
	}

	// SubstitutionVerbatim is used for listing, literal, and source
	// blocks.
	SubstitutionVerbatim = SubstitutionGroup{SubSpecialCharacters}

	// SubstitutionHeader is used for document/section titles when
	// treated as a header.
	SubstitutionHeader = SubstitutionGroup{SubSpecialCharacters, SubAttributes}

	// SubstitutionNone is used for comment and pass blocks.
	SubstitutionNone = SubstitutionGroup{}
)

func substitutionByName(name string) (SubstitutionGroup, bool) {
	switch name {
	case "normal":
		return SubstitutionNormal, true
	case "verbatim":
		return SubstitutionVerbatim, true
	case "none":
		return SubstitutionNone, true
	case "attributes":
		return SubstitutionGroup{SubAttributes}, true
	case "macros":
		return SubstitutionGroup{SubMacros}, true
	case "quotes":
		return SubstitutionGroup{SubQuotes}, true
	case "replacements":
		return SubstitutionGroup{SubReplacements}, true
	case "specialchars":
		return SubstitutionGroup{SubSpecialCharacters}, true
	case "post_replacements":
		return SubstitutionGroup{SubPostReplacements}, true
	default:
		return nil, false
	}
}

// ResolveSubsOverride computes a block's active substitution sequence given
// its default group and an optional `subs=` attribute value. The value
// may set, add (`+name`), remove
// (`-name`), or replace the default group, with entries separated by
// commas.
func ResolveSubsOverride(base SubstitutionGroup, subsValue string) SubstitutionGroup {
	subsValue = strings.TrimSpace(subsValue)
	if subsValue == "" {
		return base
	}

	result := append(SubstitutionGroup{}, base...)

	for _, tok := range strings.Split(subsValue, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		switch {
		case strings.HasPrefix(tok, "+"):
			if g, ok := substitutionByName(tok[1:]); ok {
				result = appendMissing(result, g...)
			}
		case strings.HasPrefix(tok, "-"):
			if g, ok := substitutionByName(tok[1:]); ok {
				result = removeAll(result, g...)
			}
		default:
			if g, ok := substitutionByName(tok); ok {
				result = g
			}
		}
	}

	return result
}

func appendMissing(group SubstitutionGroup, passes ...SubstitutionPass) SubstitutionGroup {
	for _, pass := range passes {
		found := false

		for _, existing := range group {
			if existing == pass {
				found = true

				break
			}
		}

		if !found {
			group = append(group, pass)
		}
	}

	return group
}

func removeAll(group SubstitutionGroup, passes ...SubstitutionPass) SubstitutionGroup {
	result := group[:0:0]

	for _, existing := range group {
		skip := false

		for _, pass := range passes {
			if existing == pass {
				skip = true

				break
			}
		}

		if !skip {
			result = append(result, existing)
		}
	}

	return result
}

// passthroughStash holds passthrough content and finished macro markup
// reserved so that no later pass can re-interpret it. Each entry is restored verbatim
// after post-replacements runs.
type passthroughStash struct {
	entries []string
}

const passthroughSentinelPrefix = "\x00PT"
const passthroughSentinelSuffix = "\x00"

func (s *passthroughStash) reserve(text string) string {
	idx := len(s.entries)
	s.entries = append(s.entries, text)

	return passthroughSentinelPrefix + strconv.Itoa(idx) + passthroughSentinelSuffix
}

func (s *passthroughStash) restore(rendered string) string {
	for i, text := range s.entries {
		sentinel := passthroughSentinelPrefix + strconv.Itoa(i) + passthroughSentinelSuffix
		rendered = strings.ReplaceAll(rendered, sentinel, text)
	}

	return rendered
}

// RenderSubstitutions applies group's passes, in order, to span's data and
// returns the rendered string. The parser's current document-attribute
// state is consulted by the attributes and macros passes.
func RenderSubstitutions(span Span, group SubstitutionGroup, p *Parser) string {
	stash := &passthroughStash{}
	text := span.Data()

	for _, pass := range group {
		if pass == SubMacros {
			// Passthrough content is reserved before the first pass runs, so
			// no pass, earlier or later than macros, rewrites it.
			text = reservePassthroughs(text, p, stash)

			break
		}
	}

	for _, pass := range group {
		switch pass {
		case SubSpecialCharacters:
			text = applySpecialCharacters(text)
		case SubQuotes:
			text = applyQuotes(text)
		case SubAttributes:
			text = applyAttributes(text, p)
		case SubReplacements:
			text = applyReplacements(text)
		case SubMacros:
			text = applyMacros(text, p, stash)
		case SubPostReplacements:
			text = applyPostReplacements(text)
		}
	}

	return stash.restore(text)
}

// expandAttributeReferences performs the attributes-pass expansion that is
// applied to every attribute-list value before the list itself is parsed.
// It returns a new Span whose data is the expanded text, anchored at source's
// starting coordinates.
func expandAttributeReferences(source Span, p *Parser) Span {
	expanded := applyAttributes(source.Data(), p)

	return Span{data: expanded, line: source.line, col: source.col, offset: source.offset}
}

var specialCharReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// applySpecialCharacters replaces `&`, `<`, and `>` with their entity
// forms. It is unconditional and runs before any other pass.
func applySpecialCharacters(s string) string {
	return specialCharReplacer.Replace(s)
}

// applyQuotes recognizes the inline formatting pairs of the quotes pass:
// constrained/unconstrained bold, emphasis, monospace, mark,
// superscript, subscript, curved-quote pairs, and role-shorthand bold.
func applyQuotes(s string) string {
	s = adocregex.RoleShorthandUnbounded.ReplaceAllString(s, `<strong class="$1">$2</strong>`)
	s = adocregex.RoleShorthandConstrained.ReplaceAllString(s, `<strong class="$1">$2</strong>`)
	s = adocregex.UnconstrainedBold.ReplaceAllString(s, `<strong>$1</strong>`)
	s = adocregex.UnconstrainedItalic.ReplaceAllString(s, `<em>$1</em>`)
	s = adocregex.UnconstrainedMonospace.ReplaceAllString(s, `<code>$1</code>`)
	s = adocregex.ConstrainedBold.ReplaceAllString(s, `$1<strong>$2</strong>$3`)
	s = adocregex.ConstrainedItalic.ReplaceAllString(s, `$1<em>$2</em>$3`)
	s = adocregex.ConstrainedMonospace.ReplaceAllString(s, `$1<code>$2</code>$3`)
	s = adocregex.CurvedDoubleQuote.ReplaceAllString(s, "&#8220;$1&#8221;")
	s = adocregex.CurvedSingleQuote.ReplaceAllString(s, "&#8216;$1&#8217;")
	s = adocregex.Mark.ReplaceAllString(s, `<mark>$1</mark>`)
	s = adocregex.Superscript.ReplaceAllString(s, `<sup>$1</sup>`)
	s = adocregex.Subscript.ReplaceAllString(s, `<sub>$1</sub>`)

	return s
}

// maxAttributeExpansionPasses bounds the attributes-pass fixpoint loop so
// that a value referencing itself (directly or through a cycle of other
// attributes) cannot spin forever; asciidoctor applies the same kind of
// bound rather than detecting cycles explicitly.
const maxAttributeExpansionPasses = 10

// applyAttributes expands `{name}` references using the parser's current
// document-attribute state. An unresolved reference is left verbatim. A
// single leading backslash escapes one reference (the backslash is
// consumed, the reference text is left verbatim). Expansion re-scans its
// own output, so an attribute whose value itself contains a reference
// (e.g. `:attr: abc{sp}def`) is fully resolved rather than left with a
// literal `{sp}` in the rendered text; the loop stops as soon as a pass
// makes no further change, or after a bounded number of passes.
func applyAttributes(s string, p *Parser) string {
	if p == nil {
		return s
	}

	// Escaped references are stashed rather than simply unescaped in
	// place: once unescaped, `{name}` reads exactly like a live
	// reference, and a later fixpoint pass would expand it anyway.
	// Reserving it keeps the literal text out of every subsequent
	// rescan.
	stash := &passthroughStash{}

	for range maxAttributeExpansionPasses {
		next := adocregex.AttributeRef.ReplaceAllStringFunc(s, func(match string) string {
			if strings.HasPrefix(match, "\\") {
				return stash.reserve(match[1:])
			}

			name := match[1 : len(match)-1]
			if val, ok := p.AttributeValue(name); ok {
				return val
			}

			return match
		})

		if next == s {
			break
		}

		s = next
	}

	return stash.restore(s)
}

// applyReplacements performs the fixed character-sequence transformations
// of the replacements pass.
func applyReplacements(s string) string {
	s = adocregex.Apostrophe.ReplaceAllString(s, "$1&#8217;$2")
	s = adocregex.Ellipsis.ReplaceAllString(s, "&#8230;")
	s = adocregex.EmDash.ReplaceAllString(s, "$1&#8201;&#8212;&#8201;$2")
	s = adocregex.Copyright.ReplaceAllString(s, "&#169;")
	s = adocregex.Registered.ReplaceAllString(s, "&#174;")
	s = adocregex.Trademark.ReplaceAllString(s, "&#8482;")
	s = adocregex.RightDArrow.ReplaceAllString(s, "&#8658;")
	s = adocregex.LeftDArrow.ReplaceAllString(s, "&#8656;")
	s = adocregex.RightArrow.ReplaceAllString(s, "&#8594;")
	s = adocregex.LeftArrow.ReplaceAllString(s, "&#8592;")

	return s
}

// macroLinkText holds what an inline macro's bracket body resolves to
// once parsed as an attribute list: the first positional entry (link text
// or image alt text) and any classes contributed by a role= attribute.
type macroLinkText struct {
	text    string
	classes []string
}

// parseMacroBracket parses an inline macro's raw bracket body the same
// way a block's attribute list is parsed, so `"quoted, text",role=name`
// yields text with its quotes and internal comma intact and a role
// usable as a CSS class, instead of the raw bracket characters.
func parseMacroBracket(raw string) macroLinkText {
	if raw == "" {
		return macroLinkText{}
	}

	parsed := ParseAttrlist(NewSpan(raw)).Item

	var text string
	if first, ok := parsed.NthAttribute(1); ok {
		text = first.Value.Data()
	}

	return macroLinkText{text: text, classes: parsed.Roles()}
}

func classAttr(classes []string) string {
	if len(classes) == 0 {
		return ""
	}

	return ` class="` + strings.Join(classes, " ") + `"`
}

// reservePassthroughs pops passthrough content — `pass:[]`, `+++...+++`,
// and `+...+` — out of s and replaces it with a sentinel that is restored
// verbatim after all other passes complete.
func reservePassthroughs(s string, p *Parser, stash *passthroughStash) string {
	s = adocregex.PassInline.ReplaceAllStringFunc(s, func(match string) string {
		groups := adocregex.PassInline.FindStringSubmatch(match)
		text := groups[2]
		applied := applyPassthroughSubs(text, groups[1], p, stash)

		return stash.reserve(applied)
	})

	s = adocregex.TriplePlus.ReplaceAllStringFunc(s, func(match string) string {
		inner := adocregex.TriplePlus.FindStringSubmatch(match)[1]

		return stash.reserve(inner)
	})

	s = adocregex.SinglePlus.ReplaceAllStringFunc(s, func(match string) string {
		groups := adocregex.SinglePlus.FindStringSubmatch(match)

		return groups[1] + stash.reserve(groups[2]) + groups[3]
	})

	return s
}

// applyMacros recognizes inline macros in the macros pass, reserving any
// passthrough content first.
func applyMacros(s string, p *Parser, stash *passthroughStash) string {
	s = reservePassthroughs(s, p, stash)

	// Image, mailto, and link macros run before Autolink, and their
	// produced markup contains the bare URL again inside an href/src
	// attribute. Left alone, Autolink's broader pattern would rescan and
	// mangle that already-finished tag, so each one is stashed rather than
	// left as live text.
	s = adocregex.ImageInline.ReplaceAllStringFunc(s, func(match string) string {
		g := adocregex.ImageInline.FindStringSubmatch(match)
		src := g[1]
		bracket := parseMacroBracket(g[2])

		return stash.reserve(`<img src="` + src + `" alt="` + bracket.text + `"` + classAttr(bracket.classes) + `>`)
	})
	s = adocregex.Mailto.ReplaceAllStringFunc(s, func(match string) string {
		g := adocregex.Mailto.FindStringSubmatch(match)
		text := g[2]
		if text == "" {
			text = g[1]
		}

		return stash.reserve(`<a href="mailto:` + g[1] + `">` + text + `</a>`)
	})
	s = adocregex.LinkInline.ReplaceAllStringFunc(s, func(match string) string {
		g := adocregex.LinkInline.FindStringSubmatch(match)
		url := g[1]
		bracket := parseMacroBracket(g[2])
		text := bracket.text
		if text == "" {
			text = url
		}

		return stash.reserve(`<a href="` + url + `"` + classAttr(bracket.classes) + `>` + text + `</a>`)
	})
	s = adocregex.Autolink.ReplaceAllStringFunc(s, func(match string) string {
		g := adocregex.Autolink.FindStringSubmatch(match)
		url := g[1]
		bracket := parseMacroBracket(g[3])
		text := bracket.text
		if text == "" {
			text = url
		}

		return `<a href="` + url + `"` + classAttr(bracket.classes) + `>` + text + `</a>`
	})

	return s
}

// applyPassthroughSubs applies the subset of passes named by a `pass:`
// macro's qualifier letters (q=quotes, a=attributes, m=macros) to text,
// with no other pass running over passthrough content.
func applyPassthroughSubs(text, qualifiers string, p *Parser, stash *passthroughStash) string {
	for _, q := range qualifiers {
		switch q {
		case 'q':
			text = applyQuotes(text)
		case 'a':
			text = applyAttributes(text, p)
		case 'm':
			text = applyMacros(text, p, stash)
		}
	}

	return text
}

// applyPostReplacements performs hard line breaks and related
// line-terminal transformations in the post-replacements pass.
func applyPostReplacements(s string) string {
	return adocregex.HardBreak.ReplaceAllString(s, "<br>\n")
}
