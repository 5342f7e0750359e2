package asciidoc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a non-owning, zero-copy view over a slice of the original source
// string together with its provenance: the 1-based line and column, and the
// 0-based byte offset of its first byte within the document.
//
// Slicing a Span never copies the underlying bytes. Every derived Span's
// Line/Col/Offset describe the position of its own first byte in the
// original document, not the position within its parent.
type Span struct {
	data   string
	line   int
	col    int
	offset int
}

// NewSpan creates a Span covering the entire given source string, starting
// at line 1, column 1, offset 0.
func NewSpan(source string) Span {
	return Span{data: source, line: 1, col: 1, offset: 0}
}

// Data returns the span's textual content.
func (s Span) Data() string { return s.data }

// Line returns the 1-based line number of the span's first byte.
func (s Span) Line() int { return s.line }

// Col returns the 1-based column (in runes) of the span's first byte.
func (s Span) Col() int { return s.col }

// Offset returns the 0-based byte offset of the span's first byte within
// the original document.
func (s Span) Offset() int { return s.offset }

// Len returns the byte length of the span.
func (s Span) Len() int { return len(s.data) }

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool { return len(s.data) == 0 }

// StartsWith reports whether the span's data begins with prefix.
func (s Span) StartsWith(prefix string) bool {
	return strings.HasPrefix(s.data, prefix)
}

// EndsWith reports whether the span's data ends with suffix.
func (s Span) EndsWith(suffix string) bool {
	return strings.HasSuffix(s.data, suffix)
}

// Chars returns the span's content decoded as runes.
func (s Span) Chars() []rune {
	return []rune(s.data)
}

// advance computes the line/column delta incurred by consuming the first n
// bytes of data, given a starting column. Used to compute the coordinates
// of a sub-span's first remaining byte.
func advance(consumed string, line, col int) (int, int) {
	for _, r := range consumed {
		if r == '\n' {
			line++
			col = 1

			continue
		}

		col++
	}

	return line, col
}

// slice returns the sub-span data[start:end], with coordinates recomputed
// relative to s. Both start and end are clamped to [0, len(s.data)].
func (s Span) slice(start, end int) Span {
	if start < 0 {
		start = 0
	}
	if end > len(s.data) {
		end = len(s.data)
	}
	if start > end {
		start = end
	}

	line, col := advance(s.data[:start], s.line, s.col)

	return Span{
		data:   s.data[start:end],
		line:   line,
		col:    col,
		offset: s.offset + start,
	}
}

// Slice returns the sub-span covering byte range [start, end).
func (s Span) Slice(start, end int) Span { return s.slice(start, end) }

// SliceTo returns the sub-span covering byte range [0, end).
func (s Span) SliceTo(end int) Span { return s.slice(0, end) }

// SliceFrom returns the sub-span covering byte range [start, len(data)).
func (s Span) SliceFrom(start int) Span { return s.slice(start, len(s.data)) }

// Discard returns a new span with the first n bytes removed. n is clamped
// to the span's length.
func (s Span) Discard(n int) Span {
	if n > len(s.data) {
		n = len(s.data)
	}

	return s.SliceFrom(n)
}

// DiscardAll discards every byte in the span, leaving an empty span at its
// end position.
func (s Span) DiscardAll() Span { return s.Discard(len(s.data)) }

// isHorizontalSpace reports whether b is an ASCII space or tab.
func isHorizontalSpace(b byte) bool { return b == ' ' || b == '\t' }

// TakeWhitespace splits off a leading run of ASCII spaces and tabs (never
// newlines). The returned MatchedItem.Item is the (possibly empty) run and
// After is the remainder.
func (s Span) TakeWhitespace() MatchedItem[Span] {
	i := 0
	for i < len(s.data) && isHorizontalSpace(s.data[i]) {
		i++
	}

	return s.IntoParseResult(i)
}

// DiscardWhitespace discards any leading spaces/tabs. It never consumes a
// newline.
func (s Span) DiscardWhitespace() Span {
	return s.TakeWhitespace().After
}

// isBlankLine reports whether line contains only horizontal whitespace.
func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isHorizontalSpace(line[i]) {
			return false
		}
	}

	return true
}

// DiscardEmptyLines skips any number of leading blank logical lines
// (lines containing only spaces/tabs), updating line/col/offset as it goes.
// A line containing any non-whitespace character, including the final
// line of input, is left untouched.
func (s Span) DiscardEmptyLines() Span {
	cur := s
	for {
		mi := cur.TakeNormalizedLine()
		if !isBlankLine(mi.Item.data) {
			return cur
		}
		if cur.IsEmpty() {
			return cur
		}

		cur = mi.After
	}
}

// TakeNormalizedLine returns the prefix of s up to (but excluding) the next
// newline, with trailing spaces and tabs stripped from the returned item.
// After is advanced past the consumed newline (LF or CRLF). If s contains
// no newline, Item is all of s and After is the empty span at s's end.
func (s Span) TakeNormalizedLine() MatchedItem[Span] {
	idx := strings.IndexByte(s.data, '\n')
	if idx < 0 {
		item := s.slice(0, len(s.data)).TrimTrailingWhitespace()

		return MatchedItem[Span]{Item: item, After: s.slice(len(s.data), len(s.data))}
	}

	lineEnd := idx
	if idx > 0 && s.data[idx-1] == '\r' {
		lineEnd = idx - 1
	}

	item := s.slice(0, lineEnd).TrimTrailingWhitespace()
	after := s.slice(idx+1, len(s.data))

	return MatchedItem[Span]{Item: item, After: after}
}

// TrimTrailingWhitespace returns s with trailing ASCII spaces and tabs
// removed. The span's start coordinates are unchanged.
func (s Span) TrimTrailingWhitespace() Span {
	end := len(s.data)
	for end > 0 && isHorizontalSpace(s.data[end-1]) {
		end--
	}

	return s.slice(0, end)
}

// TrimTrailingLineEnd removes a single trailing line terminator (\r\n or
// \n) from s, if present.
func (s Span) TrimTrailingLineEnd() Span {
	if strings.HasSuffix(s.data, "\r\n") {
		return s.slice(0, len(s.data)-2)
	}
	if strings.HasSuffix(s.data, "\n") {
		return s.slice(0, len(s.data)-1)
	}

	return s
}

// Position returns the byte offset, relative to the start of s, of the
// first rune for which predicate returns true. The second return value is
// false if no such rune exists.
func (s Span) Position(predicate func(rune) bool) (int, bool) {
	for i, r := range s.data {
		if predicate(r) {
			return i, true
		}
	}

	return 0, false
}

// IntoParseResult splits s at byte index n (clamped to s's length) into a
// MatchedItem whose Item is s[:n] and After is s[n:].
func (s Span) IntoParseResult(n int) MatchedItem[Span] {
	if n > len(s.data) {
		n = len(s.data)
	}
	if n < 0 {
		n = 0
	}

	return MatchedItem[Span]{Item: s.slice(0, n), After: s.slice(n, len(s.data))}
}

// SplitAtMatchNonEmpty splits s at the first rune satisfying predicate. It
// returns ok=false if the span is empty or the very first rune already
// matches (which would produce an empty Item).
//
// Per the parser's provenance contract, when predicate never matches a
// non-empty span, the entire span is consumed as Item.
func (s Span) SplitAtMatchNonEmpty(predicate func(rune) bool) (MatchedItem[Span], bool) {
	if s.IsEmpty() {
		return MatchedItem[Span]{}, false
	}

	if n, found := s.Position(predicate); found {
		if n == 0 {
			return MatchedItem[Span]{}, false
		}

		return s.IntoParseResult(n), true
	}

	return s.IntoParseResult(len(s.data)), true
}

// IsXMLName reports whether s's data is a valid XML Name: a leading letter
// or underscore followed by any number of letters, digits, underscores,
// hyphens, or periods.
func (s Span) IsXMLName() bool {
	if s.IsEmpty() {
		return false
	}

	runes := s.Chars()
	first := runes[0]
	if !(unicode.IsLetter(first) || first == '_') {
		return false
	}

	for _, r := range runes[1:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.') {
			return false
		}
	}

	return true
}

// firstRune returns the first rune of s's data and its byte width, or
// (utf8.RuneError, 0) if s is empty.
func (s Span) firstRune() (rune, int) {
	if s.IsEmpty() {
		return utf8.RuneError, 0
	}

	return utf8.DecodeRuneInString(s.data)
}
