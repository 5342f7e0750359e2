package adocregex

import "regexp"

// Unconstrained pairs (double sigil) are tried before their constrained
// (single sigil) counterparts, since a constrained match would otherwise
// consume half of an unconstrained pair.
var (
	UnconstrainedBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	UnconstrainedItalic    = regexp.MustCompile(`__(.+?)__`)
	UnconstrainedMonospace = regexp.MustCompile("``(.+?)``")

	ConstrainedBold      = regexp.MustCompile(`(^|[^\w*])\*([^*\s](?:[^*]*[^*\s])?)\*([^\w*]|$)`)
	ConstrainedItalic    = regexp.MustCompile(`(^|[^\w_])_([^_\s](?:[^_]*[^_\s])?)_([^\w_]|$)`)
	ConstrainedMonospace = regexp.MustCompile("(^|[^`\\w])`([^`\\s](?:[^`]*[^`\\s])?)`([^`\\w]|$)")

	Mark        = regexp.MustCompile(`#([^#\n]+)#`)
	Superscript = regexp.MustCompile(`\^([^\^\s]+)\^`)
	Subscript   = regexp.MustCompile(`~([^~\s]+)~`)

	CurvedDoubleQuote = regexp.MustCompile("\"`(.+?)`\"")
	CurvedSingleQuote = regexp.MustCompile("'`(.+?)`'")

	RoleShorthandUnbounded    = regexp.MustCompile(`\[\.([\w-]+)\]\*\*(.+?)\*\*`)
	RoleShorthandConstrained  = regexp.MustCompile(`\[\.([\w-]+)\]\*([^*]+?)\*`)
)
