package asciidoc

// WarningKind enumerates the non-fatal diagnostics the parser can emit. A
// warning never aborts parsing: the parser always produces the best-effort
// tree it can.
type WarningKind uint8

const (
	// WarningEmptyAttributeValue signals a `,,` in an attribute list.
	WarningEmptyAttributeValue WarningKind = iota
	// WarningMissingCommaAfterQuotedAttributeValue signals content
	// immediately following the closing quote of an attribute value that
	// is not a comma or the end of the list.
	WarningMissingCommaAfterQuotedAttributeValue
	// WarningEmptyShorthandItem signals two consecutive shorthand sigils
	// or a trailing sigil in a positional attribute's shorthand.
	WarningEmptyShorthandItem
	// WarningEmptyBlockAnchorName signals `[[]]`.
	WarningEmptyBlockAnchorName
	// WarningInvalidBlockAnchorName signals a block anchor whose name is
	// not a valid XML Name.
	WarningInvalidBlockAnchorName
	// WarningUnterminatedDelimitedBlock signals end-of-input reached with
	// an open delimited block.
	WarningUnterminatedDelimitedBlock
	// WarningDuplicateBlockID signals an ID already present in the
	// catalog.
	WarningDuplicateBlockID
)

//nolint:revive // switch cases are simple string returns
func (k WarningKind) String() string {
	switch k {
	case WarningEmptyAttributeValue:
		return "EmptyAttributeValue"
	case WarningMissingCommaAfterQuotedAttributeValue:
		return "MissingCommaAfterQuotedAttributeValue"
	case WarningEmptyShorthandItem:
		return "EmptyShorthandItem"
	case WarningEmptyBlockAnchorName:
		return "EmptyBlockAnchorName"
	case WarningInvalidBlockAnchorName:
		return "InvalidBlockAnchorName"
	case WarningUnterminatedDelimitedBlock:
		return "UnterminatedDelimitedBlock"
	case WarningDuplicateBlockID:
		return "DuplicateBlockID"
	default:
		return "Unknown"
	}
}

// Warning is a single diagnostic attached to a parse result: the span it
// concerns and the kind of problem observed there.
type Warning struct {
	Source Span
	Kind   WarningKind
}

// warningSink accumulates warnings in the order they are emitted during the
// single depth-first parse traversal. It is passed by reference through the
// recognizer so nested calls can append without threading return values
// back up for every intermediate frame.
type warningSink struct {
	warnings []Warning
}

func (s *warningSink) add(w Warning) {
	s.warnings = append(s.warnings, w)
}

func (s *warningSink) addAll(ws []Warning) {
	s.warnings = append(s.warnings, ws...)
}
