package asciidoc

// BlockKind discriminates the ten concrete variants a Block may hold.
type BlockKind uint8

const (
	KindSimple BlockKind = iota
	KindRawDelimited
	KindCompoundDelimited
	KindSection
	KindList
	KindListItem
	KindMedia
	KindPreamble
	KindBreak
	KindDocumentAttribute
)

//nolint:revive // switch cases are simple string returns
func (k BlockKind) String() string {
	switch k {
	case KindSimple:
		return "Simple"
	case KindRawDelimited:
		return "RawDelimited"
	case KindCompoundDelimited:
		return "CompoundDelimited"
	case KindSection:
		return "Section"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindMedia:
		return "Media"
	case KindPreamble:
		return "Preamble"
	case KindBreak:
		return "Break"
	case KindDocumentAttribute:
		return "DocumentAttribute"
	default:
		return "Unknown"
	}
}

// RawDelimitedContext names the four raw-delimited block kinds.
type RawDelimitedContext string

const (
	ContextListing RawDelimitedContext = "listing"
	ContextLiteral RawDelimitedContext = "literal"
	ContextPass    RawDelimitedContext = "pass"
	ContextComment RawDelimitedContext = "comment"
)

// CompoundDelimitedContext names the four compound-delimited block kinds.
type CompoundDelimitedContext string

const (
	ContextExample CompoundDelimitedContext = "example"
	ContextSidebar CompoundDelimitedContext = "sidebar"
	ContextQuote   CompoundDelimitedContext = "quote"
	ContextOpen    CompoundDelimitedContext = "open"
)

// ListType distinguishes the three list flavors.
type ListType uint8

const (
	ListUnordered ListType = iota
	ListOrdered
	ListDescription
)

// ListMarkerKind distinguishes a list item's marker form.
type ListMarkerKind uint8

const (
	MarkerBullet ListMarkerKind = iota
	MarkerNumbered
	MarkerDefinedTerm
)

// ListMarker records how a ListItem was introduced: the marker kind, its
// nesting depth (number of repeated marker characters), and — for
// MarkerDefinedTerm — the term text itself.
type ListMarker struct {
	Kind  ListMarkerKind
	Depth int
	Term  string
}

// MediaType distinguishes the three inline media macro kinds.
type MediaType uint8

const (
	MediaImage MediaType = iota
	MediaVideo
	MediaAudio
)

//nolint:revive // switch cases are simple string returns
func (m MediaType) String() string {
	switch m {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	case MediaAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// BreakKind distinguishes the two recognized break lines.
type BreakKind uint8

const (
	BreakThematic BreakKind = iota
	BreakPage
)

// AttributeValueKind distinguishes the three forms a document attribute
// entry's value may take.
type AttributeValueKind uint8

const (
	AttributeSet AttributeValueKind = iota
	AttributeUnset
	AttributeValue
)

// InterpretedValue is a document attribute entry's parsed value: Set (a
// bare `:name:` with no text), Unset (`:!name:`), or Value (`:name: text`).
type InterpretedValue struct {
	Kind AttributeValueKind
	Text string
}

// blockCommon holds the fields shared by every Block variant: its full
// source span, and the optional title/anchor/attrlist contributed by its
// metadata prelude.
type blockCommon struct {
	source        Span
	title         *string
	titleSource   *Span
	anchor        *Span
	anchorReftext *Span
	attrlist      *Attrlist
}

func commonFromPrelude(source Span, p Prelude) blockCommon {
	return blockCommon{
		source:        source,
		title:         p.Title,
		titleSource:   p.TitleSource,
		anchor:        p.Anchor,
		anchorReftext: p.AnchorReftext,
		attrlist:      p.Attrlist,
	}
}

func (c blockCommon) id() (string, bool) {
	if c.anchor != nil {
		return c.anchor.Data(), true
	}

	if c.attrlist != nil {
		return c.attrlist.ID()
	}

	return "", false
}

func (c blockCommon) roles() []string {
	if c.attrlist == nil {
		return nil
	}

	return c.attrlist.Roles()
}

func (c blockCommon) options() []string {
	if c.attrlist == nil {
		return nil
	}

	return c.attrlist.Options()
}

// Block is a tagged sum of the ten structural units this package
// recognizes. Exactly one of the typed fields matching Kind is populated; the
// capability accessors (ID, Roles, Options, Title, Source, NestedBlocks)
// work uniformly across every variant.
type Block struct {
	Kind BlockKind

	blockCommon

	Simple            *SimpleBlock
	RawDelimited      *RawDelimitedBlock
	CompoundDelimited *CompoundDelimitedBlock
	Section           *SectionBlock
	List              *ListBlock
	ListItem          *ListItemBlock
	Media             *MediaBlock
	Preamble          *PreambleBlock
	Break             *BreakBlock
	DocumentAttribute *DocumentAttributeBlock
}

// SimpleBlock is a paragraph: a run of contiguous lines rendered as one
// piece of inline content.
type SimpleBlock struct {
	Content Content
}

// RawDelimitedBlock is a verbatim container: listing, literal, pass, or
// comment.
type RawDelimitedBlock struct {
	Context RawDelimitedContext
	Content Content
}

// CompoundDelimitedBlock is a nested-block container: example, open,
// sidebar, or quote.
type CompoundDelimitedBlock struct {
	Context CompoundDelimitedContext
	Blocks  []Block
}

// SectionBlock is a heading and the blocks beneath it, up to (but not
// including) the next heading of equal or lower level.
type SectionBlock struct {
	Level  int
	Blocks []Block
}

// ListBlock is a run of consecutive list items of one type and depth.
type ListBlock struct {
	Type  ListType
	Items []ListItemBlock
}

// ListItemBlock is one entry of a List: its marker and the blocks it
// introduces (its own content plus any attached continuation blocks).
type ListItemBlock struct {
	Marker ListMarker
	Blocks []Block
	source Span
}

// MediaBlock is a one-line media macro: `image::target[...]`, `video::`,
// or `audio::`.
type MediaBlock struct {
	MediaType     MediaType
	Target        Span
	MacroAttrlist Attrlist
}

// PreambleBlock holds the blocks between the document header and the
// first section.
type PreambleBlock struct {
	Blocks []Block
}

// BreakBlock is a thematic (`'''`) or page (`<<<`) break line.
type BreakBlock struct {
	BreakKind BreakKind
}

// DocumentAttributeBlock is a `:name:` / `:name: value` / `:!name:` entry.
type DocumentAttributeBlock struct {
	Name  string
	Value InterpretedValue
}

// ID returns the block's ID, from a block anchor or an `id=` attribute.
func (b Block) ID() (string, bool) { return b.id() }

// Roles returns the block's roles.
func (b Block) Roles() []string { return b.roles() }

// Options returns the block's options.
func (b Block) Options() []string { return b.options() }

// Title returns the block's rendered title, if any.
func (b Block) Title() (string, bool) {
	if b.title == nil {
		return "", false
	}

	return *b.title, true
}

// Source returns the block's full source span.
func (b Block) Source() Span { return b.source }

// NestedBlocks returns the block's immediate children, flattened for
// traversal. Only Section, Preamble, CompoundDelimited, List, and
// ListItem variants yield non-empty results.
func (b Block) NestedBlocks() []Block {
	switch b.Kind {
	case KindSection:
		return b.Section.Blocks
	case KindPreamble:
		return b.Preamble.Blocks
	case KindCompoundDelimited:
		return b.CompoundDelimited.Blocks
	case KindList:
		var out []Block
		for _, item := range b.List.Items {
			out = append(out, item.Blocks...)
		}

		return out
	case KindListItem:
		return b.ListItem.Blocks
	default:
		return nil
	}
}
