package asciidoc

// RefKind distinguishes what a catalog entry's ID refers to.
type RefKind uint8

const (
	RefSection RefKind = iota
	RefBlock
	RefInline
)

//nolint:revive // switch cases are simple string returns
func (k RefKind) String() string {
	switch k {
	case RefSection:
		return "Section"
	case RefBlock:
		return "Block"
	case RefInline:
		return "Inline"
	default:
		return "Unknown"
	}
}

// RefEntry is one entry of a Catalog: an ID together with its optional
// reftext and the kind of thing it names.
type RefEntry struct {
	ID      string
	Reftext *string
	Kind    RefKind
}

// Catalog is the document-wide map of cross-reference targets, populated
// in source-discovery order as blocks are parsed.
type Catalog struct {
	Refs        map[string]RefEntry
	ReftextToID map[string]string

	order []string
}

func newCatalog() *Catalog {
	return &Catalog{
		Refs:        make(map[string]RefEntry),
		ReftextToID: make(map[string]string),
	}
}

// insert adds id with the given reftext and kind. If id is already
// present, the existing entry is kept and a DuplicateBlockID warning is
// returned to the caller (for ordered accumulation).
func (c *Catalog) insert(id string, reftext *string, kind RefKind, source Span) (Warning, bool) {
	if _, exists := c.Refs[id]; exists {
		return Warning{Source: source, Kind: WarningDuplicateBlockID}, true
	}

	c.Refs[id] = RefEntry{ID: id, Reftext: reftext, Kind: kind}
	c.order = append(c.order, id)

	if reftext != nil && *reftext != "" {
		ambiguous := false
		for otherID, e := range c.Refs {
			if otherID != id && e.Reftext != nil && *e.Reftext == *reftext {
				ambiguous = true

				break
			}
		}

		if ambiguous {
			delete(c.ReftextToID, *reftext)
		} else {
			c.ReftextToID[*reftext] = id
		}
	}

	return Warning{}, false
}

// Lookup returns the entry for id, if present.
func (c *Catalog) Lookup(id string) (RefEntry, bool) {
	e, ok := c.Refs[id]

	return e, ok
}

// IDForReftext resolves a reftext back to its unambiguous owning ID.
func (c *Catalog) IDForReftext(reftext string) (string, bool) {
	id, ok := c.ReftextToID[reftext]

	return id, ok
}

// Order returns every inserted ID in source-discovery order.
func (c *Catalog) Order() []string {
	return append([]string(nil), c.order...)
}
