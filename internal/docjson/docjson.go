// Package docjson converts an asciidoc.Document into a JSON-serializable
// snapshot for `adoc parse --format=json`, without adding marshaling
// concerns to the parser's own exported types.
package docjson

import (
	"encoding/json"

	"github.com/go-asciidoc/asciidoc"
)

// Document mirrors asciidoc.Document in a form encoding/json can marshal.
type Document struct {
	Title      string     `json:"title,omitempty"`
	Attributes []Attr     `json:"attributes,omitempty"`
	Blocks     []Block    `json:"blocks"`
	Warnings   []Warning  `json:"warnings,omitempty"`
	Catalog    []RefEntry `json:"catalog,omitempty"`
}

// Attr is a document-level attribute entry.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Warning is a positioned diagnostic.
type Warning struct {
	Line int    `json:"line"`
	Col  int    `json:"col"`
	Kind string `json:"kind"`
}

// RefEntry is one catalog entry.
type RefEntry struct {
	ID      string `json:"id"`
	Reftext string `json:"reftext,omitempty"`
	Kind    string `json:"kind"`
}

// Block mirrors one asciidoc.Block node.
type Block struct {
	Kind     string   `json:"kind"`
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Options  []string `json:"options,omitempty"`
	Text     string   `json:"text,omitempty"`
	Level    int      `json:"level,omitempty"`
	Context  string   `json:"context,omitempty"`
	Target   string   `json:"target,omitempty"`
	Children []Block  `json:"children,omitempty"`
}

// FromDocument builds a Document snapshot from doc.
func FromDocument(doc *asciidoc.Document) *Document {
	out := &Document{}

	if doc.Header.Title != nil {
		out.Title = *doc.Header.Title
	}

	for _, attr := range doc.Header.Attributes {
		out.Attributes = append(out.Attributes, Attr{Name: attr.Name, Value: attr.Value.Text})
	}

	for _, b := range doc.Blocks {
		out.Blocks = append(out.Blocks, fromBlock(b))
	}

	for _, w := range doc.Warnings {
		out.Warnings = append(out.Warnings, Warning{
			Line: w.Source.Line(),
			Col:  w.Source.Col(),
			Kind: w.Kind.String(),
		})
	}

	if doc.Catalog != nil {
		for _, id := range doc.Catalog.Order() {
			entry, _ := doc.Catalog.Lookup(id)
			reftext := ""
			if entry.Reftext != nil {
				reftext = *entry.Reftext
			}
			out.Catalog = append(out.Catalog, RefEntry{ID: entry.ID, Reftext: reftext, Kind: entry.Kind.String()})
		}
	}

	return out
}

func fromBlock(b asciidoc.Block) Block {
	out := Block{Kind: b.Kind.String()}

	if id, ok := b.ID(); ok {
		out.ID = id
	}
	if title, ok := b.Title(); ok {
		out.Title = title
	}
	out.Roles = b.Roles()
	out.Options = b.Options()

	switch b.Kind {
	case asciidoc.KindSimple:
		out.Text = b.Simple.Content.Rendered
	case asciidoc.KindRawDelimited:
		out.Context = string(b.RawDelimited.Context)
		out.Text = b.RawDelimited.Content.Rendered
	case asciidoc.KindCompoundDelimited:
		out.Context = string(b.CompoundDelimited.Context)
	case asciidoc.KindSection:
		out.Level = b.Section.Level
	case asciidoc.KindMedia:
		out.Context = b.Media.MediaType.String()
		out.Target = b.Media.Target.Data()
	case asciidoc.KindDocumentAttribute:
		out.Text = b.DocumentAttribute.Value.Text
	}

	for _, child := range b.NestedBlocks() {
		out.Children = append(out.Children, fromBlock(child))
	}

	return out
}

// Marshal renders doc as indented JSON.
func Marshal(doc *asciidoc.Document) ([]byte, error) {
	return json.MarshalIndent(FromDocument(doc), "", "  ")
}
