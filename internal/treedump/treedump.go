// Package treedump renders an asciidoc.Document's block tree as an indented
// text outline for `adoc parse --format=tree`.
package treedump

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-asciidoc/asciidoc"
)

// Print renders doc's header and block tree to w.
func Print(w io.Writer, doc *asciidoc.Document) error {
	p := &printer{w: w}

	return p.printDocument(doc)
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) printDocument(doc *asciidoc.Document) error {
	if title := doc.Header.Title; title != nil {
		p.printf("document: %s\n", *title)
	} else {
		p.printf("document (untitled)\n")
	}

	for _, attr := range doc.Header.Attributes {
		p.printf("  attribute: %s=%s\n", attr.Name, attr.Value.Text)
	}

	for _, block := range doc.Blocks {
		p.printBlock(block, 1)
	}

	if len(doc.Warnings) > 0 {
		p.printf("warnings:\n")
		for _, w := range doc.Warnings {
			p.printf("  %d:%d: %s\n", w.Source.Line(), w.Source.Col(), w.Kind)
		}
	}

	return p.err
}

func (p *printer) printBlock(b asciidoc.Block, depth int) {
	indent := strings.Repeat("  ", depth)

	label := blockLabel(b)
	if id, ok := b.ID(); ok {
		label += fmt.Sprintf(" #%s", id)
	}
	if title, ok := b.Title(); ok {
		label += fmt.Sprintf(" %q", title)
	}

	p.printf("%s%s\n", indent, label)

	for _, child := range b.NestedBlocks() {
		p.printBlock(child, depth+1)
	}
}

func blockLabel(b asciidoc.Block) string {
	switch b.Kind {
	case asciidoc.KindSimple:
		return "paragraph"
	case asciidoc.KindRawDelimited:
		return fmt.Sprintf("raw[%s]", b.RawDelimited.Context)
	case asciidoc.KindCompoundDelimited:
		return fmt.Sprintf("compound[%s]", b.CompoundDelimited.Context)
	case asciidoc.KindSection:
		return fmt.Sprintf("section L%d", b.Section.Level)
	case asciidoc.KindList:
		return fmt.Sprintf("list[%s]", listTypeName(b.List.Type))
	case asciidoc.KindListItem:
		return "item"
	case asciidoc.KindMedia:
		return fmt.Sprintf("media[%s] %s", b.Media.MediaType, b.Media.Target.Data())
	case asciidoc.KindPreamble:
		return "preamble"
	case asciidoc.KindBreak:
		return fmt.Sprintf("break[%s]", breakKindName(b.Break.BreakKind))
	case asciidoc.KindDocumentAttribute:
		return fmt.Sprintf("attribute %s=%s", b.DocumentAttribute.Name, b.DocumentAttribute.Value.Text)
	default:
		return "block"
	}
}

func listTypeName(t asciidoc.ListType) string {
	switch t {
	case asciidoc.ListUnordered:
		return "unordered"
	case asciidoc.ListOrdered:
		return "ordered"
	case asciidoc.ListDescription:
		return "description"
	default:
		return "unknown"
	}
}

func breakKindName(k asciidoc.BreakKind) string {
	switch k {
	case asciidoc.BreakThematic:
		return "thematic"
	case asciidoc.BreakPage:
		return "page"
	default:
		return "unknown"
	}
}
