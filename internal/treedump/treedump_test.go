package treedump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-asciidoc/asciidoc"
)

func TestPrintRendersSectionsAndParagraphs(t *testing.T) {
	doc, err := asciidoc.Parse("= Title\n\n== Section One\n\nHello world.\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, doc))

	out := buf.String()
	assert.True(t, strings.Contains(out, "document: Title"))
	assert.True(t, strings.Contains(out, "section L1"))
	assert.True(t, strings.Contains(out, "paragraph"))
}
