package docjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-asciidoc/asciidoc"
)

func TestFromDocumentRoundTripsThroughJSON(t *testing.T) {
	doc, err := asciidoc.Parse("= Title\n\n== Section\n\nHello *world*.\n")
	require.NoError(t, err)

	out, err := Marshal(doc)
	require.NoError(t, err)

	var snapshot Document
	require.NoError(t, json.Unmarshal(out, &snapshot))

	assert.Equal(t, "Title", snapshot.Title)
	require.Equal(t, 1, len(snapshot.Blocks))
	assert.Equal(t, "Section", snapshot.Blocks[0].Title)
	require.Equal(t, 1, len(snapshot.Blocks[0].Children))
	assert.Equal(t, "Simple", snapshot.Blocks[0].Children[0].Kind)
}
