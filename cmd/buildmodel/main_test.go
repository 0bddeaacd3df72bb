package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.11/">
  <page>
    <title>మొదటి</title>
    <revision><text bytes="42">ఆకాశం నీలం. ఆకాశం పైన ఉంది, see also sky.</text></revision>
  </page>
  <page>
    <title>రెండవ</title>
    <revision><text>నక్షత్రాలు ఆకాశం</text></revision>
  </page>
</mediawiki>`

// TestCountWords verifies the streaming dump parser counts Telugu tokens
// across pages and ignores non-Telugu text.
func TestCountWords(t *testing.T) {
	counts, pages, err := countWords(strings.NewReader(sampleDump))
	require.NoError(t, err)
	require.Equal(t, int64(2), pages)
	require.Equal(t, int64(3), counts["ఆకాశం"])
	require.Equal(t, int64(1), counts["నక్షత్రాలు"])
	require.NotContains(t, counts, "sky")
	require.NotContains(t, counts, "మొదటి", "titles are not page text")
}

// TestCountWordsMalformed verifies a broken dump surfaces a parse error.
func TestCountWordsMalformed(t *testing.T) {
	_, _, err := countWords(strings.NewReader("<mediawiki><page>"))
	require.Error(t, err)
}
