package corrector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sc "telspell/internal/corrector"
)

// TestTokens verifies only maximal Telugu runs survive tokenization.
func TestTokens(t *testing.T) {
	got := sc.Tokens("abc ఆకాశం, నక్షత్రాలు 123 x")
	require.Equal(t, []string{"ఆకాశం", "నక్షత్రాలు"}, got)
}

// TestTokensEmpty verifies text without Telugu yields no tokens.
func TestTokensEmpty(t *testing.T) {
	require.Empty(t, sc.Tokens(""))
	require.Empty(t, sc.Tokens("hello world 42"))
}

// TestIsTeluguWord covers the membership predicate boundaries.
func TestIsTeluguWord(t *testing.T) {
	require.True(t, sc.IsTeluguWord("ఆకాశం"))
	require.False(t, sc.IsTeluguWord(""))
	require.False(t, sc.IsTeluguWord("ఆకాశంx"))
	require.False(t, sc.IsTeluguWord("abc"))
}
