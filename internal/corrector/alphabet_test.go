package corrector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sc "telspell/internal/corrector"
)

// TestNewAlphabetDeduplicates verifies that repeated characters are kept
// once, in first-occurrence order.
func TestNewAlphabetDeduplicates(t *testing.T) {
	a, err := sc.NewAlphabet("abcabca")
	require.NoError(t, err)
	require.Equal(t, []rune{'a', 'b', 'c'}, a.Runes())
	require.Equal(t, 3, a.Len())
}

// TestNewAlphabetEmpty verifies that an empty character set is rejected.
func TestNewAlphabetEmpty(t *testing.T) {
	_, err := sc.NewAlphabet("")
	require.ErrorIs(t, err, sc.ErrEmptyAlphabet)
}

// TestTeluguAlphabet verifies the default alphabet is usable and free of
// duplicates (the charset constant repeats the virama inside క్ష).
func TestTeluguAlphabet(t *testing.T) {
	a := sc.TeluguAlphabet()
	require.Greater(t, a.Len(), 0)
	require.True(t, a.Contains('క'))
	require.True(t, a.Contains('ఆ'))
	require.False(t, a.Contains('x'))

	seen := make(map[rune]bool)
	for _, r := range a.Runes() {
		require.False(t, seen[r], "duplicate rune %q", r)
		seen[r] = true
	}
}

// TestAlphabetRunesIsACopy verifies callers cannot mutate the alphabet
// through the returned slice.
func TestAlphabetRunesIsACopy(t *testing.T) {
	a, err := sc.NewAlphabet("abc")
	require.NoError(t, err)
	r := a.Runes()
	r[0] = 'z'
	require.Equal(t, []rune{'a', 'b', 'c'}, a.Runes())
}
