package corrector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sc "telspell/internal/corrector"
)

func mustAlphabet(t *testing.T, chars string) sc.Alphabet {
	t.Helper()
	a, err := sc.NewAlphabet(chars)
	require.NoError(t, err)
	return a
}

// TestEdits1ExactSet hand-verifies the full distance-1 set of "ab" over the
// alphabet {a,b,c}: 2 deletes, 1 transpose, replaces and inserts unioned
// and deduplicated.
func TestEdits1ExactSet(t *testing.T) {
	g := sc.NewEditGenerator(mustAlphabet(t, "abc"))
	got := g.Edits1("ab")

	want := []string{
		"a", "b", // deletes
		"ba",                         // transpose
		"ab", "bb", "cb", "aa", "ac", // replaces
		"aab", "bab", "cab", "abb", "acb", "aba", "abc", // inserts
	}
	require.Len(t, got, len(want))
	for _, w := range want {
		require.Contains(t, got, w)
	}
}

// TestEdits1EmptyToken verifies the degenerate input: no deletes or
// transposes, just one insertion per alphabet character.
func TestEdits1EmptyToken(t *testing.T) {
	g := sc.NewEditGenerator(mustAlphabet(t, "abc"))
	got := g.Edits1("")
	require.Len(t, got, 3)
	require.Contains(t, got, "a")
	require.Contains(t, got, "b")
	require.Contains(t, got, "c")
}

// TestEdits1SubstitutionCompleteness checks the spec-level property: every
// single-position substitution of the token by any alphabet character is a
// member of the distance-1 set.
func TestEdits1SubstitutionCompleteness(t *testing.T) {
	a := mustAlphabet(t, "abcde")
	g := sc.NewEditGenerator(a)
	token := "cab"
	got := g.Edits1(token)

	runes := []rune(token)
	for i := range runes {
		for _, c := range a.Runes() {
			variant := make([]rune, len(runes))
			copy(variant, runes)
			variant[i] = c
			require.Contains(t, got, string(variant))
		}
	}
}

// TestEdits1EqualAdjacentTranspose verifies that transposing equal adjacent
// characters regenerates the token itself and is absorbed by set semantics,
// not special-cased away.
func TestEdits1EqualAdjacentTranspose(t *testing.T) {
	g := sc.NewEditGenerator(mustAlphabet(t, "ab"))
	got := g.Edits1("aa")
	require.Contains(t, got, "aa")
}

// TestEdits1ContainedInEdits2 asserts the closure property: a no-op second
// step (e.g. replacing a character with itself) recovers every distance-1
// string, so Edits1 is a subset of Edits2.
func TestEdits1ContainedInEdits2(t *testing.T) {
	g := sc.NewEditGenerator(mustAlphabet(t, "abc"))
	e1 := g.Edits1("ab")
	e2 := g.Edits2("ab")
	for s := range e1 {
		require.Contains(t, e2, s)
	}
}

// TestEdits1Telugu verifies rune-correct editing on actual Telugu text: a
// deletion of the vowel sign is one edit, not a byte-level operation.
func TestEdits1Telugu(t *testing.T) {
	g := sc.NewEditGenerator(sc.TeluguAlphabet())
	got := g.Edits1("ఆకశం")
	// inserting the vowel sign ా after క recovers the correct spelling
	require.Contains(t, got, "ఆకాశం")
	// deleting the last rune
	require.Contains(t, got, "ఆకశ")
}

// TestEdits1Deterministic verifies two invocations produce identical sets.
func TestEdits1Deterministic(t *testing.T) {
	g := sc.NewEditGenerator(mustAlphabet(t, "abc"))
	require.Equal(t, g.Edits1("cab"), g.Edits1("cab"))
}
