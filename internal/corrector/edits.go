package corrector

// EditGenerator enumerates the strings reachable from a token by one or two
// single-character edits: deletion, adjacent transposition, replacement and
// insertion, the latter two bounded by the configured alphabet. All methods
// are pure and safe for concurrent use.
type EditGenerator struct {
	alphabet Alphabet
}

func NewEditGenerator(a Alphabet) EditGenerator {
	return EditGenerator{alphabet: a}
}

// Edits1 returns the deduplicated set of strings at one edit from word.
// For a token of L runes and an alphabet of A characters the set holds at
// most L deletes, L-1 transposes, L*A replaces and (L+1)*A inserts.
func (g EditGenerator) Edits1(word string) map[string]struct{} {
	runes := []rune(word)
	out := make(map[string]struct{}, (len(runes)+1)*(g.alphabet.Len()+2))
	g.generate(runes, func(s string) bool {
		out[s] = struct{}{}
		return true
	})
	return out
}

// Edits2 returns the two-level closure of Edits1: every string reachable by
// applying Edits1 to each member of Edits1(word). The closure may contain
// strings at true distance 0 or 1 (a transposition of equal adjacent runes
// is a no-op step); that overlap is intentional, consumers filter against a
// dictionary anyway. Size is O((L*A)^2), which for Telugu words runs into
// the millions — prefer the streaming filter in knownEdits2 when only
// dictionary members are wanted.
func (g EditGenerator) Edits2(word string) map[string]struct{} {
	out := make(map[string]struct{})
	for e1 := range g.Edits1(word) {
		g.generate([]rune(e1), func(s string) bool {
			out[s] = struct{}{}
			return true
		})
	}
	return out
}

// knownEdits2 collects the dictionary members of the distance-2 closure
// without materializing it: each inner candidate is tested against the
// model and discarded immediately. The result equals
// model.FilterKnown(Edits2(word)). A positive limit stops enumeration once
// that many distinct known words have been found.
func (g EditGenerator) knownEdits2(word string, model *FrequencyModel, limit int) map[string]struct{} {
	found := make(map[string]struct{})
	for e1 := range g.Edits1(word) {
		done := !g.generate([]rune(e1), func(s string) bool {
			if model.Known(s) {
				found[s] = struct{}{}
				if limit > 0 && len(found) >= limit {
					return false
				}
			}
			return true
		})
		if done {
			break
		}
	}
	return found
}

// generate feeds every single-edit variant of word to emit, reusing one
// rune buffer across all variants. Returns false if emit aborted.
func (g EditGenerator) generate(word []rune, emit func(string) bool) bool {
	n := len(word)
	buf := make([]rune, 0, n+1)

	// deletes
	for i := 0; i < n; i++ {
		buf = append(buf[:0], word[:i]...)
		buf = append(buf, word[i+1:]...)
		if !emit(string(buf)) {
			return false
		}
	}

	// adjacent transposes
	for i := 0; i+1 < n; i++ {
		buf = append(buf[:0], word...)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		if !emit(string(buf)) {
			return false
		}
	}

	// replaces
	for i := 0; i < n; i++ {
		buf = append(buf[:0], word...)
		for _, c := range g.alphabet.runes {
			buf[i] = c
			if !emit(string(buf)) {
				return false
			}
		}
	}

	// inserts
	for i := 0; i <= n; i++ {
		buf = append(buf[:0], word[:i]...)
		buf = append(buf, 0)
		buf = append(buf, word[i:]...)
		for _, c := range g.alphabet.runes {
			buf[i] = c
			if !emit(string(buf)) {
				return false
			}
		}
	}
	return true
}
