package corrector

import "errors"

// TeluguCharset holds every character used to synthesize replacement and
// insertion edits: the full consonant and vowel inventory of the Telugu
// block plus the dependent vowel signs and modifiers.
const TeluguCharset = "అఆఇఈఉఊఋౠఎఏఐఒఓఔకఖగఘఙచఛజఝఞటఠడఢణతథదధనపఫబభమయరలవశషసహళక్షఱాిీుూృౄెేైొోౌ్ంఃఁ"

var ErrEmptyAlphabet = errors.New("corrector: alphabet is empty")

// Alphabet is the ordered, deduplicated set of characters eligible for
// insertion and replacement during edit generation. Immutable after
// construction and safe to share across goroutines.
type Alphabet struct {
	runes []rune
}

// NewAlphabet builds an Alphabet from chars, keeping the first occurrence
// of each rune. An empty set is a configuration error: without an alphabet
// edit generation degrades to deletes and transposes only.
func NewAlphabet(chars string) (Alphabet, error) {
	seen := make(map[rune]bool)
	var runes []rune
	for _, r := range chars {
		if seen[r] {
			continue
		}
		seen[r] = true
		runes = append(runes, r)
	}
	if len(runes) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	return Alphabet{runes: runes}, nil
}

// TeluguAlphabet returns the default alphabet over TeluguCharset.
func TeluguAlphabet() Alphabet {
	a, err := NewAlphabet(TeluguCharset)
	if err != nil {
		panic(err) // the constant is non-empty
	}
	return a
}

// Runes returns a copy of the alphabet in enumeration order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

// Len reports the alphabet size.
func (a Alphabet) Len() int { return len(a.runes) }

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a.runes {
		if c == r {
			return true
		}
	}
	return false
}
