package corrector

import "regexp"

// The Telugu script occupies the contiguous block U+0C00..U+0C7F.
var (
	teluguRunRe  = regexp.MustCompile(`[\x{0C00}-\x{0C7F}]+`)
	teluguWordRe = regexp.MustCompile(`^[\x{0C00}-\x{0C7F}]+$`)
)

// Tokens extracts the maximal runs of Telugu code points from text, in
// order of appearance. Everything else (latin, digits, punctuation,
// whitespace) is skipped.
func Tokens(text string) []string {
	return teluguRunRe.FindAllString(text, -1)
}

// IsTeluguWord reports whether tok is a non-empty run of Telugu code points.
func IsTeluguWord(tok string) bool {
	return teluguWordRe.MatchString(tok)
}
