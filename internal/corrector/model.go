package corrector

import "errors"

var ErrEmptyModel = errors.New("corrector: frequency model is empty")

// FrequencyModel maps known words to corpus occurrence counts and answers
// membership and probability queries. Immutable after construction; the
// same instance is shared read-only by all concurrent corrections.
type FrequencyModel struct {
	counts map[string]int64
	total  int64
}

// NewFrequencyModel copies counts into a model and precomputes the total.
// Words with non-positive counts are dropped. An empty mapping is rejected
// so Probability never has to divide by zero.
func NewFrequencyModel(counts map[string]int64) (*FrequencyModel, error) {
	m := &FrequencyModel{counts: make(map[string]int64, len(counts))}
	for w, c := range counts {
		if c <= 0 {
			continue
		}
		m.counts[w] = c
		m.total += c
	}
	if len(m.counts) == 0 {
		return nil, ErrEmptyModel
	}
	return m, nil
}

// Known reports whether word is in the model.
func (m *FrequencyModel) Known(word string) bool {
	_, ok := m.counts[word]
	return ok
}

// Count returns the occurrence count of word, 0 if absent.
func (m *FrequencyModel) Count(word string) int64 {
	return m.counts[word]
}

// Probability returns count(word)/total, exactly 0 for absent words.
func (m *FrequencyModel) Probability(word string) float64 {
	c, ok := m.counts[word]
	if !ok {
		return 0
	}
	return float64(c) / float64(m.total)
}

// FilterKnown returns the subset of words present in the model.
func (m *FrequencyModel) FilterKnown(words map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for w := range words {
		if m.Known(w) {
			out[w] = struct{}{}
		}
	}
	return out
}

// CustomWordCount is the count assigned to user-added dictionary words. It
// is large enough to outrank any corpus word within the same stage.
const CustomWordCount int64 = 1_000_000_000

// MergeCustomWords returns a copy of counts with every custom word pinned
// at CustomWordCount. counts itself is not modified.
func MergeCustomWords(counts map[string]int64, words []string) map[string]int64 {
	merged := make(map[string]int64, len(counts)+len(words))
	for w, c := range counts {
		merged[w] = c
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		merged[w] = CustomWordCount
	}
	return merged
}

// Size returns the number of distinct known words.
func (m *FrequencyModel) Size() int { return len(m.counts) }

// Total returns the summed occurrence count over all known words.
func (m *FrequencyModel) Total() int64 { return m.total }
