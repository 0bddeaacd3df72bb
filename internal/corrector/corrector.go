package corrector

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"telspell/pkg/options"
)

// Corrector proposes dictionary-known replacements for misspelled Telugu
// words, ranked by corpus probability. Candidates are searched as a strict
// priority cascade: exact match, then one edit away, then two edits away,
// then the token itself as a fallback. A known word at a closer edit
// distance always outranks a more frequent word at a farther one.
type Corrector struct {
	config   CorrectorConfig
	model    *FrequencyModel
	alphabet Alphabet
	edits    EditGenerator
}

// NewCorrector builds a Corrector over a frequency model. The model must be
// non-nil; the edit alphabet defaults to the Telugu charset and may be
// overridden via options.WithCharset.
func NewCorrector(model *FrequencyModel, opts ...options.Options) (*Corrector, error) {
	if model == nil {
		return nil, ErrEmptyModel
	}
	o := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	charset := o.Charset
	if charset == "" {
		charset = TeluguCharset
	}
	alpha, err := NewAlphabet(charset)
	if err != nil {
		return nil, err
	}
	return &Corrector{
		config: CorrectorConfig{
			TopKSuggestions: o.TopKSuggestions,
			Stage2Limit:     o.Stage2Limit,
		},
		model:    model,
		alphabet: alpha,
		edits:    NewEditGenerator(alpha),
	}, nil
}

// Correct returns the ranked correction candidates for token. The first
// non-empty stage wins; within a stage candidates are ordered by descending
// probability, ties broken by lexicographic word order. When no known word
// lies within two edits the token comes back unchanged with probability 0.
func (c *Corrector) Correct(token string) []Candidate {
	if c.model.Known(token) {
		return []Candidate{{Word: token, Probability: c.model.Probability(token)}}
	}
	if known := c.model.FilterKnown(c.edits.Edits1(token)); len(known) > 0 {
		return c.rank(known)
	}
	if known := c.edits.knownEdits2(token, c.model, c.config.Stage2Limit); len(known) > 0 {
		return c.rank(known)
	}
	return []Candidate{{Word: token}}
}

func (c *Corrector) rank(words map[string]struct{}) []Candidate {
	out := make([]Candidate, 0, len(words))
	for w := range words {
		out = append(out, Candidate{Word: w, Probability: c.model.Probability(w)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Probability == out[j].Probability {
			return out[i].Word < out[j].Word
		}
		return out[i].Probability > out[j].Probability
	})
	return out
}

// CorrectBatch corrects tokens concurrently and returns the candidate lists
// in input order. Distance-2 enumeration dominates the cost, so distinct
// tokens parallelize well; the model and alphabet are read-only shares.
func (c *Corrector) CorrectBatch(ctx context.Context, tokens []string) ([][]Candidate, error) {
	out := make([][]Candidate, len(tokens))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, tok := range tokens {
		i, tok := i, tok
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = c.Correct(tok)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// CorrectText extracts the Telugu tokens of text, replaces each unknown
// token with its top-ranked candidate and reports the per-token suggestion
// lists (capped at TopKSuggestions) so a caller can offer a choice instead
// of taking the automatic replacement.
func (c *Corrector) CorrectText(text string) CorrectionResult {
	tokens := Tokens(text)
	corrected := make([]string, len(tokens))
	copy(corrected, tokens)
	sugByPos := make(map[int]SuggestionInfo)

	for i, tok := range tokens {
		if c.model.Known(tok) {
			continue
		}
		cands := c.Correct(tok)
		if len(cands) == 1 && cands[0].Word == tok {
			// no known word within two edits, keep the original
			continue
		}
		if k := c.config.TopKSuggestions; k > 0 && len(cands) > k {
			cands = cands[:k]
		}
		corrected[i] = cands[0].Word
		sugByPos[i] = SuggestionInfo{Token: tok, Suggestions: cands, Applied: cands[0].Word}
	}

	return CorrectionResult{
		Original:    text,
		Corrected:   strings.Join(corrected, " "),
		Suggestions: sugByPos,
	}
}
