package corrector

type CorrectorConfig struct {
	// TopKSuggestions caps the suggestion list attached to each token by
	// CorrectText; 0 means no cap. Correct always returns the full list.
	TopKSuggestions int
	// Stage2Limit, when positive, stops distance-2 enumeration after this
	// many known candidates. Off (0) by default: enabling it may change
	// output for tokens whose full distance-2 candidate set is larger.
	Stage2Limit int
}

var DefaultConfig = CorrectorConfig{
	TopKSuggestions: 5,
}

// Candidate is one ranked correction: a known word and its empirical
// probability under the frequency model.
type Candidate struct {
	Word        string  `json:"word"`
	Probability float64 `json:"probability"`
}

type SuggestionInfo struct {
	Token       string      `json:"token"`
	Suggestions []Candidate `json:"suggestions"`
	Applied     string      `json:"applied"`
}

type CorrectionResult struct {
	Original    string                 `json:"original"`
	Corrected   string                 `json:"corrected"`
	Suggestions map[int]SuggestionInfo `json:"suggestions,omitempty"`
}
