package options

var DefaultOptions = CorrectorOptions{
	TopKSuggestions: 5,
	Stage2Limit:     0,
	Charset:         "",
}

type CorrectorOptions struct {
	TopKSuggestions int
	Stage2Limit     int
	// Charset overrides the edit alphabet; empty keeps the Telugu default.
	Charset string
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithTopKSuggestions caps how many ranked suggestions text correction
// attaches to each token. Zero removes the cap.
func WithTopKSuggestions(k int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.TopKSuggestions = k
	})
}

// WithStage2Limit stops the distance-2 search once n known candidates have
// been found. This is an explicit trade of completeness for latency: tokens
// whose full distance-2 candidate set exceeds n may rank differently.
func WithStage2Limit(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Stage2Limit = n
	})
}

// WithCharset replaces the edit alphabet used for replacement and insertion
// edits.
func WithCharset(chars string) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Charset = chars
	})
}
