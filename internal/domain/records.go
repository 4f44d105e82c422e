package domain

// RuleRecord is a single numbered rule cut out of the rules document.
// Number is the hierarchical rule number ("100", "100.1", "100.1a");
// Text is the verbatim header line plus any continuation lines, trimmed.
type RuleRecord struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// EmbeddedRuleRecord is a RuleRecord enriched with its embedding vector.
type EmbeddedRuleRecord struct {
	Number    string    `json:"number"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// Embedder converts free text into numeric vector representations.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	// EmbedBatch returns exactly one vector per input text, in input order.
	// Results must not depend on how the caller groups texts into batches.
	EmbedBatch(texts []string) ([][]float64, error)
}
