package service

import (
	"encoding/json"
	"fmt"
	"os"

	"rules-embed/internal/domain"
	"rules-embed/internal/segmenter"
)

// ProgressFunc is invoked after every encoded batch with the number of
// records embedded so far and the total.
type ProgressFunc func(done, total int)

// Builder runs the segment → embed → serialize pipeline as a single-shot
// batch job. Any failure aborts the run; there is no retry or partial-result
// recovery.
type Builder struct {
	embedder  domain.Embedder
	batchSize int
	progress  ProgressFunc
}

// NewBuilder creates a pipeline around the given embedder. A non-positive
// batch size falls back to 16.
func NewBuilder(embedder domain.Embedder, batchSize int, progress ProgressFunc) *Builder {
	if batchSize <= 0 {
		batchSize = 16
	}
	return &Builder{embedder: embedder, batchSize: batchSize, progress: progress}
}

// SegmentFile reads the rules document and splits it into rule records. A
// missing file is reported here, before any model work happens.
func (b *Builder) SegmentFile(path string) ([]domain.RuleRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("rules file %q: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return segmenter.Segment(string(data)), nil
}

// EmbedAll prepares the embedder over the full corpus once, then encodes the
// record texts in fixed-size batches. The result is aligned index-for-index
// with records; batching never changes order or values.
func (b *Builder) EmbedAll(records []domain.RuleRecord) ([]domain.EmbeddedRuleRecord, error) {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}
	if err := b.embedder.Prepare(texts); err != nil {
		return nil, fmt.Errorf("prepare %s embedder: %w", b.embedder.Name(), err)
	}
	out := make([]domain.EmbeddedRuleRecord, 0, len(records))
	for start := 0; start < len(texts); start += b.batchSize {
		end := start + b.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		vectors, err := b.embedder.EmbedBatch(texts[start:end])
		if err != nil {
			return nil, err
		}
		if len(vectors) != end-start {
			return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), end-start)
		}
		for i, vec := range vectors {
			rec := records[start+i]
			if dim := b.embedder.Dimension(); dim > 0 && len(vec) != dim {
				return nil, fmt.Errorf("rule %s: embedding has %d dimensions, want %d", rec.Number, len(vec), dim)
			}
			out = append(out, domain.EmbeddedRuleRecord{
				Number:    rec.Number,
				Text:      rec.Text,
				Embedding: vec,
			})
		}
		if b.progress != nil {
			b.progress(end, len(texts))
		}
	}
	return out, nil
}

// Save overwrites path with the records serialized as a single JSON array
// of {number, text, embedding} objects.
func (b *Builder) Save(path string, records []domain.EmbeddedRuleRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
