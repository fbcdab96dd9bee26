package intelligence

import (
	"errors"
	"fmt"
	"time"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

// ErrNoDataset indicates a question arrived before any file was loaded.
// Surfaced as a precondition message, never a crash.
var ErrNoDataset = errors.New("no dataset loaded")

// FilterSource names the path that produced a filter. Callers receive the
// same FilterResolution shape either way.
type FilterSource string

const (
	SourceModel FilterSource = "model"
	SourceRules FilterSource = "rules"
)

// FilterResolution is the result of interpreting a question.
type FilterResolution struct {
	Filter domain.QueryFilter `json:"filter"`
	Source FilterSource       `json:"source"`
}

// AnswerSource names how the final answer was produced.
type AnswerSource string

const (
	// AnswerModel is a model-generated answer over the serialized context.
	AnswerModel AnswerSource = "model"
	// AnswerDeterministic is produced without a model call (e.g. zero matches).
	AnswerDeterministic AnswerSource = "deterministic"
	// AnswerUnavailable means the model call failed and no answer exists.
	AnswerUnavailable AnswerSource = "unavailable"
)

// Answer is the user-facing result of a question.
type Answer struct {
	Text         string       `json:"text"`
	Source       AnswerSource `json:"source"`
	FilterSource FilterSource `json:"filter_source"`
	MatchCount   int          `json:"match_count"`
	Truncated    bool         `json:"truncated"`
}

// filterPayload is the JSON structure the model is asked to emit.
type filterPayload struct {
	NameContains string   `json:"name_contains"`
	Statuses     []string `json:"statuses"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	Keywords     []string `json:"keywords"`
}

// validatePayload checks structural validity and that statuses stay within
// the dataset vocabulary. A failure here demotes the query to the rule path.
func validatePayload(vocab domain.Vocabulary) func(filterPayload) error {
	known := make(map[string]bool, len(vocab.Statuses))
	for _, s := range vocab.Statuses {
		known[domain.Canonical(s)] = true
	}
	return func(p filterPayload) error {
		for _, s := range p.Statuses {
			if !known[domain.Canonical(s)] {
				return fmt.Errorf("status %q not present in dataset", s)
			}
		}
		if _, err := parseOptionalDate(p.From); err != nil {
			return fmt.Errorf("from: %v", err)
		}
		if _, err := parseOptionalDate(p.To); err != nil {
			return fmt.Errorf("to: %v", err)
		}
		return nil
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// toFilter converts a validated payload into a domain filter.
func (p filterPayload) toFilter() domain.QueryFilter {
	from, _ := parseOptionalDate(p.From)
	to, _ := parseOptionalDate(p.To)
	return domain.QueryFilter{
		NameContains: p.NameContains,
		Statuses:     p.Statuses,
		From:         from,
		To:           to,
		Keywords:     p.Keywords,
	}
}
