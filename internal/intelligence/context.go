package intelligence

import (
	"fmt"
	"strings"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/aggregate"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

// EmptyResultMarker is embedded in the prompt when a filter matches nothing,
// so the answer can state that no projects matched instead of hallucinating
// over an empty string.
const EmptyResultMarker = "NO MATCHING PROJECTS: no records in the current dataset match the question."

// DefaultContextBudget caps the serialized context in characters when no
// budget is configured.
const DefaultContextBudget = 6000

// Context is the bounded data slice embedded in the model prompt.
type Context struct {
	Text       string `json:"text"`
	MatchCount int    `json:"match_count"`
	Truncated  bool   `json:"truncated"`
}

// BuildContext filters the records, serializes the matching subset in a
// stable field order, and cuts at record boundaries when the character
// budget is exceeded. Records are serialized in the same order Gantt bars
// are drawn, so truncation keeps the earliest work.
func BuildContext(filter domain.QueryFilter, records []domain.ProjectRecord, budget int) Context {
	if budget <= 0 {
		budget = DefaultContextBudget
	}

	var matched []domain.ProjectRecord
	for i := range records {
		if filter.Matches(&records[i]) {
			matched = append(matched, records[i])
		}
	}

	if len(matched) == 0 {
		return Context{Text: EmptyResultMarker, MatchCount: 0}
	}

	matched = aggregate.SortRecordsForContext(matched)

	var b strings.Builder
	included := 0
	for _, r := range matched {
		line := serializeRecord(&r)
		// Always include the first record, even over budget.
		if included > 0 && b.Len()+len(line)+1 > budget {
			break
		}
		if included > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		included++
	}

	return Context{
		Text:       b.String(),
		MatchCount: len(matched),
		Truncated:  included < len(matched),
	}
}

// serializeRecord renders one record as a single pipe-delimited line with a
// fixed field order, compact for the prompt and readable for a human.
func serializeRecord(r *domain.ProjectRecord) string {
	actualEnd := domain.FormatDate(r.ActualEnd)
	if r.ActualStart != nil && r.ActualEnd == nil {
		actualEnd = "ongoing"
	}
	return fmt.Sprintf("ID: %s | Name: %s | Type: %s | Area: %s | Stage: %s | Status: %s | Planned: %s -> %s | Actual: %s -> %s",
		r.ID, r.Name,
		orUnspecified(r.DevType), orUnspecified(r.ProcessArea),
		r.Stage, r.Status,
		domain.FormatDate(r.PlannedStart), domain.FormatDate(r.PlannedEnd),
		domain.FormatDate(r.ActualStart), actualEnd)
}

func orUnspecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return aggregate.Unspecified
	}
	return v
}
