// Package aggregate derives chart-ready views from normalized records.
// Every function is a pure transform: same records in, byte-identical
// structures out, regardless of input ordering.
package aggregate

import (
	"sort"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

// StatusCount is one status bucket of the overview.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Overview holds the headline metrics for a dataset snapshot.
type Overview struct {
	TotalProjects      int           `json:"total_projects"`
	StatusCounts       []StatusCount `json:"status_counts"`
	MissingPlannedDate int           `json:"missing_planned_date"`
}

// BuildOverview computes total, per-status and missing-date metrics.
// Status buckets keep the display casing of the first occurrence and are
// sorted by status for deterministic output.
func BuildOverview(records []domain.ProjectRecord) Overview {
	counts := make(map[string]int)
	display := make(map[string]string)
	missing := 0

	for i := range records {
		r := &records[i]
		key := domain.Canonical(r.Status)
		if _, ok := display[key]; !ok {
			display[key] = r.Status
		}
		counts[key]++
		if r.MissingPlannedDate() {
			missing++
		}
	}

	out := make([]StatusCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, StatusCount{Status: display[key], Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })

	return Overview{
		TotalProjects:      len(records),
		StatusCounts:       out,
		MissingPlannedDate: missing,
	}
}
