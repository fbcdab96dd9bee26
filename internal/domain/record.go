package domain

import (
	"strings"
	"time"
)

// ProjectRecord is one normalized row of the tracking sheet. Display casing
// of categorical fields is preserved; use Canonical for matching.
type ProjectRecord struct {
	ID           string
	Name         string
	DevType      string
	ProcessArea  string
	Stage        string
	Status       string
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
}

// Canonical folds a categorical value for case- and whitespace-insensitive
// matching. The empty string stays empty so "missing" never collides with a
// real value.
func Canonical(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// MissingPlannedDate reports whether either planned date is absent.
func (r *ProjectRecord) MissingPlannedDate() bool {
	return r.PlannedStart == nil || r.PlannedEnd == nil
}

// StageInterval is one Gantt bar: a (project, stage, start, end) tuple.
// End is nil and Ongoing true when work has started but no actual end is
// recorded.
type StageInterval struct {
	ProjectID   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Stage       string     `json:"stage"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	Ongoing     bool       `json:"ongoing"`
}

// FormatDate renders an optional date for serialized contexts and CLI output.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
