package domain

import (
	"strings"
	"time"
)

// QueryFilter is a structured slice description distilled from a free-text
// question. Every field is optional; the zero value matches every record.
type QueryFilter struct {
	NameContains string     `json:"name_contains,omitempty"`
	Statuses     []string   `json:"statuses,omitempty"`
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
	Keywords     []string   `json:"keywords,omitempty"`
}

// IsEmpty reports whether no field is populated.
func (f QueryFilter) IsEmpty() bool {
	return f.NameContains == "" && len(f.Statuses) == 0 &&
		f.From == nil && f.To == nil && len(f.Keywords) == 0
}

// Matches applies all populated conditions with AND semantics.
func (f QueryFilter) Matches(r *ProjectRecord) bool {
	if f.NameContains != "" &&
		!strings.Contains(Canonical(r.Name), Canonical(f.NameContains)) {
		return false
	}

	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if Canonical(s) == Canonical(r.Status) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if (f.From != nil || f.To != nil) && !f.overlapsDates(r) {
		return false
	}

	for _, kw := range f.Keywords {
		if !recordHasKeyword(r, kw) {
			return false
		}
	}

	return true
}

// overlapsDates reports whether the record's effective interval intersects
// the filter range. Records without any usable date never match a dated
// filter; missing dates are never coerced.
func (f QueryFilter) overlapsDates(r *ProjectRecord) bool {
	start := firstDate(r.ActualStart, r.PlannedStart)
	end := firstDate(r.ActualEnd, r.PlannedEnd)
	if start == nil && end == nil {
		return false
	}
	if start == nil {
		start = end
	}
	if f.To != nil && start.After(*f.To) {
		return false
	}
	// An open-ended record overlaps any range that begins after its start.
	if f.From != nil && end != nil && end.Before(*f.From) {
		return false
	}
	return true
}

func recordHasKeyword(r *ProjectRecord, kw string) bool {
	c := Canonical(kw)
	if c == "" {
		return true
	}
	for _, field := range []string{r.ID, r.Name, r.DevType, r.ProcessArea, r.Stage, r.Status} {
		if strings.Contains(Canonical(field), c) {
			return true
		}
	}
	return false
}

func firstDate(ptrs ...*time.Time) *time.Time {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
