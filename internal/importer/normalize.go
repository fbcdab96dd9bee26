package importer

import (
	"fmt"
	"time"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

// Issue is a recoverable, row-level problem found during normalization.
// Issues are reported alongside the records that did load; they never abort
// a load.
type Issue struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// Normalize validates and coerces raw rows into typed records. Rows missing
// a required column are excluded and reported; bad dates are reported and
// left missing; duplicate identifiers keep the last occurrence and report
// the superseded ones. No state survives between calls.
func Normalize(rows []RawRow) ([]domain.ProjectRecord, []Issue) {
	records := make([]domain.ProjectRecord, 0, len(rows))
	var issues []Issue

	// identifier -> position in records, plus the source row for dup reports
	type seen struct {
		idx int
		row int
	}
	byID := make(map[string]seen)

	for _, raw := range rows {
		missing := false
		for _, col := range RequiredColumns {
			if raw.Values[col] == "" {
				issues = append(issues, Issue{Row: raw.Row, Column: col, Reason: "required value is missing"})
				missing = true
			}
		}
		if missing {
			continue
		}

		rec := domain.ProjectRecord{
			ID:          raw.Values[ColID],
			Name:        raw.Values[ColName],
			DevType:     raw.Values[ColDevType],
			ProcessArea: raw.Values[ColProcessArea],
			Stage:       raw.Values[ColStage],
			Status:      raw.Values[ColStatus],
		}

		rec.PlannedStart = parseDateField(raw, ColPlannedStart, &issues)
		rec.PlannedEnd = parseDateField(raw, ColPlannedEnd, &issues)
		rec.ActualStart = parseDateField(raw, ColActualStart, &issues)
		rec.ActualEnd = parseDateField(raw, ColActualEnd, &issues)

		if rec.PlannedStart != nil && rec.PlannedEnd != nil && rec.PlannedEnd.Before(*rec.PlannedStart) {
			issues = append(issues, Issue{
				Row:    raw.Row,
				Column: ColPlannedEnd,
				Reason: fmt.Sprintf("planned end %s is before planned start %s",
					rec.PlannedEnd.Format("2006-01-02"), rec.PlannedStart.Format("2006-01-02")),
			})
		}

		key := domain.Canonical(rec.ID)
		if prev, ok := byID[key]; ok {
			issues = append(issues, Issue{
				Row:    prev.row,
				Column: ColID,
				Reason: fmt.Sprintf("duplicate identifier %q superseded by row %d", rec.ID, raw.Row),
			})
			records[prev.idx] = rec
			byID[key] = seen{idx: prev.idx, row: raw.Row}
			continue
		}
		byID[key] = seen{idx: len(records), row: raw.Row}
		records = append(records, rec)
	}

	return records, issues
}

func parseDateField(raw RawRow, col string, issues *[]Issue) *time.Time {
	v := raw.Values[col]
	if v == "" {
		return nil
	}
	t, ok := ParseDate(v)
	if !ok {
		*issues = append(*issues, Issue{Row: raw.Row, Column: col, Reason: fmt.Sprintf("unparsable date %q", v)})
		return nil
	}
	return &t
}
