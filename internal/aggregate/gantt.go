package aggregate

import (
	"sort"
	"time"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

// GanttIntervals derives one timeline bar per record. Actual dates take
// precedence over planned ones; a record whose work has started but has no
// actual end is marked ongoing. Records with no usable start date produce
// no bar (missing dates are never invented).
//
// Ordering is (start asc, stage rank asc, project ID asc) so chart rows are
// stable under any input row order.
func GanttIntervals(records []domain.ProjectRecord) []domain.StageInterval {
	intervals := make([]domain.StageInterval, 0, len(records))

	for i := range records {
		r := &records[i]

		start := r.ActualStart
		if start == nil {
			start = r.PlannedStart
		}
		if start == nil {
			continue
		}

		end := r.ActualEnd
		if end == nil {
			end = r.PlannedEnd
		}

		intervals = append(intervals, domain.StageInterval{
			ProjectID:   r.ID,
			ProjectName: r.Name,
			Stage:       r.Stage,
			Start:       *start,
			End:         end,
			Ongoing:     r.ActualStart != nil && r.ActualEnd == nil,
		})
	}

	sort.Slice(intervals, func(i, j int) bool {
		a, b := intervals[i], intervals[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		ra, rb := domain.StageRank(a.Stage), domain.StageRank(b.Stage)
		if ra != rb {
			return ra < rb
		}
		if a.Stage != b.Stage {
			return a.Stage < b.Stage
		}
		return a.ProjectID < b.ProjectID
	})

	return intervals
}

// SortRecordsForContext orders records the same way Gantt bars are ordered,
// with dateless records after dated ones. The context builder truncates in
// this order so the model always sees the earliest work first.
func SortRecordsForContext(records []domain.ProjectRecord) []domain.ProjectRecord {
	sorted := make([]domain.ProjectRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		as, bs := effectiveStart(a), effectiveStart(b)
		switch {
		case as == nil && bs == nil:
			// fall through to stage/ID tie-break
		case as == nil:
			return false
		case bs == nil:
			return true
		case !as.Equal(*bs):
			return as.Before(*bs)
		}
		ra, rb := domain.StageRank(a.Stage), domain.StageRank(b.Stage)
		if ra != rb {
			return ra < rb
		}
		return a.ID < b.ID
	})

	return sorted
}

func effectiveStart(r *domain.ProjectRecord) *time.Time {
	if r.ActualStart != nil {
		return r.ActualStart
	}
	return r.PlannedStart
}
