package intelligence

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

func ctxDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func ctxRecords() []domain.ProjectRecord {
	return []domain.ProjectRecord{
		{ID: "D-001", Name: "Invoice Portal", DevType: "Report", ProcessArea: "Finance",
			Stage: "Build", Status: "On Track", PlannedStart: ctxDate("2024-01-10"), PlannedEnd: ctxDate("2024-03-01")},
		{ID: "D-002", Name: "Warehouse Sync", DevType: "Interface", ProcessArea: "Logistics",
			Stage: "Test", Status: "Delayed", PlannedStart: ctxDate("2024-02-01"), PlannedEnd: ctxDate("2024-04-15"),
			ActualStart: ctxDate("2024-02-05")},
		{ID: "D-003", Name: "Payroll Cleanup", ProcessArea: "HR",
			Stage: "Design", Status: "Delayed"},
	}
}

func TestBuildContext_EmptyFilterIncludesEverything(t *testing.T) {
	c := BuildContext(domain.QueryFilter{}, ctxRecords(), 0)

	assert.Equal(t, 3, c.MatchCount)
	assert.False(t, c.Truncated)
	assert.Len(t, strings.Split(c.Text, "\n"), 3)
}

func TestBuildContext_StatusFilterReturnsOnlyMatching(t *testing.T) {
	c := BuildContext(domain.QueryFilter{Statuses: []string{"Delayed"}}, ctxRecords(), 0)

	assert.Equal(t, 2, c.MatchCount)
	assert.Contains(t, c.Text, "D-002")
	assert.Contains(t, c.Text, "D-003")
	assert.NotContains(t, c.Text, "D-001")
}

func TestBuildContext_ZeroMatchesYieldsExplicitMarker(t *testing.T) {
	c := BuildContext(domain.QueryFilter{NameContains: "nonexistent"}, ctxRecords(), 0)

	assert.Equal(t, 0, c.MatchCount)
	assert.Equal(t, EmptyResultMarker, c.Text)
	assert.NotEmpty(t, c.Text, "marker must never be an empty string")
}

func TestBuildContext_SerializationIsStableFieldOrdered(t *testing.T) {
	c := BuildContext(domain.QueryFilter{NameContains: "warehouse"}, ctxRecords(), 0)

	assert.Equal(t,
		"ID: D-002 | Name: Warehouse Sync | Type: Interface | Area: Logistics | Stage: Test | Status: Delayed | Planned: 2024-02-01 -> 2024-04-15 | Actual: 2024-02-05 -> ongoing",
		c.Text)
}

func TestBuildContext_UnspecifiedFieldsAndMissingDates(t *testing.T) {
	c := BuildContext(domain.QueryFilter{NameContains: "payroll"}, ctxRecords(), 0)

	assert.Contains(t, c.Text, "Type: Unspecified")
	assert.Contains(t, c.Text, "Planned: - -> -")
	assert.Contains(t, c.Text, "Actual: - -> -")
}

func TestBuildContext_TruncatesAtRecordBoundaries(t *testing.T) {
	records := ctxRecords()
	full := BuildContext(domain.QueryFilter{}, records, 0)
	firstLine := strings.Split(full.Text, "\n")[0]

	// Budget fits roughly one record.
	c := BuildContext(domain.QueryFilter{}, records, len(firstLine)+10)

	assert.True(t, c.Truncated)
	assert.Equal(t, 3, c.MatchCount, "match count reports all matches, not the serialized subset")
	lines := strings.Split(c.Text, "\n")
	assert.Less(t, len(lines), 3)
	// Earliest planned work first, per Gantt ordering.
	assert.Contains(t, lines[0], "D-001")
}

func TestBuildContext_FirstRecordIncludedEvenOverBudget(t *testing.T) {
	c := BuildContext(domain.QueryFilter{}, ctxRecords(), 5)

	assert.Equal(t, 3, c.MatchCount)
	assert.True(t, c.Truncated)
	assert.Contains(t, c.Text, "D-001")
}
