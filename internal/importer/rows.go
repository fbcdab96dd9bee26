package importer

import "strings"

// Canonical column keys. Raw headers are mapped onto these before
// normalization so the rest of the pipeline never sees sheet-specific names.
const (
	ColID           = "identifier"
	ColName         = "name"
	ColDevType      = "dev_type"
	ColProcessArea  = "process_area"
	ColStage        = "stage"
	ColStatus       = "status"
	ColPlannedStart = "planned_start"
	ColPlannedEnd   = "planned_end"
	ColActualStart  = "actual_start"
	ColActualEnd    = "actual_end"
)

// RequiredColumns must be present and non-blank for a row to produce a record.
var RequiredColumns = []string{ColID, ColName, ColStage, ColStatus}

// RawRow is one spreadsheet row keyed by canonical column. Row is the
// 1-based row number in the source file (the header is row 1).
type RawRow struct {
	Row    int
	Values map[string]string
}

// headerAliases maps trimmed, casefolded source headers to canonical
// columns. Trackers exported from different teams drift in naming (the
// classic being a trailing space on a header), so matching is permissive.
var headerAliases = map[string]string{
	"id":                     ColID,
	"identifier":             ColID,
	"project id":             ColID,
	"development id":         ColID,
	"dev id":                 ColID,
	"name":                   ColName,
	"project name":           ColName,
	"development name":       ColName,
	"fsd / development name": ColName,
	"dev type":               ColDevType,
	"development type":       ColDevType,
	"type":                   ColDevType,
	"process area":           ColProcessArea,
	"area":                   ColProcessArea,
	"stage":                  ColStage,
	"status":                 ColStatus,
	"project status":         ColStatus,
	"overall status":         ColStatus,
	"planned start":          ColPlannedStart,
	"planned start date":     ColPlannedStart,
	"dev planned start date": ColPlannedStart,
	"start date":             ColPlannedStart,
	"planned end":            ColPlannedEnd,
	"planned end date":       ColPlannedEnd,
	"planned delivery date":  ColPlannedEnd,
	"dev planned delivery date": ColPlannedEnd,
	"end date":                  ColPlannedEnd,
	"actual start":              ColActualStart,
	"actual start date":         ColActualStart,
	"dev actual start date":     ColActualStart,
	"actual end":                ColActualEnd,
	"actual end date":           ColActualEnd,
	"actual delivery date":      ColActualEnd,
	"dev actual delivery date":  ColActualEnd,
}

// mapHeaders resolves source headers to canonical columns by position.
// Unrecognized headers map to "" and their cells are dropped.
func mapHeaders(headers []string) []string {
	mapped := make([]string, len(headers))
	for i, h := range headers {
		mapped[i] = headerAliases[strings.ToLower(strings.TrimSpace(h))]
	}
	return mapped
}

// buildRows pairs mapped headers with cell values. When two source columns
// alias to the same canonical column, the first non-blank cell wins.
func buildRows(headers []string, data [][]string) []RawRow {
	mapped := mapHeaders(headers)
	rows := make([]RawRow, 0, len(data))
	for i, cells := range data {
		values := make(map[string]string, len(mapped))
		for j, col := range mapped {
			if col == "" || j >= len(cells) {
				continue
			}
			cell := strings.TrimSpace(cells[j])
			if cell == "" {
				continue
			}
			if _, ok := values[col]; !ok {
				values[col] = cell
			}
		}
		rows = append(rows, RawRow{Row: i + 2, Values: values})
	}
	return rows
}
