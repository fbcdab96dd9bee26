package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a comma-separated tracker export into raw rows. The first
// line is treated as the header row.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports often have ragged trailing columns
	cr.TrimLeadingSpace = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	return buildRows(all[0], all[1:]), nil
}
