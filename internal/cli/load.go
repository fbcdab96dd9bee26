package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/importer"
)

// loadDataset reads a tracker file from disk and normalizes it into a
// dataset. The format is chosen by file extension.
func loadDataset(path string) (*domain.Dataset, []importer.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening tracker file: %w", err)
	}
	defer f.Close()

	var rows []importer.RawRow
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = importer.ReadXLSX(f)
	case ".csv":
		rows, err = importer.ReadCSV(f)
	default:
		return nil, nil, fmt.Errorf("unsupported file extension %q (want .xlsx, .xlsm or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	records, issues := importer.Normalize(rows)
	return domain.NewDataset(filepath.Base(path), records), issues, nil
}

// addFileFlag registers the required --file flag on a data command.
func addFileFlag(cmd *cobra.Command, file *string) {
	cmd.Flags().StringVarP(file, "file", "f", "", "tracker file (.xlsx, .xlsm or .csv)")
	_ = cmd.MarkFlagRequired("file")
}
