package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/aggregate"
)

func newCountsCmd(app *App) *cobra.Command {
	var (
		file      string
		dimension string
	)
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Show categorical counts for one dimension",
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := aggregate.ParseDimension(dimension)
			if err != nil {
				return err
			}
			ds, _, err := loadDataset(file)
			if err != nil {
				return err
			}
			counts, err := aggregate.CountBy(ds.Records, dim)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatCounts(dim, counts))
			return nil
		},
	}
	addFileFlag(cmd, &file)
	cmd.Flags().StringVarP(&dimension, "dimension", "d", string(aggregate.DimStage),
		"dimension to count by (dev_type, process_area or stage)")
	return cmd
}
