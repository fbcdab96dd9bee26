package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/aggregate"
)

func newGanttCmd(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Show project timeline intervals in start order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := loadDataset(file)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatGantt(aggregate.GanttIntervals(ds.Records)))
			return nil
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
