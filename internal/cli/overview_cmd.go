package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/aggregate"
)

func newOverviewCmd(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show portfolio totals and status breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, issues, err := loadDataset(file)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatOverview(aggregate.BuildOverview(ds.Records)))
			if len(issues) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
					styleDim.Render(fmt.Sprintf("%d row issue(s); run `trackboard issues` for details", len(issues))))
			}
			return nil
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
