package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIssuesCmd(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Show rows the normalizer flagged or excluded",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, issues, err := loadDataset(file)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatIssues(issues))
			return nil
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
