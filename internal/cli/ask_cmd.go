package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/intelligence"
)

func newAskCmd(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   `ask "<question about the tracker>"`,
		Short: "Answer a natural-language question about the tracker",
		Long: "Ask a question about the loaded tracker data. When a model API key is\n" +
			"configured the question is answered by the model over the matching rows;\n" +
			"otherwise the filter is parsed deterministically and the match summary is shown.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := loadDataset(file)
			if err != nil {
				return err
			}

			svc := intelligence.NewAnswerService(app.Client, intelligence.NewInterpreter(app.Client), 0)
			ans, err := svc.Ask(context.Background(), strings.Join(args, " "), ds)
			if err != nil {
				return fmt.Errorf("answering question: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatAnswer(ans))
			return nil
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
