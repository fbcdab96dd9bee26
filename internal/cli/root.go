package cli

import (
	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/llm"
)

// App holds the shared dependencies CLI commands are wired with.
type App struct {
	// Client is nil when LLM features are disabled; commands that need
	// the model degrade to their deterministic behavior.
	Client llm.Client

	// ConfigPath points at the optional YAML config file for serve.
	ConfigPath string
}

// NewRootCmd creates the top-level "trackboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "trackboard",
		Short:         "Project tracker insights and natural-language Q&A",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(app),
		newOverviewCmd(app),
		newGanttCmd(app),
		newCountsCmd(app),
		newIssuesCmd(app),
		newAskCmd(app),
	)

	return root
}
