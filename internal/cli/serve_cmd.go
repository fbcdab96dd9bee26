package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/config"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.ConfigPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			srv := server.New(cfg, app.Client)
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", cfg.Server.Address())
			return srv.Run()
		},
	}
	return cmd
}
