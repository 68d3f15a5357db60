package commands

import (
	"fmt"
	"text/tabwriter"

	"spm-backend/internal/config"
	"spm-backend/internal/router"

	"github.com/spf13/cobra"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered API routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range router.ListAPIRoutes(cfg) {
				fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
			}
			return w.Flush()
		},
	}
}
