package commands

import (
	"fmt"

	"spm-backend/internal/config"
	"spm-backend/internal/database"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the spmctl command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spmctl",
		Short: "Maintenance commands for the SPM tracker",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSeedCommand(),
		newCleanupDummyCommand(),
		newCreateUserCommand(),
		newReconcileCommand(),
		newSampleSaktiCommand(),
		newRoutesCommand(),
	)

	return rootCmd
}

// connect loads the environment configuration and opens the database.
func connect() (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	db, err := database.NewMySQL(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, db, nil
}
