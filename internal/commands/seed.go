package commands

import (
	"fmt"

	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func newAdminService(db *sqlx.DB) *service.AdminService {
	return service.NewAdminService(
		repository.NewSatkerRepository(db),
		repository.NewKodeAkunRepository(db),
		repository.NewFlagRepository(db),
		repository.NewSpmRepository(db),
		service.NewExcelService(),
		utils.GetLogger(),
	)
}

func newSeedCommand() *cobra.Command {
	var flagsPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed satkers and, optionally, kode akun flags from a CSV template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			admin := newAdminService(db)
			if err := admin.SeedSatkers(cmd.Context(), service.DefaultSatkers); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d satkers\n", len(service.DefaultSatkers))

			if flagsPath == "" {
				return nil
			}
			result, err := admin.SeedFlags(cmd.Context(), flagsPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d kode akun and %d flags from %d rows\n",
				result.KodeAkunCount, result.FlagCount, result.TotalRows)
			for _, ve := range result.ValidationErrors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  row %d: %s %q: %s\n", ve.Row, ve.Field, ve.Value, ve.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagsPath, "flags", "", "flag template CSV (kode akun, flag, required)")

	return cmd
}

func newCleanupDummyCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "cleanup-dummy",
		Short: "Delete SPMs numbered SPM/TEST/... or SPM/RANDOM/...",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := newAdminService(db).CleanupDummySpms(cmd.Context(), dryRun)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d dummy SPM would be deleted\n", n)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d dummy SPM\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only count matching SPMs")

	return cmd
}
