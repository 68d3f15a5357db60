package commands

import (
	"encoding/json"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/spf13/cobra"
)

func newReconcileCommand() *cobra.Command {
	var (
		file          string
		tahunAnggaran int
		satkerID      int
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Validate a SAKTI realisasi workbook against stored rincian and print JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			reconciler := service.NewSaktiReconciler(service.SaktiColumns{
				KodeAkun:  cfg.SaktiKodeAkunColumn,
				Uraian:    cfg.SaktiUraianColumn,
				Realisasi: cfg.SaktiRealisasiColumn,
			})
			sakti := service.NewSaktiService(
				repository.NewRincianRepository(db),
				reconciler,
				service.NewExcelService(),
				nil,
				nil,
				utils.GetLogger(),
			)

			operator := models.CurrentUser{Name: "spmctl", Role: models.RoleOpProv}
			results, err := sakti.ValidateFile(cmd.Context(), operator, tahunAnggaran, satkerID, file)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "SAKTI report (.xlsx)")
	cmd.Flags().IntVar(&tahunAnggaran, "tahun", 0, "tahun anggaran")
	cmd.Flags().IntVar(&satkerID, "satker", 0, "satker id")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("tahun")
	_ = cmd.MarkFlagRequired("satker")

	return cmd
}
