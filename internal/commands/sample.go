package commands

import (
	"fmt"

	"spm-backend/internal/config"
	"spm-backend/internal/service"

	"github.com/spf13/cobra"
)

var sampleSaktiAccounts = []service.SampleSaktiAccount{
	{
		Kode: "521211",
		Nama: "Belanja Bahan",
		Entries: []service.SaktiEntry{
			{Uraian: "Pembelian ATK", Realisasi: 1250000},
			{Uraian: "Konsumsi Rapat", Realisasi: 2400000},
		},
	},
	{
		Kode: "524111",
		Nama: "Belanja Perjalanan Dinas Biasa",
		Entries: []service.SaktiEntry{
			{Uraian: "Uang Harian", Realisasi: 2303000},
			{Uraian: "Transport", Realisasi: 1500000},
		},
	},
	{
		Kode: "522151",
		Nama: "Belanja Jasa Profesi",
		Entries: []service.SaktiEntry{
			{Uraian: "Honor Narasumber", Realisasi: 900000},
		},
	},
}

func newSampleSaktiCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample-sakti",
		Short: "Write a sample spreadsheet in the SAKTI realisasi layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			cols := service.SaktiColumns{
				KodeAkun:  cfg.SaktiKodeAkunColumn,
				Uraian:    cfg.SaktiUraianColumn,
				Realisasi: cfg.SaktiRealisasiColumn,
			}
			if err := service.NewExcelService().GenerateSampleSakti(sampleSaktiAccounts, cols, out); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sample SAKTI report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "sample_sakti.xlsx", "output path")

	return cmd
}
