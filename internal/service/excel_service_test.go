package service

import (
	"os"
	"path/filepath"
	"testing"

	"spm-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildFlagTemplate(t *testing.T) {
	rows := [][]string{
		{"\ufeffKode Akun", "Jenis", "SPD", "Kuitansi", "Daftar Hadir"},
		{"524111", "Belanja Perjalanan Dinas", "ya", "ya/tidak", "tidak"},
		{"521211", "Belanja Bahan", "", "YA", ""},
		{"", "", "", "", ""},
		{"", "Tanpa kode", "ya"},
		{"521811", "Belanja Persediaan", "mungkin", "ya"},
	}

	tmpl, err := buildFlagTemplate(rows)
	require.NoError(t, err)

	assert.Equal(t, 5, tmpl.Result.TotalRows)
	assert.Equal(t, 3, tmpl.Result.KodeAkunCount)
	assert.Equal(t, 4, tmpl.Result.FlagCount)
	require.Len(t, tmpl.Entries, 3)

	assert.Equal(t, models.FlagTemplateEntry{
		Row:  2,
		Kode: "524111",
		Nama: "Belanja Perjalanan Dinas",
		Flags: []models.Flag{
			{Nama: "SPD", Tipe: "YES"},
			{Nama: "Kuitansi", Tipe: "YES_STRIKETHROUGH"},
		},
	}, tmpl.Entries[0])
	assert.Equal(t, []models.Flag{{Nama: "Kuitansi", Tipe: "YES"}}, tmpl.Entries[1].Flags)
	assert.Equal(t, []models.Flag{{Nama: "Kuitansi", Tipe: "YES"}}, tmpl.Entries[2].Flags)

	require.Len(t, tmpl.Result.ValidationErrors, 2)
	assert.Equal(t, 5, tmpl.Result.ValidationErrors[0].Row)
	assert.Equal(t, 6, tmpl.Result.ValidationErrors[1].Row)
	assert.Equal(t, "SPD", tmpl.Result.ValidationErrors[1].Field)
	assert.Equal(t, "mungkin", tmpl.Result.ValidationErrors[1].Value)
}

func TestBuildFlagTemplate_MissingColumns(t *testing.T) {
	_, err := buildFlagTemplate([][]string{{"Kode", "Nama"}})
	assert.Error(t, err)

	_, err = buildFlagTemplate(nil)
	assert.Error(t, err)
}

func TestExcelService_ParseFlagTemplateCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.csv")
	content := "Kode Akun,Jenis,SPD,Kuitansi\n524111,Belanja Perjalanan Dinas,ya,ya/tidak\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tmpl, err := NewExcelService().ParseFlagTemplate(path)
	require.NoError(t, err)
	require.Len(t, tmpl.Entries, 1)
	assert.Len(t, tmpl.Entries[0].Flags, 2)

	_, err = NewExcelService().ParseFlagTemplate(filepath.Join(t.TempDir(), "flags.txt"))
	assert.Error(t, err)
}

func TestExcelService_SampleSaktiRoundTrip(t *testing.T) {
	svc := NewExcelService()
	path := filepath.Join(t.TempDir(), "sakti.xlsx")

	accounts := []SampleSaktiAccount{
		{
			Kode: "524111",
			Nama: "Belanja Perjalanan Dinas Biasa",
			Entries: []SaktiEntry{
				{Uraian: "Uang Harian Perjalanan Dinas", Realisasi: 2303000},
				{Uraian: "Tiket Pesawat", Realisasi: 4500000},
			},
		},
		{
			Kode:    "521211",
			Nama:    "Belanja Bahan",
			Entries: []SaktiEntry{{Uraian: "ATK", Realisasi: 100000}},
		},
	}
	require.NoError(t, svc.GenerateSampleSakti(accounts, DefaultSaktiColumns, path))

	rows, err := svc.ReadSheetRows(path)
	require.NoError(t, err)

	buckets := NewSaktiReconciler(DefaultSaktiColumns).BucketRows(rows)
	assert.Equal(t, accounts[0].Entries, buckets["524111"])
	assert.Equal(t, accounts[1].Entries, buckets["521211"])

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	streamed, err := svc.ReadSheetRowsFrom(file)
	require.NoError(t, err)
	assert.Equal(t, rows, streamed)
}

func TestExcelService_ExportComparison(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	sakti, diff := int64(2303000), int64(197000)

	results := []models.ComparisonResult{
		{SpmNomor: "SPM/001", KodeAkun: "524111", RincianUraian: "Uang Harian", AppAmount: 2500000, SaktiAmount: &sakti, Difference: &diff, Status: models.ComparisonMismatch},
		{SpmNomor: "SPM/002", KodeAkun: "521211", RincianUraian: "ATK", AppAmount: 100000, Status: models.ComparisonNotFound},
	}
	require.NoError(t, NewExcelService().ExportComparison(results, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.NotEmpty(t, f.GetSheetList())
}

func TestExcelService_ExportSpms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spm.xlsx")
	items := []models.SpmListItem{
		{Spm: models.Spm{ID: 1, NomorSpm: "SPM/001", TahunAnggaran: 2024, Status: models.SpmStatusPending}, SatkerNama: "BPS Kota Gorontalo", RincianCount: 2, CompletenessPercentage: 75},
	}
	require.NoError(t, NewExcelService().ExportSpms(items, path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestGetColumnName(t *testing.T) {
	assert.Equal(t, "A", getColumnName(0))
	assert.Equal(t, "H", getColumnName(7))
	assert.Equal(t, "Z", getColumnName(25))
	assert.Equal(t, "AA", getColumnName(26))
}
