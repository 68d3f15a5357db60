package service

import (
	"testing"

	"spm-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saktiRow builds a 26-column report row with the account, description and
// realized amount cells placed at the default positions.
func saktiRow(kodeAkun, uraian, realisasi string) []string {
	row := make([]string, 26)
	row[DefaultSaktiColumns.KodeAkun] = kodeAkun
	row[DefaultSaktiColumns.Uraian] = uraian
	row[DefaultSaktiColumns.Realisasi] = realisasi
	return row
}

func detailItem(nomor, kode, uraian string, jumlah int64) models.RincianDetail {
	return models.RincianDetail{
		Rincian:      models.Rincian{Uraian: uraian, Jumlah: jumlah, KodeProgram: "054.01.WA"},
		KodeAkunKode: kode,
		KodeAkunNama: "Belanja Barang",
		NomorSpm:     nomor,
	}
}

func TestSaktiReconciler_BucketRows(t *testing.T) {
	r := NewSaktiReconciler(DefaultSaktiColumns)

	t.Run("detail before any header is dropped", func(t *testing.T) {
		rows := [][]string{
			saktiRow("", "000001. ATK", "1000"),
			saktiRow("521211", "", ""),
			saktiRow("", "000002. Konsumsi", "2,500"),
		}
		buckets := r.BucketRows(rows)
		require.Len(t, buckets, 1)
		assert.Equal(t, []SaktiEntry{{Uraian: "Konsumsi", Realisasi: 2500}}, buckets["521211"])
	})

	t.Run("header switches the active account", func(t *testing.T) {
		rows := [][]string{
			saktiRow("521211", "", ""),
			saktiRow("", "000001. ATK", "100"),
			saktiRow(" 524111 ", "", ""),
			saktiRow("", "000002. Tiket", "200"),
		}
		buckets := r.BucketRows(rows)
		assert.Equal(t, []SaktiEntry{{Uraian: "ATK", Realisasi: 100}}, buckets["521211"])
		assert.Equal(t, []SaktiEntry{{Uraian: "Tiket", Realisasi: 200}}, buckets["524111"])
	})

	t.Run("row can be header and detail at once", func(t *testing.T) {
		rows := [][]string{saktiRow("524111", "000001. Uang Harian", "750000")}
		buckets := r.BucketRows(rows)
		assert.Equal(t, []SaktiEntry{{Uraian: "Uang Harian", Realisasi: 750000}}, buckets["524111"])
	})

	t.Run("non matching cells are ignored", func(t *testing.T) {
		rows := [][]string{
			saktiRow("52411", "", ""),
			saktiRow("5241110", "", ""),
			saktiRow("", "12345. Short prefix", "1"),
			saktiRow("", "Uang Harian", "1"),
		}
		assert.Empty(t, r.BucketRows(rows))
	})

	t.Run("short rows and bad amounts", func(t *testing.T) {
		rows := [][]string{
			{"a", "b"},
			saktiRow("521211", "", ""),
			saktiRow("", "000001. ATK", "n/a"),
			append(make([]string, 13), "000002. Kertas"),
		}
		buckets := r.BucketRows(rows)
		assert.Equal(t, []SaktiEntry{
			{Uraian: "ATK", Realisasi: 0},
			{Uraian: "Kertas", Realisasi: 0},
		}, buckets["521211"])
	})
}

func TestSaktiReconciler_Reconcile(t *testing.T) {
	r := NewSaktiReconciler(DefaultSaktiColumns)
	rows := [][]string{
		saktiRow("524111", "", ""),
		saktiRow("", "000001. Uang Harian Perjalanan Dinas", "2,303,000"),
		saktiRow("", "000002. Tiket Pesawat", "4500000"),
		saktiRow("", "000003. Tiket Pesawat", "1"),
	}

	items := []models.RincianDetail{
		detailItem("SPM/001", "524111", "uang harian perjalanan dinas ", 2500000),
		detailItem("SPM/001", "524111", "Tiket Pesawat", 4500000),
		detailItem("SPM/002", "521211", "ATK", 100000),
		detailItem("SPM/002", "524111", "Penginapan", 900000),
	}

	results := r.Reconcile(rows, items)
	require.Len(t, results, 4)

	mismatch := results[0]
	assert.Equal(t, models.ComparisonMismatch, mismatch.Status)
	require.NotNil(t, mismatch.SaktiAmount)
	require.NotNil(t, mismatch.Difference)
	assert.Equal(t, int64(2303000), *mismatch.SaktiAmount)
	assert.Equal(t, int64(197000), *mismatch.Difference)
	assert.Equal(t, "SPM/001", mismatch.SpmNomor)
	assert.Equal(t, "054.01.WA", mismatch.KodeProgram)

	// First matching entry wins.
	match := results[1]
	assert.Equal(t, models.ComparisonMatch, match.Status)
	assert.Equal(t, int64(0), *match.Difference)

	for _, res := range results[2:] {
		assert.Equal(t, models.ComparisonNotFound, res.Status)
		assert.Nil(t, res.SaktiAmount)
		assert.Nil(t, res.Difference)
	}
	assert.Equal(t, "Penginapan", results[3].RincianUraian)
}

func TestSaktiReconciler_EmptyInputs(t *testing.T) {
	r := NewSaktiReconciler(DefaultSaktiColumns)

	assert.Empty(t, r.Reconcile(nil, nil))

	results := r.Reconcile(nil, []models.RincianDetail{detailItem("SPM/1", "521211", "ATK", 5)})
	require.Len(t, results, 1)
	assert.Equal(t, models.ComparisonNotFound, results[0].Status)
}

func TestSaktiReconciler_CustomColumns(t *testing.T) {
	r := NewSaktiReconciler(SaktiColumns{KodeAkun: 0, Uraian: 1, Realisasi: 2})
	rows := [][]string{{"521211", "000001. ATK", "100"}}

	results := r.Reconcile(rows, []models.RincianDetail{detailItem("SPM/1", "521211", "ATK", 100)})
	assert.Equal(t, models.ComparisonMatch, results[0].Status)
}

func TestParseAmount(t *testing.T) {
	tests := map[string]int64{
		"":            0,
		"-":           0,
		" 1,250,000 ": 1250000,
		"2303000.75":  2303000,
		"abc":         0,
		"-500":        -500,
		"1e21":        0,
		"-1e19":       0,
		"NaN":         0,
		"+Inf":        0,
		"1.5e6":       1500000,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseAmount(in), in)
	}
}

func TestNormalizeLedgerRows(t *testing.T) {
	rows := NormalizeLedgerRows([][]interface{}{
		{nil, "524111", float64(2303000), true, 1.5},
	})
	assert.Equal(t, [][]string{{"", "524111", "2303000", "true", "1.5"}}, rows)
}
