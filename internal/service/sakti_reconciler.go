package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"spm-backend/internal/models"
)

// SaktiColumns holds the 0-indexed positions of the cells the reconciler reads
// from a SAKTI realisasi report.
type SaktiColumns struct {
	KodeAkun  int // 6-digit account code on header rows
	Uraian    int // "NNNNNN. description" on detail rows
	Realisasi int // realized amount on detail rows
}

// DefaultSaktiColumns matches the current SAKTI export layout (columns H, N and Z).
var DefaultSaktiColumns = SaktiColumns{
	KodeAkun:  7,
	Uraian:    13,
	Realisasi: 25,
}

var (
	kodeAkunPattern     = regexp.MustCompile(`^\d{6}$`)
	uraianDetailPattern = regexp.MustCompile(`^\d{6}\.`)
	uraianPrefixPattern = regexp.MustCompile(`^\d{6}\.\s*`)
)

// SaktiEntry is one realized line of the SAKTI report.
type SaktiEntry struct {
	Uraian    string `json:"uraian"`
	Realisasi int64  `json:"realisasi"`
}

// saktiScanState is the fold accumulator. An empty kodeAkun means no header
// row has been seen yet.
type saktiScanState struct {
	kodeAkun string
	buckets  map[string][]SaktiEntry
}

func (st saktiScanState) accountActive() bool {
	return st.kodeAkun != ""
}

// SaktiReconciler matches local rincian against a SAKTI ledger export.
type SaktiReconciler struct {
	cols SaktiColumns
}

func NewSaktiReconciler(cols SaktiColumns) *SaktiReconciler {
	return &SaktiReconciler{cols: cols}
}

// BucketRows folds the report rows into realized entries grouped by kode akun.
// Rows are scanned in order: a header row switches the active account code and
// every later detail row is booked under it until the next header.
func (r *SaktiReconciler) BucketRows(rows [][]string) map[string][]SaktiEntry {
	state := saktiScanState{buckets: make(map[string][]SaktiEntry)}
	for _, row := range rows {
		state = r.step(state, row)
	}
	return state.buckets
}

func (r *SaktiReconciler) step(state saktiScanState, row []string) saktiScanState {
	if code := strings.TrimSpace(getCellValue(row, r.cols.KodeAkun)); kodeAkunPattern.MatchString(code) {
		state.kodeAkun = code
	}

	detail := strings.TrimSpace(getCellValue(row, r.cols.Uraian))
	if !uraianDetailPattern.MatchString(detail) || !state.accountActive() {
		return state
	}

	entry := SaktiEntry{
		Uraian:    strings.TrimSpace(uraianPrefixPattern.ReplaceAllString(detail, "")),
		Realisasi: parseAmount(getCellValue(row, r.cols.Realisasi)),
	}
	state.buckets[state.kodeAkun] = append(state.buckets[state.kodeAkun], entry)
	return state
}

// Reconcile classifies every local rincian as MATCH, MISMATCH or NOT_FOUND.
// The result preserves the order of items.
func (r *SaktiReconciler) Reconcile(rows [][]string, items []models.RincianDetail) []models.ComparisonResult {
	buckets := r.BucketRows(rows)

	results := make([]models.ComparisonResult, 0, len(items))
	for _, item := range items {
		result := models.ComparisonResult{
			SpmNomor:        item.NomorSpm,
			KodeAkun:        item.KodeAkunKode,
			KodeAkunNama:    item.KodeAkunNama,
			RincianUraian:   item.Uraian,
			KodeProgram:     item.KodeProgram,
			KodeKegiatan:    item.KodeKegiatan,
			KodeKRO:         item.KodeKRO,
			KodeRO:          item.KodeRO,
			KodeKomponen:    item.KodeKomponen,
			KodeSubkomponen: item.KodeSubkomponen,
			AppAmount:       item.Jumlah,
			Status:          models.ComparisonNotFound,
		}

		if entry, ok := findSaktiEntry(buckets[item.KodeAkunKode], item.Uraian); ok {
			saktiAmount := entry.Realisasi
			difference := item.Jumlah - saktiAmount
			result.SaktiAmount = &saktiAmount
			result.Difference = &difference
			result.Status = models.ComparisonMismatch
			if difference == 0 {
				result.Status = models.ComparisonMatch
			}
		}

		results = append(results, result)
	}

	return results
}

// findSaktiEntry returns the first entry whose uraian equals the given one,
// ignoring case and surrounding whitespace.
func findSaktiEntry(entries []SaktiEntry, uraian string) (SaktiEntry, bool) {
	want := strings.TrimSpace(uraian)
	for _, entry := range entries {
		if strings.EqualFold(strings.TrimSpace(entry.Uraian), want) {
			return entry, true
		}
	}
	return SaktiEntry{}, false
}

// parseAmount reads a realized amount, truncating any fraction. Anything it
// cannot read, or that does not fit an int64, is 0.
func parseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}

	s = strings.ReplaceAll(s, ",", "")
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	// int64(f) is undefined outside [-2^63, 2^63)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return 0
}

// NormalizeLedgerRows converts JSON-decoded report rows into string cells.
// Numbers keep their integer form, nulls become empty cells.
func NormalizeLedgerRows(raw [][]interface{}) [][]string {
	rows := make([][]string, 0, len(raw))
	for _, rawRow := range raw {
		row := make([]string, len(rawRow))
		for i, cell := range rawRow {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
