package service

import (
	"fmt"
	"io"
	"time"

	"spm-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

type ExcelService struct{}

func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ReadSheetRows returns every row of the first sheet of a workbook on disk.
func (s *ExcelService) ReadSheetRows(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	return firstSheetRows(f)
}

// ReadSheetRowsFrom is ReadSheetRows for an uploaded stream.
func (s *ExcelService) ReadSheetRowsFrom(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	return firstSheetRows(f)
}

func firstSheetRows(f *excelize.File) ([][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	return style
}

func writeHeaders(f *excelize.File, sheetName string, headers []string) {
	for i, header := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", getColumnName(i)), header)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", getColumnName(len(headers)-1)), headerStyle(f))
}

func fillStyle(f *excelize.File, color string) int {
	style, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	return style
}

// ExportSpms writes the SPM list with completeness to an Excel file
func (s *ExcelService) ExportSpms(spms []models.SpmListItem, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "SPM"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headers := []string{
		"Nomor SPM", "Tanggal", "Tahun Anggaran", "Satker", "Total Anggaran",
		"Status", "Jumlah Rincian", "Kelengkapan (%)", "Komentar Penolakan", "Link Drive",
	}
	writeHeaders(f, sheetName, headers)

	statusStyles := map[models.SpmStatus]int{
		models.SpmStatusAccepted: fillStyle(f, "#D4EDDA"),
		models.SpmStatusRejected: fillStyle(f, "#F8D7DA"),
		models.SpmStatusPending:  fillStyle(f, "#FFF3CD"),
	}

	for i, spm := range spms {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), spm.NomorSpm)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), spm.Tanggal.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), spm.TahunAnggaran)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), spm.SatkerNama)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), spm.TotalAnggaran)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), string(spm.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), spm.RincianCount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), spm.CompletenessPercentage)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), derefString(spm.RejectionComment))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), derefString(spm.DriveLink))

		if style, ok := statusStyles[spm.Status]; ok {
			cell := fmt.Sprintf("F%d", row)
			f.SetCellStyle(sheetName, cell, cell, style)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "C", 14)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "H", 16)
	f.SetColWidth(sheetName, "I", "J", 40)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(outputPath)
}

// ExportComparison writes reconciliation results with a status summary
func (s *ExcelService) ExportComparison(results []models.ComparisonResult, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Validasi SAKTI"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headers := []string{
		"Nomor SPM", "Kode Akun", "Nama Akun", "Uraian", "Program", "Kegiatan", "KRO", "RO",
		"Komponen", "Subkomponen", "Jumlah Aplikasi", "Realisasi SAKTI", "Selisih", "Status",
	}
	writeHeaders(f, sheetName, headers)

	statusStyles := map[models.ComparisonStatus]int{
		models.ComparisonMatch:    fillStyle(f, "#D4EDDA"),
		models.ComparisonMismatch: fillStyle(f, "#F8D7DA"),
		models.ComparisonNotFound: fillStyle(f, "#FFF3CD"),
	}
	statusCounts := make(map[models.ComparisonStatus]int)

	for i, res := range results {
		row := i + 2
		values := []interface{}{
			res.SpmNomor, res.KodeAkun, res.KodeAkunNama, res.RincianUraian,
			res.KodeProgram, res.KodeKegiatan, res.KodeKRO, res.KodeRO,
			res.KodeKomponen, res.KodeSubkomponen, res.AppAmount,
		}
		for col, v := range values {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", getColumnName(col), row), v)
		}
		if res.SaktiAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), *res.SaktiAmount)
		}
		if res.Difference != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("M%d", row), *res.Difference)
		}

		statusCell := fmt.Sprintf("N%d", row)
		f.SetCellValue(sheetName, statusCell, string(res.Status))
		if style, ok := statusStyles[res.Status]; ok {
			f.SetCellStyle(sheetName, statusCell, statusCell, style)
		}
		statusCounts[res.Status]++
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 40)
	f.SetColWidth(sheetName, "E", "J", 12)
	f.SetColWidth(sheetName, "K", "M", 18)
	f.SetColWidth(sheetName, "N", "N", 12)

	if len(results) > 0 {
		summaryRow := len(results) + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Ringkasan:")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("Total: %d", len(results)))

		summaryStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		})
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("A%d", summaryRow), summaryStyle)

		row := summaryRow + 1
		for _, status := range []models.ComparisonStatus{models.ComparisonMatch, models.ComparisonMismatch, models.ComparisonNotFound} {
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%s: %d", status, statusCounts[status]))
			row++
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(outputPath)
}

// SampleSaktiAccount describes one kode akun block of a generated sample report.
type SampleSaktiAccount struct {
	Kode    string
	Nama    string
	Entries []SaktiEntry
}

// GenerateSampleSakti writes a workbook laid out like a SAKTI realisasi report
// using the given column positions.
func (s *ExcelService) GenerateSampleSakti(accounts []SampleSaktiAccount, cols SaktiColumns, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	cell := func(col, row int) string {
		return fmt.Sprintf("%s%d", getColumnName(col), row)
	}

	f.SetCellValue(sheetName, "A1", "LAPORAN REALISASI ANGGARAN (SAMPLE)")
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Dicetak: %s", time.Now().Format("02-01-2006 15:04")))
	f.SetCellValue(sheetName, cell(cols.KodeAkun, 4), "Akun")
	f.SetCellValue(sheetName, cell(cols.Uraian, 4), "Uraian")
	f.SetCellValue(sheetName, cell(cols.Realisasi, 4), "Realisasi")

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	row := 5
	for _, account := range accounts {
		f.SetCellValue(sheetName, cell(cols.KodeAkun, row), account.Kode)
		if cols.Uraian != cols.KodeAkun {
			f.SetCellValue(sheetName, cell(cols.Uraian, row), account.Nama)
		}
		row++

		for i, entry := range account.Entries {
			f.SetCellValue(sheetName, cell(cols.Uraian, row), fmt.Sprintf("%06d. %s", i+1, entry.Uraian))
			f.SetCellValue(sheetName, cell(cols.Realisasi, row), entry.Realisasi)
			row++
		}
	}

	return f.SaveAs(outputPath)
}

// Helper functions
func getCellValue(row []string, index int) string {
	if index >= 0 && index < len(row) {
		return row[index]
	}
	return ""
}

func getColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
