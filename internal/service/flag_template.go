package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spm-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	flagTemplateKodeColumn  = "Kode Akun"
	flagTemplateJenisColumn = "Jenis"
)

// ParseFlagTemplate reads a flag template (.csv or .xlsx). The header names
// the "Kode Akun" and "Jenis" columns; every other column is a flag whose cell
// says whether the kode akun requires it: "ya" (YES), "ya/tidak"
// (YES_STRIKETHROUGH) or "tidak"/empty (not required).
func (s *ExcelService) ParseFlagTemplate(filePath string) (*models.FlagTemplate, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		rows, err = readCSVRows(filePath)
	case ".xlsx":
		rows, err = s.ReadSheetRows(filePath)
	default:
		return nil, fmt.Errorf("unsupported flag template %q: use .csv or .xlsx", filepath.Base(filePath))
	}
	if err != nil {
		return nil, err
	}

	return buildFlagTemplate(rows)
}

func readCSVRows(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func buildFlagTemplate(rows [][]string) (*models.FlagTemplate, error) {
	if len(rows) < 1 {
		return nil, fmt.Errorf("flag template is empty")
	}

	header := make([]string, len(rows[0]))
	kodeCol, jenisCol := -1, -1
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch header[i] {
		case flagTemplateKodeColumn:
			kodeCol = i
		case flagTemplateJenisColumn:
			jenisCol = i
		}
	}
	if kodeCol < 0 || jenisCol < 0 {
		return nil, fmt.Errorf("flag template must have %q and %q columns", flagTemplateKodeColumn, flagTemplateJenisColumn)
	}

	template := &models.FlagTemplate{
		Result: models.FlagImportResult{
			TotalRows:        len(rows) - 1,
			ValidationErrors: []models.FlagValidationError{},
			ImportTime:       time.Now(),
		},
	}

	for i, row := range rows[1:] {
		rowNum := i + 2
		kode := strings.TrimSpace(getCellValue(row, kodeCol))
		nama := strings.TrimSpace(getCellValue(row, jenisCol))
		if kode == "" || nama == "" {
			if !isBlankRow(row) {
				template.Result.ValidationErrors = append(template.Result.ValidationErrors, models.FlagValidationError{
					Row:     rowNum,
					Field:   flagTemplateKodeColumn,
					Value:   kode,
					Message: "Kode Akun and Jenis are required",
				})
			}
			continue
		}

		entry := models.FlagTemplateEntry{Row: rowNum, Kode: kode, Nama: nama, Flags: []models.Flag{}}
		for col, flagName := range header {
			if col == kodeCol || col == jenisCol || flagName == "" {
				continue
			}
			value := getCellValue(row, col)
			kind, required, ok := normalizeFlagRequirement(value)
			if !ok {
				template.Result.ValidationErrors = append(template.Result.ValidationErrors, models.FlagValidationError{
					Row:     rowNum,
					Field:   flagName,
					Value:   value,
					Message: "must be ya, ya/tidak or tidak",
				})
				continue
			}
			if required {
				entry.Flags = append(entry.Flags, models.Flag{Nama: flagName, Tipe: string(kind)})
			}
		}

		template.Entries = append(template.Entries, entry)
		template.Result.KodeAkunCount++
		template.Result.FlagCount += len(entry.Flags)
	}

	return template, nil
}

// normalizeFlagRequirement maps a template cell to the declared flag type.
// required is false for "tidak" and empty cells; ok is false for anything unknown.
func normalizeFlagRequirement(value string) (kind models.AnswerKind, required bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ya":
		return models.AnswerYes, true, true
	case "ya/tidak":
		return models.AnswerYesStrikethrough, true, true
	case "tidak", "":
		return "", false, true
	}
	return "", false, false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// GenerateFlagImportErrorReport writes the template validation errors to Excel
func (s *ExcelService) GenerateFlagImportErrorReport(result models.FlagImportResult, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Import Errors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Flag Template Import Error Report")
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", result.ImportTime.Format("2006-01-02 15:04:05")))
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Rows: %d, Kode Akun: %d, Flags: %d, Errors: %d",
		result.TotalRows, result.KodeAkunCount, result.FlagCount, len(result.ValidationErrors)))

	headers := []string{"Row", "Field", "Value", "Error Message"}
	for i, header := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", getColumnName(i)), header)
	}
	errorHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DC3545"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A5", "D5", errorHeaderStyle)

	for i, verr := range result.ValidationErrors {
		row := i + 6
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), verr.Row)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), verr.Field)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), verr.Value)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), verr.Message)
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 25)
	f.SetColWidth(sheetName, "D", "D", 45)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(outputPath)
}
