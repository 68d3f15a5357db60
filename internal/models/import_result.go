package models

import "time"

// FlagValidationError represents a rejected row of a flag template CSV
type FlagValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// FlagImportResult represents the result of seeding kode akun and flags from a template
type FlagImportResult struct {
	TotalRows        int                   `json:"total_rows"`
	KodeAkunCount    int                   `json:"kode_akun_count"`
	FlagCount        int                   `json:"flag_count"`
	ValidationErrors []FlagValidationError `json:"validation_errors"`
	ImportTime       time.Time             `json:"import_time"`
}

// FlagTemplateEntry is one kode akun row of a flag template with the flags it requires.
type FlagTemplateEntry struct {
	Row   int
	Kode  string
	Nama  string
	Flags []Flag
}

// FlagTemplate is a parsed flag template. Entries only holds rows that passed validation.
type FlagTemplate struct {
	Entries []FlagTemplateEntry
	Result  FlagImportResult
}
