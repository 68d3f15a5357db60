package models

type ComparisonStatus string

const (
	ComparisonMatch    ComparisonStatus = "MATCH"
	ComparisonMismatch ComparisonStatus = "MISMATCH"
	ComparisonNotFound ComparisonStatus = "NOT_FOUND"
)

// ComparisonResult is one local rincian checked against the SAKTI ledger.
type ComparisonResult struct {
	SpmNomor        string           `json:"spm_nomor"`
	KodeAkun        string           `json:"kode_akun"`
	KodeAkunNama    string           `json:"kode_akun_nama"`
	RincianUraian   string           `json:"rincian_uraian"`
	KodeProgram     string           `json:"kode_program"`
	KodeKegiatan    string           `json:"kode_kegiatan"`
	KodeKRO         string           `json:"kode_kro"`
	KodeRO          string           `json:"kode_ro"`
	KodeKomponen    string           `json:"kode_komponen"`
	KodeSubkomponen string           `json:"kode_subkomponen"`
	AppAmount       int64            `json:"app_amount"`
	SaktiAmount     *int64           `json:"sakti_amount"`
	Difference      *int64           `json:"difference"`
	Status          ComparisonStatus `json:"status"`
}

// SatkerPerformance summarises one satker's SPMs for a budget year.
type SatkerPerformance struct {
	ID                  int     `json:"id"`
	Nama                string  `json:"nama"`
	TotalSpm            int     `json:"total_spm"`
	TotalDitolak        int     `json:"total_ditolak"`
	RejectionRate       float64 `json:"rejection_rate"`
	AverageCompleteness float64 `json:"average_completeness"`
}

// ReconcileJob tracks an asynchronous SAKTI validation.
type ReconcileJob struct {
	ID            string             `json:"id"`
	Status        string             `json:"status"` // queued, completed, failed
	TahunAnggaran int                `json:"tahun_anggaran"`
	SatkerID      int                `json:"satker_id"`
	Error         string             `json:"error,omitempty"`
	Results       []ComparisonResult `json:"results,omitempty"`
}
