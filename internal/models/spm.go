package models

import (
	"strings"
	"time"
)

type SpmStatus string

const (
	SpmStatusPending  SpmStatus = "PENDING"
	SpmStatusAccepted SpmStatus = "ACCEPTED"
	SpmStatusRejected SpmStatus = "REJECTED"
)

// ParseSpmStatus accepts the English status names and the legacy
// MENUNGGU/DITERIMA/DITOLAK values.
func ParseSpmStatus(s string) (SpmStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING", "MENUNGGU":
		return SpmStatusPending, true
	case "ACCEPTED", "DITERIMA":
		return SpmStatusAccepted, true
	case "REJECTED", "DITOLAK":
		return SpmStatusRejected, true
	}
	return "", false
}

// Spm is a payment order (surat perintah membayar) grouping one or more rincian.
type Spm struct {
	ID               int       `db:"id" json:"id"`
	NomorSpm         string    `db:"nomor_spm" json:"nomor_spm"`
	TahunAnggaran    int       `db:"tahun_anggaran" json:"tahun_anggaran"`
	Tanggal          time.Time `db:"tanggal" json:"tanggal"`
	TotalAnggaran    int64     `db:"total_anggaran" json:"total_anggaran"`
	Status           SpmStatus `db:"status" json:"status"`
	RejectionComment *string   `db:"rejection_comment" json:"rejection_comment"`
	DriveLink        *string   `db:"drive_link" json:"drive_link"`
	SatkerID         int       `db:"satker_id" json:"satker_id"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// SpmListItem is an Spm row as returned by the list endpoint.
type SpmListItem struct {
	Spm
	SatkerNama             string `db:"satker_nama" json:"satker_nama"`
	RincianCount           int    `db:"-" json:"rincian_count"`
	CompletenessPercentage int    `db:"-" json:"completeness_percentage"`
}

// SpmDetail is an Spm with its satker and fully loaded rincian.
type SpmDetail struct {
	Spm
	Satker  *Satker   `json:"satker"`
	Rincian []Rincian `json:"rincian"`
}

type SpmFilter struct {
	TahunAnggaran int
	SatkerID      int
	Page          int
	Limit         int // 0 disables pagination
}

type SpmRequest struct {
	NomorSpm      string           `json:"nomor_spm"`
	TahunAnggaran int              `json:"tahun_anggaran"`
	Tanggal       string           `json:"tanggal"`
	SatkerID      int              `json:"satker_id"`
	DriveLink     *string          `json:"drive_link"`
	Rincian       []RincianRequest `json:"rincian"`
}

type SpmStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}
