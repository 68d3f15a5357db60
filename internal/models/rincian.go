package models

import (
	"strings"
	"time"
)

// AnswerKind is the recorded answer for a required flag on a rincian.
type AnswerKind string

const (
	AnswerYes              AnswerKind = "YES"
	AnswerNo               AnswerKind = "NO"
	AnswerYesStrikethrough AnswerKind = "YES_STRIKETHROUGH" // document validly absent
	AnswerIncomplete       AnswerKind = "INCOMPLETE"
)

// ParseAnswerKind accepts the canonical names plus the IYA/TIDAK/IYA_TIDAK
// spellings used by older clients.
func ParseAnswerKind(s string) (AnswerKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES", "IYA":
		return AnswerYes, true
	case "NO", "TIDAK":
		return AnswerNo, true
	case "YES_STRIKETHROUGH", "IYA_TIDAK":
		return AnswerYesStrikethrough, true
	case "INCOMPLETE", "BELUM_LENGKAP":
		return AnswerIncomplete, true
	}
	return "", false
}

type JawabanFlag struct {
	ID           int        `db:"id" json:"id"`
	RincianSpmID int        `db:"rincian_spm_id" json:"rincian_spm_id"`
	Nama         string     `db:"nama" json:"nama"`
	Tipe         AnswerKind `db:"tipe" json:"tipe"`
}

// Rincian is one budget line of an Spm.
type Rincian struct {
	ID              int    `db:"id" json:"id"`
	SpmID           int    `db:"spm_id" json:"spm_id"`
	KodeAkunID      int    `db:"kode_akun_id" json:"kode_akun_id"`
	KodeProgram     string `db:"kode_program" json:"kode_program"`
	KodeKegiatan    string `db:"kode_kegiatan" json:"kode_kegiatan"`
	KodeKRO         string `db:"kode_kro" json:"kode_kro"`
	KodeRO          string `db:"kode_ro" json:"kode_ro"`
	KodeKomponen    string `db:"kode_komponen" json:"kode_komponen"`
	KodeSubkomponen string `db:"kode_subkomponen" json:"kode_subkomponen"`
	Jumlah          int64  `db:"jumlah" json:"jumlah"`
	Uraian          string `db:"uraian" json:"uraian"`

	KodeAkun              *KodeAkun     `db:"-" json:"kode_akun,omitempty"`
	JawabanFlags          []JawabanFlag `db:"-" json:"jawaban_flags"`
	PersentaseKelengkapan int           `db:"-" json:"persentase_kelengkapan"`
}

// RincianDetail is a rincian joined with its account code and parent SPM.
type RincianDetail struct {
	Rincian
	KodeAkunKode  string    `db:"kode_akun_kode" json:"kode_akun_kode"`
	KodeAkunNama  string    `db:"kode_akun_nama" json:"kode_akun_nama"`
	NomorSpm      string    `db:"nomor_spm" json:"nomor_spm"`
	TahunAnggaran int       `db:"tahun_anggaran" json:"tahun_anggaran"`
	SpmTanggal    time.Time `db:"spm_tanggal" json:"spm_tanggal"`
	SpmStatus     SpmStatus `db:"spm_status" json:"spm_status"`
	SatkerID      int       `db:"satker_id" json:"satker_id"`
	SatkerNama    string    `db:"satker_nama" json:"satker_nama"`
}

type RincianRequest struct {
	ID              int                  `json:"id"`
	KodeAkunID      int                  `json:"kode_akun_id"`
	KodeProgram     string               `json:"kode_program"`
	KodeKegiatan    string               `json:"kode_kegiatan"`
	KodeKRO         string               `json:"kode_kro"`
	KodeRO          string               `json:"kode_ro"`
	KodeKomponen    string               `json:"kode_komponen"`
	KodeSubkomponen string               `json:"kode_subkomponen"`
	Jumlah          int64                `json:"jumlah"`
	Uraian          string               `json:"uraian"`
	JawabanFlags    []JawabanFlagRequest `json:"jawaban_flags"`
}

type JawabanFlagRequest struct {
	Nama string `json:"nama"`
	Tipe string `json:"tipe"`
}

// WithKodeAkun returns the embedded rincian with its KodeAkun populated.
func (d RincianDetail) WithKodeAkun() Rincian {
	r := d.Rincian
	r.KodeAkun = &KodeAkun{ID: d.KodeAkunID, Kode: d.KodeAkunKode, Nama: d.KodeAkunNama}
	return r
}

type RincianFilter struct {
	SatkerID      int
	TahunAnggaran int
}
