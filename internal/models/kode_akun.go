package models

// KodeAkun is a budget account code. The (kode, nama) pair is unique.
type KodeAkun struct {
	ID   int    `db:"id" json:"id"`
	Kode string `db:"kode" json:"kode"`
	Nama string `db:"nama" json:"nama"`
}

// Flag is a supporting document required for every rincian booked on a KodeAkun.
type Flag struct {
	ID         int    `db:"id" json:"id"`
	Nama       string `db:"nama" json:"nama"`
	Tipe       string `db:"tipe" json:"tipe"` // declared type, informational only
	KodeAkunID int    `db:"kode_akun_id" json:"kode_akun_id"`
}

type FlagRequest struct {
	Nama       string `json:"nama"`
	Tipe       string `json:"tipe"`
	KodeAkunID int    `json:"kode_akun_id"`
}
