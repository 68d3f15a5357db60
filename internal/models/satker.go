package models

type Satker struct {
	ID         int    `db:"id" json:"id"`
	KodeSatker string `db:"kode_satker" json:"kode_satker"`
	Nama       string `db:"nama" json:"nama"`
	Eselon     string `db:"eselon" json:"eselon"`
}
