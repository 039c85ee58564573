package model

import "gorm.io/gorm"

// RiwayatBerkas adalah jurnal perjalanan berkas. Append-only: tidak ada
// operasi update/delete, entri lama tidak pernah diubah.
type RiwayatBerkas struct {
	gorm.Model
	BerkasID   uint   `json:"berkasId" gorm:"index;not null"`
	StatusLama string `json:"statusLama"`
	StatusBaru string `json:"statusBaru"`
	Diterima   string `json:"diterima"`
	Diteruskan string `json:"diteruskan"`
	Catatan    string `json:"catatan"`
}
