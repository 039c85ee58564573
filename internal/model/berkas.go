package model

import (
	"time"

	"gorm.io/gorm"
)

// Berkas adalah entitas utama: satu permohonan ukur tanah yang berjalan
// melewati tahapan DATA_BERKAS -> DATA_UKUR -> PEMETAAN -> KKS -> KASI -> SELESAI.
// JSON tag mengikuti nama field yang dipakai frontend (camelCase).
type Berkas struct {
	gorm.Model
	StatusBerkas string `json:"statusBerkas" gorm:"default:DATA_BERKAS;index"`

	// Section DATA_BERKAS
	NoBerkas        string  `json:"noBerkas" gorm:"unique;not null"`
	DI302           string  `json:"di302"`
	Tanggal302      string  `json:"tanggal302"`
	NamaPemohon     string  `json:"namaPemohon" gorm:"not null"`
	JenisPermohonan string  `json:"jenisPermohonan" gorm:"not null"`
	StatusTanah     string  `json:"statusTanah"`
	KeadaanTanah    string  `json:"keadaanTanah"`
	Kecamatan       string  `json:"kecamatan"`
	Desa            string  `json:"desa"`
	Luas            string  `json:"luas"`
	Luas302         string  `json:"luas302"`
	LuasSU          string  `json:"luasSU" gorm:"column:luas_su"`
	No305           string  `json:"no305"`
	NIB             string  `json:"nib" gorm:"column:nib"`
	Notaris         string  `json:"notaris"`
	BiayaUkur       float64 `json:"biayaUkur"`
	TanggalBerkas   string  `json:"tanggalBerkas"`
	Keterangan      string  `json:"keterangan"`

	// Section DATA_UKUR
	KoordinatorUkur      string `json:"koordinatorUkur"`
	NIP                  string `json:"nip" gorm:"column:nip"`
	SuratTugasAn         string `json:"suratTugasAn"`
	PetugasUkur          string `json:"petugasUkur"`
	NoGU                 string `json:"noGu" gorm:"column:no_gu"`
	NoStpPersiapuanUkur  string `json:"noStpPersiapuanUkur"`
	TanggalStpPersiapuan string `json:"tanggalStpPersiapuan"`
	NoStp                string `json:"noStp"`
	TanggalStp           string `json:"tanggalStp"`
	PosisiBerkasUkur     string `json:"posisiBerkasUkur"`

	// Section DATA_PEMETAAN
	PetugasPemetaan    string `json:"petugasPemetaan"`
	PosisiBerkasMetaan string `json:"posisiBerkasMetaan"`
	KeteranganPemetaan string `json:"keteranganPemetaan"`

	// Hasil QC per gerbang. Last-write-wins: keputusan baru menimpa yang lama,
	// riwayat lengkapnya ada di RiwayatBerkas.
	QcKksStatus      string     `json:"qcKksStatus"`
	QcKksKeterangan  string     `json:"qcKksKeterangan"`
	QcKksOleh        string     `json:"qcKksOleh"`
	QcKksTanggal     *time.Time `json:"qcKksTanggal"`
	QcKasiStatus     string     `json:"qcKasiStatus"`
	QcKasiKeterangan string     `json:"qcKasiKeterangan"`
	QcKasiOleh       string     `json:"qcKasiOleh"`
	QcKasiTanggal    *time.Time `json:"qcKasiTanggal"`
}
