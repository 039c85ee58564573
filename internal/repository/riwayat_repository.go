package repository

import (
	"time"

	"berkas-tanah-backend/internal/model"

	"gorm.io/gorm"
)

// RiwayatRepository hanya punya operasi tulis-tambah dan baca.
// Entri riwayat tidak pernah diubah atau dihapus.
type RiwayatRepository interface {
	ListByBerkasID(berkasID uint) ([]model.RiwayatBerkas, error)
	LastTimestamps(berkasIDs []uint) (map[uint]time.Time, error)
}

type riwayatRepository struct {
	db *gorm.DB
}

func NewRiwayatRepository(db *gorm.DB) RiwayatRepository {
	return &riwayatRepository{db}
}

func (r *riwayatRepository) ListByBerkasID(berkasID uint) ([]model.RiwayatBerkas, error) {
	var list []model.RiwayatBerkas
	err := withRetry(func() error {
		return r.db.Where("berkas_id = ?", berkasID).Order("created_at asc").Find(&list).Error
	})
	return list, err
}

// LastTimestamps mengambil waktu riwayat terakhir untuk banyak berkas
// sekaligus, dipakai perhitungan tunggakan di listing dan dashboard.
func (r *riwayatRepository) LastTimestamps(berkasIDs []uint) (map[uint]time.Time, error) {
	result := make(map[uint]time.Time)
	if len(berkasIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		BerkasID uint
		LastAt   time.Time
	}
	err := withRetry(func() error {
		return r.db.Model(&model.RiwayatBerkas{}).
			Select("berkas_id, MAX(created_at) as last_at").
			Where("berkas_id IN ?", berkasIDs).
			Group("berkas_id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.BerkasID] = row.LastAt
	}
	return result, nil
}
