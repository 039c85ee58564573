package repository

import (
	"berkas-tanah-backend/internal/model"

	"gorm.io/gorm"
)

// BerkasRepository menulis berkas dan entri riwayatnya dalam satu transaksi,
// supaya tidak pernah ada perubahan status tanpa jejak riwayat (atau
// sebaliknya riwayat yatim tanpa perubahan).
type BerkasRepository interface {
	CreateWithRiwayat(berkas *model.Berkas, riwayat *model.RiwayatBerkas) error
	GetByID(id uint) (*model.Berkas, error)
	List(limit int) ([]model.Berkas, error)
	ListAll() ([]model.Berkas, error)
	UpdateWithRiwayat(berkas *model.Berkas, riwayat *model.RiwayatBerkas) error
	DeleteWithRiwayat(berkas *model.Berkas, riwayat *model.RiwayatBerkas) error
}

type berkasRepository struct {
	db *gorm.DB
}

func NewBerkasRepository(db *gorm.DB) BerkasRepository {
	return &berkasRepository{db}
}

func (r *berkasRepository) CreateWithRiwayat(berkas *model.Berkas, riwayat *model.RiwayatBerkas) error {
	return withRetry(func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(berkas).Error; err != nil {
				return err
			}
			riwayat.BerkasID = berkas.ID
			return tx.Create(riwayat).Error
		})
	})
}

func (r *berkasRepository) GetByID(id uint) (*model.Berkas, error) {
	var berkas model.Berkas
	err := withRetry(func() error {
		return r.db.First(&berkas, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &berkas, nil
}

func (r *berkasRepository) List(limit int) ([]model.Berkas, error) {
	var list []model.Berkas
	err := withRetry(func() error {
		return r.db.Order("created_at desc").Limit(limit).Find(&list).Error
	})
	return list, err
}

// ListAll mengambil seluruh berkas tanpa batas baris. Hanya dipakai
// perhitungan statistik, jangan dipakai untuk listing ke klien.
func (r *berkasRepository) ListAll() ([]model.Berkas, error) {
	var list []model.Berkas
	err := withRetry(func() error {
		return r.db.Order("created_at desc").Find(&list).Error
	})
	return list, err
}

func (r *berkasRepository) UpdateWithRiwayat(berkas *model.Berkas, riwayat *model.RiwayatBerkas) error {
	return withRetry(func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(berkas).Error; err != nil {
				return err
			}
			riwayat.BerkasID = berkas.ID
			return tx.Create(riwayat).Error
		})
	})
}

func (r *berkasRepository) DeleteWithRiwayat(berkas *model.Berkas, riwayat *model.RiwayatBerkas) error {
	return withRetry(func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			riwayat.BerkasID = berkas.ID
			if err := tx.Create(riwayat).Error; err != nil {
				return err
			}
			return tx.Delete(berkas).Error
		})
	})
}
