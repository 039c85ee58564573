package repository

import (
	"berkas-tanah-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	List() ([]model.User, error)
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return withRetry(func() error {
		return r.db.Create(user).Error
	})
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := withRetry(func() error {
		return r.db.First(&user, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := withRetry(func() error {
		return r.db.Where("email = ?", email).First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List() ([]model.User, error) {
	var users []model.User
	err := withRetry(func() error {
		return r.db.Order("created_at desc").Find(&users).Error
	})
	return users, err
}

func (r *userRepository) Update(user *model.User) error {
	return withRetry(func() error {
		return r.db.Save(user).Error
	})
}
