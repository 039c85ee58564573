package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"not null"`
	Aktif    bool   `json:"aktif" gorm:"default:true"` // user nonaktif ditolak di autentikasi, terlepas dari role
}
