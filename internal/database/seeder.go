package database

import (
	"log"

	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll membuat satu user uji untuk setiap role. Password seluruh akun
// uji: "password".
func SeedAll(db *gorm.DB) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	users := []model.User{
		{Name: "Admin User", Email: "admin@example.com", Role: string(rbac.RoleAdmin)},
		{Name: "Data Berkas Officer", Email: "berkas@example.com", Role: string(rbac.RoleDataBerkas)},
		{Name: "Data Ukur Officer", Email: "ukur@example.com", Role: string(rbac.RoleDataUkur)},
		{Name: "Data Pemetaan Officer", Email: "pemetaan@example.com", Role: string(rbac.RoleDataPemetaan)},
		{Name: "Quality Control Officer", Email: "qc@example.com", Role: string(rbac.RoleQualityControl)},
	}

	for _, u := range users {
		u.Password = string(hashedPassword)
		u.Aktif = true
		result := db.FirstOrCreate(&u, model.User{Email: u.Email})
		if result.Error != nil {
			log.Printf("Gagal seeding user %s: %v", u.Email, result.Error)
			continue
		}
		log.Printf("User siap: %s (%s)", u.Email, u.Role)
	}
}
