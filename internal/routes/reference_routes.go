package routes

import (
	"berkas-tanah-backend/internal/handler"
	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReferenceRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewReferenceHandler()

	api := app.Group("/api/reference", middleware.Auth(userRepo))
	api.Get("/jenis-permohonan", hdl.GetJenisPermohonan)
	api.Get("/kecamatan", hdl.GetKecamatan)
	api.Get("/desa", hdl.GetDesa)
}
