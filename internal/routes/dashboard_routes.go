package routes

import (
	"berkas-tanah-backend/internal/handler"
	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewBerkasRepository(db)
	riwayatRepo := repository.NewRiwayatRepository(db)
	userRepo := repository.NewUserRepository(db)

	hdl := handler.NewDashboardHandler(repo, riwayatRepo)

	api := app.Group("/api/dashboard", middleware.Auth(userRepo))
	api.Get("/stats", middleware.Permission(rbac.ActionView), hdl.GetStats)
}
