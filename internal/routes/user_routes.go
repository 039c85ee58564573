package routes

import (
	"berkas-tanah-backend/internal/handler"
	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewUserHandler(uc, repo)

	auth := app.Group("/api/auth")
	auth.Post("/login", hdl.Login)
	auth.Get("/session", middleware.Auth(repo), hdl.Session)

	// Manajemen user khusus ADMIN.
	admin := app.Group("/api/petugas/users", middleware.Auth(repo), middleware.Role(rbac.RoleAdmin))
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
}
