package routes

import (
	"berkas-tanah-backend/internal/handler"
	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/notifier"
	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBerkasRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewBerkasRepository(db)
	riwayatRepo := repository.NewRiwayatRepository(db)
	userRepo := repository.NewUserRepository(db)

	hdl := handler.NewBerkasHandler(repo, riwayatRepo)
	stageHdl := handler.NewStageHandler(repo, notifier.NewMailNotifier())
	reportHdl := handler.NewReportHandler(repo, riwayatRepo)

	api := app.Group("/api/berkas", middleware.Auth(userRepo))

	api.Get("/", middleware.Permission(rbac.ActionView), hdl.List)
	api.Post("/", middleware.Permission(rbac.ActionCreate), hdl.Create)
	api.Get("/:id", middleware.Permission(rbac.ActionView), hdl.Detail)
	api.Put("/:id", middleware.Permission(rbac.ActionEdit), hdl.Edit)
	api.Delete("/:id", middleware.Permission(rbac.ActionDelete), hdl.Delete)

	api.Post("/:id/move-stage", middleware.Permission(rbac.ActionMoveStage), stageHdl.MoveStage)
	api.Post("/:id/qc", middleware.Role(rbac.RoleAdmin, rbac.RoleQualityControl), stageHdl.SubmitQC)
	api.Get("/:id/print", middleware.Permission(rbac.ActionPrint), reportHdl.PrintBerkas)
}
