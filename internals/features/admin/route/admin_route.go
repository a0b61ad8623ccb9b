package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	adminController "belajarku_backend/internals/features/admin/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// AdminRoutes mendaftarkan endpoint CRUD konten, hanya untuk role admin.
// Grup api yang diterima sudah melewati AuthMiddleware.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admin := api.Group("/admin", authMiddleware.RequireRoles(constants.RoleAdmin))

	admin.Post("/achievements", ctrl.CreateAchievement)
	admin.Put("/achievements/:id", ctrl.UpdateAchievement)
	admin.Delete("/achievements/:id", ctrl.DeleteAchievement)

	admin.Post("/subjects", ctrl.CreateSubject)
	admin.Put("/subjects/:id", ctrl.UpdateSubject)
	admin.Delete("/subjects/:id", ctrl.DeleteSubject)

	admin.Post("/levels", ctrl.CreateLevel)
	admin.Put("/levels/:id", ctrl.UpdateLevel)
	admin.Delete("/levels/:id", ctrl.DeleteLevel)

	admin.Post("/questions", ctrl.CreateQuestion)
	admin.Put("/questions/:id", ctrl.UpdateQuestion)
	admin.Delete("/questions/:id", ctrl.DeleteQuestion)

	admin.Post("/materials", ctrl.CreateMaterial)
	admin.Put("/materials/:id", ctrl.UpdateMaterial)
	admin.Delete("/materials/:id", ctrl.DeleteMaterial)
}
