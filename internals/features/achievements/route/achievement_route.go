package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementController "belajarku_backend/internals/features/achievements/controller"
)

// AchievementRoutes mendaftarkan endpoint /achievements (grup sudah ber-auth).
func AchievementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := achievementController.NewAchievementController(db)

	ach := api.Group("/achievements")
	ach.Get("/", ctrl.GetAllAchievements)
	ach.Get("/my-achievements", ctrl.GetMyAchievements)
}
