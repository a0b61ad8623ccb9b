package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	streakController "belajarku_backend/internals/features/progress/streaks/controller"
)

// StreakRoutes dipasang di bawah grup yang sudah ber-AuthMiddleware.
func StreakRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := streakController.NewStreakController(db)

	streaks := api.Group("/streaks")
	streaks.Get("/me", ctrl.GetMyStreak)
}
