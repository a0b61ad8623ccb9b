package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaderboardController "belajarku_backend/internals/features/progress/leaderboard/controller"
)

// LeaderboardRoutes mendaftarkan endpoint /leaderboard (grup sudah ber-auth).
func LeaderboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := leaderboardController.NewLeaderboardController(db)

	lb := api.Group("/leaderboard")
	lb.Get("/", ctrl.GetLeaderboard)
	lb.Get("/my-rank", ctrl.GetMyRank)
}
