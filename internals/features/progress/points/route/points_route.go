package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointsController "belajarku_backend/internals/features/progress/points/controller"
)

// PointsRoutes dipasang di bawah grup yang sudah ber-AuthMiddleware.
func PointsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := pointsController.NewPointsController(db)

	points := api.Group("/points")
	points.Get("/me", ctrl.GetMyPoints)
}
