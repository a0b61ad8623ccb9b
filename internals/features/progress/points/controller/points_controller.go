package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/progress/points/service"
	helper "belajarku_backend/internals/helpers"
)

type PointsController struct {
	DB *gorm.DB
}

func NewPointsController(db *gorm.DB) *PointsController {
	return &PointsController{DB: db}
}

// GET /api/points/me
func (pc *PointsController) GetMyPoints(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	points, err := service.GetByUser(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data poin")
	}
	return helper.Success(c, "", points)
}
