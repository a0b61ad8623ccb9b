package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/progress/streaks/service"
	helper "belajarku_backend/internals/helpers"
)

type StreakController struct {
	DB *gorm.DB
}

func NewStreakController(db *gorm.DB) *StreakController {
	return &StreakController{DB: db}
}

// GET /api/streaks/me
func (sc *StreakController) GetMyStreak(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	streak, err := service.GetByUser(sc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data streak")
	}
	return helper.Success(c, "", streak)
}
