package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/achievements/service"
	helper "belajarku_backend/internals/helpers"
)

type AchievementController struct {
	DB *gorm.DB
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{DB: db}
}

// GET /api/achievements
func (ac *AchievementController) GetAllAchievements(c *fiber.Ctx) error {
	rows, err := service.FindAll(ac.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar achievement")
	}
	return helper.Success(c, "", rows)
}

// GET /api/achievements/my-achievements
func (ac *AchievementController) GetMyAchievements(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := service.FindByUser(ac.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil achievement")
	}
	return helper.Success(c, "", rows)
}
