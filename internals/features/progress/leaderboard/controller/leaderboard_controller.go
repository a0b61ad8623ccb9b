package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/progress/leaderboard/service"
	helper "belajarku_backend/internals/helpers"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

// GET /api/leaderboard?type=total|weekly|monthly&limit=
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	resp, err := service.GetLeaderboard(lc.DB, c.Query("type", "total"), limit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}
	return helper.Success(c, "", resp)
}

// GET /api/leaderboard/my-rank?type=
func (lc *LeaderboardController) GetMyRank(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	resp, err := service.GetMyRank(lc.DB, userID, c.Query("type", "total"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil peringkat")
	}
	return helper.Success(c, "", resp)
}
