package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/progress/progress/dto"
	"belajarku_backend/internals/features/progress/progress/service"
	helper "belajarku_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

func levelIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("levelId")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID level tidak valid")
	}
	return uint(id), nil
}

// POST /api/progress/levels/:levelId/start
func (pc *ProgressController) StartLevel(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	levelID, err := levelIDParam(c)
	if err != nil {
		return err
	}

	row, created, err := service.StartLevel(pc.DB, userID, levelID)
	if err != nil {
		return err
	}
	if !created {
		return helper.Success(c, "Level sudah dimulai", row)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Level berhasil dimulai", row)
}

// GET /api/progress/levels/:levelId
func (pc *ProgressController) GetLevelProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	levelID, err := levelIDParam(c)
	if err != nil {
		return err
	}

	row, err := service.GetProgress(pc.DB, userID, levelID)
	if err != nil {
		return err
	}
	return helper.Success(c, "", row)
}

// PUT /api/progress/levels/:levelId
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	levelID, err := levelIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	row, err := service.UpdateProgress(pc.DB, userID, levelID, &req)
	if err != nil {
		return err
	}
	return helper.Success(c, "Progress berhasil diperbarui", row)
}

// POST /api/progress/levels/:levelId/complete
func (pc *ProgressController) CompleteLevel(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	levelID, err := levelIDParam(c)
	if err != nil {
		return err
	}

	resp, err := service.CompleteLevel(pc.DB, userID, levelID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Level berhasil diselesaikan", resp)
}

// GET /api/progress/my-progress?status=
func (pc *ProgressController) GetMyProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := service.GetMyProgress(pc.DB, userID, c.Query("status"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil progress")
	}
	return helper.Success(c, "", rows)
}

// GET /api/progress/stats
func (pc *ProgressController) GetProgressStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	stats, err := service.GetProgressStats(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik progress")
	}
	return helper.Success(c, "", stats)
}

// GET /api/progress/journey-map/:subjectLevelId
func (pc *ProgressController) GetJourneyMap(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	subjectLevelID, err := c.ParamsInt("subjectLevelId")
	if err != nil || subjectLevelID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID subject level tidak valid")
	}

	entries, err := service.GetJourneyMap(pc.DB, userID, uint(subjectLevelID))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membangun journey map")
	}
	return helper.Success(c, "", entries)
}
