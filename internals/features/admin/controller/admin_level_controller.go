package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/admin/dto"
	"belajarku_backend/internals/features/learning/catalog/model"
	helper "belajarku_backend/internals/helpers"
)

/* ===== Levels ===== */

// POST /api/admin/levels
func (ac *AdminController) CreateLevel(c *fiber.Ctx) error {
	var req dto.LevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if req.SubjectLevelID == nil || *req.SubjectLevelID == 0 {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "subject_level_id", Message: "Subject level wajib diisi", Code: "SUBJECT_LEVEL_ID_REQUIRED"},
		})
	}
	if req.Title == nil || *req.Title == "" {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "title", Message: "Title wajib diisi", Code: "TITLE_REQUIRED"},
		})
	}

	var subjectLevel model.SubjectLevelModel
	if err := ac.DB.First(&subjectLevel, "id = ?", *req.SubjectLevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject level tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca subject level")
	}

	level := model.LevelModel{
		SubjectLevelID: *req.SubjectLevelID,
		Title:          *req.Title,
	}
	if req.LevelIndex != nil {
		level.LevelIndex = *req.LevelIndex
	} else {
		// Tanpa level_index, taruh di ujung urutan yang ada.
		var maxIndex *int
		ac.DB.Model(&model.LevelModel{}).
			Where("subject_level_id = ?", *req.SubjectLevelID).
			Select("MAX(level_index)").
			Scan(&maxIndex)
		if maxIndex != nil {
			level.LevelIndex = *maxIndex + 1
		}
	}
	if req.Description != nil {
		level.Description = *req.Description
	}
	if req.PointsReward != nil {
		level.PointsReward = *req.PointsReward
	}
	if req.EstimatedMinutes != nil {
		level.EstimatedMinutes = *req.EstimatedMinutes
	}

	if err := ac.DB.Create(&level).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat level")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Level dibuat", level)
}

// PUT /api/admin/levels/:id
func (ac *AdminController) UpdateLevel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var level model.LevelModel
	if err := ac.DB.First(&level, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca level")
	}

	var req dto.LevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if req.SubjectLevelID != nil && *req.SubjectLevelID != 0 {
		level.SubjectLevelID = *req.SubjectLevelID
	}
	if req.LevelIndex != nil {
		level.LevelIndex = *req.LevelIndex
	}
	if req.Title != nil && *req.Title != "" {
		level.Title = *req.Title
	}
	if req.Description != nil {
		level.Description = *req.Description
	}
	if req.PointsReward != nil {
		level.PointsReward = *req.PointsReward
	}
	if req.EstimatedMinutes != nil {
		level.EstimatedMinutes = *req.EstimatedMinutes
	}

	if err := ac.DB.Save(&level).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui level")
	}
	return helper.Success(c, "Level diperbarui", level)
}

// DELETE /api/admin/levels/:id
func (ac *AdminController) DeleteLevel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ac.DB.Delete(&model.LevelModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus level")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Level tidak ditemukan")
	}
	return helper.Success(c, "Level dihapus", nil)
}
