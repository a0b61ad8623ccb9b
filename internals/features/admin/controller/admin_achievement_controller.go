package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/achievements/model"
	"belajarku_backend/internals/features/admin/dto"
	helper "belajarku_backend/internals/helpers"
)

/* ===== Achievements ===== */

// POST /api/admin/achievements
func (ac *AdminController) CreateAchievement(c *fiber.Ctx) error {
	var req dto.AchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if req.Code == nil || *req.Code == "" || req.Title == nil || *req.Title == "" {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "code", Message: "Code dan title wajib diisi", Code: "CODE_TITLE_REQUIRED"},
		})
	}

	var existing model.AchievementModel
	err := ac.DB.Where("code = ?", *req.Code).First(&existing).Error
	if err == nil {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "code", Message: "Code sudah dipakai achievement lain", Code: "CODE_EXISTS"},
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa code")
	}

	achievement := model.AchievementModel{
		Code:        *req.Code,
		Title:       *req.Title,
		Description: req.Description,
		IconURL:     req.IconURL,
	}
	if req.PointsReward != nil {
		achievement.PointsReward = *req.PointsReward
	}
	if len(req.Criteria) > 0 {
		if !validJSON(req.Criteria) {
			return helper.Error(c, fiber.StatusBadRequest, "Criteria harus JSON valid")
		}
		achievement.Criteria = datatypes.JSON(req.Criteria)
	}

	if err := ac.DB.Create(&achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
				{Field: "code", Message: "Code sudah dipakai achievement lain", Code: "CODE_EXISTS"},
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat achievement")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Achievement dibuat", achievement)
}

// PUT /api/admin/achievements/:id
func (ac *AdminController) UpdateAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var achievement model.AchievementModel
	if err := ac.DB.First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Achievement tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca achievement")
	}

	var req dto.AchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if req.Code != nil && *req.Code != achievement.Code {
		var count int64
		ac.DB.Model(&model.AchievementModel{}).
			Where("code = ? AND id <> ?", *req.Code, achievement.ID).
			Count(&count)
		if count > 0 {
			return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
				{Field: "code", Message: "Code sudah dipakai achievement lain", Code: "CODE_EXISTS"},
			})
		}
		achievement.Code = *req.Code
	}
	if req.Title != nil {
		achievement.Title = *req.Title
	}
	if req.Description != nil {
		achievement.Description = req.Description
	}
	if req.IconURL != nil {
		achievement.IconURL = req.IconURL
	}
	if req.PointsReward != nil {
		achievement.PointsReward = *req.PointsReward
	}
	if len(req.Criteria) > 0 {
		if !validJSON(req.Criteria) {
			return helper.Error(c, fiber.StatusBadRequest, "Criteria harus JSON valid")
		}
		achievement.Criteria = datatypes.JSON(req.Criteria)
	}

	if err := ac.DB.Save(&achievement).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui achievement")
	}
	return helper.Success(c, "Achievement diperbarui", achievement)
}

// DELETE /api/admin/achievements/:id
func (ac *AdminController) DeleteAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ac.DB.Delete(&model.AchievementModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus achievement")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Achievement tidak ditemukan")
	}
	return helper.Success(c, "Achievement dihapus", nil)
}
