package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/admin/dto"
	"belajarku_backend/internals/features/learning/catalog/model"
	helper "belajarku_backend/internals/helpers"
)

/* ===== Materials ===== */

// POST /api/admin/materials
func (ac *AdminController) CreateMaterial(c *fiber.Ctx) error {
	var req dto.MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if req.LevelID == nil || *req.LevelID == 0 {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "level_id", Message: "Level wajib diisi", Code: "LEVEL_ID_REQUIRED"},
		})
	}
	if !validJSON(req.Content) {
		return helper.Error(c, fiber.StatusBadRequest, "Content harus JSON valid")
	}

	var level model.LevelModel
	if err := ac.DB.First(&level, "id = ?", *req.LevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca level")
	}

	material := model.MaterialModel{
		LevelID: *req.LevelID,
		Content: datatypes.JSON(req.Content),
	}
	if req.OrderIndex != nil {
		material.OrderIndex = *req.OrderIndex
	}

	if err := ac.DB.Create(&material).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat materi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materi dibuat", material)
}

// PUT /api/admin/materials/:id
func (ac *AdminController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var material model.MaterialModel
	if err := ac.DB.First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca materi")
	}

	var req dto.MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if req.LevelID != nil && *req.LevelID != 0 {
		material.LevelID = *req.LevelID
	}
	if len(req.Content) > 0 {
		if !validJSON(req.Content) {
			return helper.Error(c, fiber.StatusBadRequest, "Content harus JSON valid")
		}
		material.Content = datatypes.JSON(req.Content)
	}
	if req.OrderIndex != nil {
		material.OrderIndex = *req.OrderIndex
	}

	if err := ac.DB.Save(&material).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui materi")
	}
	return helper.Success(c, "Materi diperbarui", material)
}

// DELETE /api/admin/materials/:id
func (ac *AdminController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ac.DB.Delete(&model.MaterialModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	return helper.Success(c, "Materi dihapus", nil)
}
