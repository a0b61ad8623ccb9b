package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/admin/dto"
	"belajarku_backend/internals/features/learning/catalog/model"
	helper "belajarku_backend/internals/helpers"
)

/* ===== Subjects ===== */

// POST /api/admin/subjects
func (ac *AdminController) CreateSubject(c *fiber.Ctx) error {
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if req.Title == nil || *req.Title == "" {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "title", Message: "Title wajib diisi", Code: "TITLE_REQUIRED"},
		})
	}

	if req.Code != nil && *req.Code != "" {
		var count int64
		ac.DB.Model(&model.SubjectModel{}).Where("code = ?", *req.Code).Count(&count)
		if count > 0 {
			return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
				{Field: "code", Message: "Code sudah dipakai subject lain", Code: "CODE_EXISTS"},
			})
		}
	}

	subject := model.SubjectModel{Title: *req.Title}
	if req.Code != nil && *req.Code != "" {
		subject.Code = req.Code
	}
	if req.Description != nil {
		subject.Description = *req.Description
	}

	if err := ac.DB.Create(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
				{Field: "code", Message: "Code sudah dipakai subject lain", Code: "CODE_EXISTS"},
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject dibuat", subject)
}

// PUT /api/admin/subjects/:id
func (ac *AdminController) UpdateSubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var subject model.SubjectModel
	if err := ac.DB.First(&subject, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca subject")
	}

	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if req.Code != nil {
		if *req.Code == "" {
			subject.Code = nil
		} else {
			var count int64
			ac.DB.Model(&model.SubjectModel{}).
				Where("code = ? AND id <> ?", *req.Code, subject.ID).
				Count(&count)
			if count > 0 {
				return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
					{Field: "code", Message: "Code sudah dipakai subject lain", Code: "CODE_EXISTS"},
				})
			}
			subject.Code = req.Code
		}
	}
	if req.Title != nil {
		if *req.Title == "" {
			return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
				{Field: "title", Message: "Title wajib diisi", Code: "TITLE_REQUIRED"},
			})
		}
		subject.Title = *req.Title
	}
	if req.Description != nil {
		subject.Description = *req.Description
	}

	if err := ac.DB.Save(&subject).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui subject")
	}
	return helper.Success(c, "Subject diperbarui", subject)
}

// DELETE /api/admin/subjects/:id
func (ac *AdminController) DeleteSubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ac.DB.Delete(&model.SubjectModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.Success(c, "Subject dihapus", nil)
}
