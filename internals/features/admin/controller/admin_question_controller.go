package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/admin/dto"
	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
	quizModel "belajarku_backend/internals/features/learning/quiz/model"
	helper "belajarku_backend/internals/helpers"
)

/* ===== Questions + Choices ===== */

func buildChoices(questionID uint, reqs []dto.ChoiceRequest) []quizModel.ChoiceModel {
	choices := make([]quizModel.ChoiceModel, 0, len(reqs))
	for i, cr := range reqs {
		orderIndex := i
		if cr.OrderIndex != nil {
			orderIndex = *cr.OrderIndex
		}
		choices = append(choices, quizModel.ChoiceModel{
			QuestionID: questionID,
			ChoiceText: cr.ChoiceText,
			IsCorrect:  cr.IsCorrect,
			OrderIndex: orderIndex,
		})
	}
	return choices
}

// POST /api/admin/questions
func (ac *AdminController) CreateQuestion(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if req.LevelID == nil || *req.LevelID == 0 {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "level_id", Message: "Level wajib diisi", Code: "LEVEL_ID_REQUIRED"},
		})
	}
	if req.QuestionText == nil || *req.QuestionText == "" {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "question_text", Message: "Teks pertanyaan wajib diisi", Code: "QUESTION_TEXT_REQUIRED"},
		})
	}

	var level catalogModel.LevelModel
	if err := ac.DB.First(&level, "id = ?", *req.LevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca level")
	}

	question := quizModel.QuestionModel{
		LevelID:      *req.LevelID,
		QuestionText: *req.QuestionText,
		CreatedBy:    &userID,
	}
	if req.Type != nil && *req.Type != "" {
		question.Type = *req.Type
	}
	if req.OrderIndex != nil {
		question.OrderIndex = *req.OrderIndex
	}
	if len(req.Metadata) > 0 {
		if !validJSON(req.Metadata) {
			return helper.Error(c, fiber.StatusBadRequest, "Metadata harus JSON valid")
		}
		question.Metadata = datatypes.JSON(req.Metadata)
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		if len(req.Choices) > 0 {
			choices := buildChoices(question.ID, req.Choices)
			if err := tx.Create(&choices).Error; err != nil {
				return err
			}
			question.Choices = choices
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pertanyaan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pertanyaan dibuat", question)
}

// PUT /api/admin/questions/:id
//
// Jika body membawa choices, seluruh choices lama diganti dengan yang baru.
func (ac *AdminController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var question quizModel.QuestionModel
	if err := ac.DB.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca pertanyaan")
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if req.LevelID != nil && *req.LevelID != 0 {
		question.LevelID = *req.LevelID
	}
	if req.QuestionText != nil && *req.QuestionText != "" {
		question.QuestionText = *req.QuestionText
	}
	if req.Type != nil && *req.Type != "" {
		question.Type = *req.Type
	}
	if req.OrderIndex != nil {
		question.OrderIndex = *req.OrderIndex
	}
	if len(req.Metadata) > 0 {
		if !validJSON(req.Metadata) {
			return helper.Error(c, fiber.StatusBadRequest, "Metadata harus JSON valid")
		}
		question.Metadata = datatypes.JSON(req.Metadata)
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		if req.Choices != nil {
			if err := tx.Where("question_id = ?", question.ID).
				Delete(&quizModel.ChoiceModel{}).Error; err != nil {
				return err
			}
			if len(req.Choices) > 0 {
				choices := buildChoices(question.ID, req.Choices)
				if err := tx.Create(&choices).Error; err != nil {
					return err
				}
				question.Choices = choices
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pertanyaan")
	}
	return helper.Success(c, "Pertanyaan diperbarui", question)
}

// DELETE /api/admin/questions/:id
func (ac *AdminController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var found bool
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).
			Delete(&quizModel.ChoiceModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&quizModel.QuestionModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
	}
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	return helper.Success(c, "Pertanyaan dihapus", nil)
}
