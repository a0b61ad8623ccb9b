package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/learning/quiz/dto"
	"belajarku_backend/internals/features/learning/quiz/service"
	helper "belajarku_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

// GET /api/quiz/levels/:levelId/questions
func (qc *QuizController) GetQuestions(c *fiber.Ctx) error {
	levelID, err := c.ParamsInt("levelId")
	if err != nil || levelID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	resp, err := service.GetQuestions(qc.DB, uint(levelID))
	if err != nil {
		return err
	}
	return helper.Success(c, "", resp)
}

// POST /api/quiz/levels/:levelId/submit
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	levelID, err := c.ParamsInt("levelId")
	if err != nil || levelID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil || req.Answers == nil {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "answers", Message: "Answers array is required", Code: "ANSWERS_REQUIRED"},
		})
	}

	resp, err := service.SubmitQuiz(qc.DB, uint(levelID), &req)
	if err != nil {
		return err
	}
	return helper.Success(c, "", resp)
}
