package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "belajarku_backend/internals/features/learning/quiz/controller"
)

// QuizRoutes mendaftarkan endpoint kuis (grup sudah ber-auth).
func QuizRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	quiz := api.Group("/quiz")
	quiz.Get("/levels/:levelId/questions", ctrl.GetQuestions)
	quiz.Post("/levels/:levelId/submit", ctrl.SubmitQuiz)
}
