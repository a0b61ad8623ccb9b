package service

import (
	"math"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogService "belajarku_backend/internals/features/learning/catalog/service"
	"belajarku_backend/internals/features/learning/quiz/dto"
	"belajarku_backend/internals/features/learning/quiz/model"
)

// GetQuestions mengembalikan soal beserta pilihan TANPA flag is_correct.
func GetQuestions(db *gorm.DB, levelID uint) (*dto.QuestionsResponse, error) {
	level, err := catalogService.FindLevelByID(db, levelID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca level")
	}
	if level == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Level tidak ditemukan")
	}

	questions, err := findQuestionsWithChoices(db, levelID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	resp := &dto.QuestionsResponse{LevelID: levelID, Questions: make([]dto.QuestionView, 0, len(questions))}
	for _, q := range questions {
		view := dto.QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Type:         q.Type,
			Metadata:     q.Metadata,
			OrderIndex:   q.OrderIndex,
			Choices:      make([]dto.ChoiceView, 0, len(q.Choices)),
		}
		for _, c := range q.Choices {
			view.Choices = append(view.Choices, dto.ChoiceView{
				ID:         c.ID,
				ChoiceText: c.ChoiceText,
				OrderIndex: c.OrderIndex,
			})
		}
		resp.Questions = append(resp.Questions, view)
	}
	return resp, nil
}

// SubmitQuiz menilai jawaban: set id pilihan harus sama persis dengan set
// pilihan benar (tanpa partial credit). question_id yang tidak dikenal
// dilewati, tetapi penyebut skor tetap jumlah soal level.
func SubmitQuiz(db *gorm.DB, levelID uint, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	level, err := catalogService.FindLevelByID(db, levelID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca level")
	}
	if level == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Level tidak ditemukan")
	}

	questions, err := findQuestionsWithChoices(db, levelID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	if len(questions) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Level ini belum punya soal")
	}

	questionMap := make(map[uint]*model.QuestionModel, len(questions))
	for i := range questions {
		questionMap[questions[i].ID] = &questions[i]
	}

	results := make([]dto.AnswerResult, 0, len(req.Answers))
	correctCount := 0

	for _, answer := range req.Answers {
		question, ok := questionMap[answer.QuestionID]
		if !ok {
			continue
		}

		isCorrect := gradeAnswer(question, answer.Answer)
		if isCorrect {
			correctCount++
		}
		results = append(results, dto.AnswerResult{
			QuestionID: answer.QuestionID,
			IsCorrect:  isCorrect,
			UserAnswer: answer.Answer,
		})
	}

	total := len(questions)
	score := int(math.Round(float64(correctCount) / float64(total) * 100))

	return &dto.SubmitQuizResponse{
		LevelID:        levelID,
		TotalQuestions: total,
		CorrectAnswers: correctCount,
		Score:          score,
		Passed:         score >= 70,
		Results:        results,
	}, nil
}

func findQuestionsWithChoices(db *gorm.DB, levelID uint) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	err := db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).
		Where("level_id = ?", levelID).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

// gradeAnswer membandingkan dua set id pilihan setelah dinormalkan jadi
// slice int terurut; perbandingannya order-independent dan exact.
func gradeAnswer(question *model.QuestionModel, answer interface{}) bool {
	correct := make([]int, 0, len(question.Choices))
	for _, c := range question.Choices {
		if c.IsCorrect {
			correct = append(correct, int(c.ID))
		}
	}
	sort.Ints(correct)

	submitted, ok := normalizeAnswer(answer)
	if !ok {
		return false
	}

	if len(correct) != len(submitted) {
		return false
	}
	for i := range correct {
		if correct[i] != submitted[i] {
			return false
		}
	}
	return true
}

// normalizeAnswer menerima satu id atau array id (JSON number/string).
func normalizeAnswer(answer interface{}) ([]int, bool) {
	switch v := answer.(type) {
	case []interface{}:
		ids := make([]int, 0, len(v))
		for _, item := range v {
			id, ok := toInt(item)
			if !ok {
				return nil, false
			}
			ids = append(ids, id)
		}
		sort.Ints(ids)
		return ids, true
	default:
		id, ok := toInt(answer)
		if !ok {
			return nil, false
		}
		return []int{id}, true
	}
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	default:
		return 0, false
	}
}
