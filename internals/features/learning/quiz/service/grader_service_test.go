package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
	"belajarku_backend/internals/features/learning/quiz/dto"
	"belajarku_backend/internals/features/learning/quiz/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalogModel.SubjectModel{},
		&catalogModel.SubjectLevelModel{},
		&catalogModel.LevelModel{},
		&model.QuestionModel{},
		&model.ChoiceModel{},
	))
	return db
}

// seedQuiz membuat satu level dengan dua soal: single choice dan
// multiple choice (dua jawaban benar). Mengembalikan level id dan
// id pilihan per soal urut order_index.
func seedQuiz(t *testing.T, db *gorm.DB) (uint, [][]uint) {
	subject := catalogModel.SubjectModel{Title: "Matematika"}
	require.NoError(t, db.Create(&subject).Error)
	subjectLevel := catalogModel.SubjectLevelModel{SubjectID: subject.ID}
	require.NoError(t, db.Create(&subjectLevel).Error)
	level := catalogModel.LevelModel{SubjectLevelID: subjectLevel.ID, Title: "Penjumlahan"}
	require.NoError(t, db.Create(&level).Error)

	q1 := model.QuestionModel{LevelID: level.ID, QuestionText: "2 + 2 = ?", OrderIndex: 0}
	require.NoError(t, db.Create(&q1).Error)
	q1Choices := []model.ChoiceModel{
		{QuestionID: q1.ID, ChoiceText: "3", OrderIndex: 0},
		{QuestionID: q1.ID, ChoiceText: "4", IsCorrect: true, OrderIndex: 1},
	}
	require.NoError(t, db.Create(&q1Choices).Error)

	q2 := model.QuestionModel{LevelID: level.ID, QuestionText: "Pilih bilangan genap", Type: "multiple_choice", OrderIndex: 1}
	require.NoError(t, db.Create(&q2).Error)
	q2Choices := []model.ChoiceModel{
		{QuestionID: q2.ID, ChoiceText: "2", IsCorrect: true, OrderIndex: 0},
		{QuestionID: q2.ID, ChoiceText: "3", OrderIndex: 1},
		{QuestionID: q2.ID, ChoiceText: "4", IsCorrect: true, OrderIndex: 2},
	}
	require.NoError(t, db.Create(&q2Choices).Error)

	ids := [][]uint{
		{q1Choices[0].ID, q1Choices[1].ID},
		{q2Choices[0].ID, q2Choices[1].ID, q2Choices[2].ID},
	}
	return level.ID, ids
}

func questionIDs(t *testing.T, db *gorm.DB, levelID uint) []uint {
	var questions []model.QuestionModel
	require.NoError(t, db.Where("level_id = ?", levelID).Order("order_index ASC").Find(&questions).Error)
	out := make([]uint, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func TestGetQuestionsHidesCorrectFlag(t *testing.T) {
	db := openTestDB(t)
	levelID, _ := seedQuiz(t, db)

	resp, err := GetQuestions(db, levelID)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)
	assert.Len(t, resp.Questions[0].Choices, 2)
	assert.Len(t, resp.Questions[1].Choices, 3)
}

func TestSubmitQuizAllCorrect(t *testing.T) {
	db := openTestDB(t)
	levelID, choices := seedQuiz(t, db)
	qIDs := questionIDs(t, db, levelID)

	resp, err := SubmitQuiz(db, levelID, &dto.SubmitQuizRequest{
		Answers: []dto.SubmittedAnswer{
			{QuestionID: qIDs[0], Answer: float64(choices[0][1])},
			// urutan terbalik tetap benar: perbandingan set
			{QuestionID: qIDs[1], Answer: []interface{}{float64(choices[1][2]), float64(choices[1][0])}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CorrectAnswers)
	assert.Equal(t, 100, resp.Score)
	assert.True(t, resp.Passed)
}

func TestSubmitQuizNoPartialCredit(t *testing.T) {
	db := openTestDB(t)
	levelID, choices := seedQuiz(t, db)
	qIDs := questionIDs(t, db, levelID)

	// Hanya satu dari dua jawaban benar pada soal multiple choice.
	resp, err := SubmitQuiz(db, levelID, &dto.SubmitQuizRequest{
		Answers: []dto.SubmittedAnswer{
			{QuestionID: qIDs[1], Answer: []interface{}{float64(choices[1][0])}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CorrectAnswers)
	assert.False(t, resp.Passed)
}

func TestSubmitQuizUnknownQuestionSkipped(t *testing.T) {
	db := openTestDB(t)
	levelID, choices := seedQuiz(t, db)
	qIDs := questionIDs(t, db, levelID)

	resp, err := SubmitQuiz(db, levelID, &dto.SubmitQuizRequest{
		Answers: []dto.SubmittedAnswer{
			{QuestionID: qIDs[0], Answer: float64(choices[0][1])},
			{QuestionID: 99999, Answer: float64(1)},
		},
	})
	require.NoError(t, err)
	// Penyebut tetap jumlah soal level, bukan jumlah jawaban.
	assert.Equal(t, 2, resp.TotalQuestions)
	assert.Equal(t, 1, resp.CorrectAnswers)
	assert.Equal(t, 50, resp.Score)
	assert.False(t, resp.Passed)
	assert.Len(t, resp.Results, 1)
}

func TestSubmitQuizLevelWithoutQuestions(t *testing.T) {
	db := openTestDB(t)
	levelID, _ := seedQuiz(t, db)

	subjectLevel := catalogModel.SubjectLevelModel{SubjectID: 1}
	require.NoError(t, db.Create(&subjectLevel).Error)
	empty := catalogModel.LevelModel{SubjectLevelID: subjectLevel.ID, Title: "Kosong"}
	require.NoError(t, db.Create(&empty).Error)

	_, err := SubmitQuiz(db, empty.ID, &dto.SubmitQuizRequest{
		Answers: []dto.SubmittedAnswer{{QuestionID: 1, Answer: float64(1)}},
	})
	require.Error(t, err)
	_ = levelID
}

func TestGradeAnswerRejectsNonNumeric(t *testing.T) {
	q := &model.QuestionModel{Choices: []model.ChoiceModel{{ID: 1, IsCorrect: true}}}
	assert.False(t, gradeAnswer(q, "satu"))
	assert.True(t, gradeAnswer(q, float64(1)))
}
