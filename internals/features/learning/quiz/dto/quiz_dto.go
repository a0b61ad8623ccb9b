package dto

import "gorm.io/datatypes"

// QuestionView adalah soal tanpa flag is_correct — jawaban tidak boleh
// bocor lewat endpoint ini.
type QuestionView struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	Type         string         `json:"type"`
	Metadata     datatypes.JSON `json:"metadata"`
	OrderIndex   int            `json:"order_index"`
	Choices      []ChoiceView   `json:"choices"`
}

type ChoiceView struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
	OrderIndex int    `json:"order_index"`
}

type QuestionsResponse struct {
	LevelID   uint           `json:"level_id"`
	Questions []QuestionView `json:"questions"`
}

// SubmittedAnswer: answer boleh satu id atau array id.
type SubmittedAnswer struct {
	QuestionID uint        `json:"question_id"`
	Answer     interface{} `json:"answer"`
}

type SubmitQuizRequest struct {
	Answers []SubmittedAnswer `json:"answers"`
}

type AnswerResult struct {
	QuestionID uint        `json:"question_id"`
	IsCorrect  bool        `json:"is_correct"`
	UserAnswer interface{} `json:"user_answer"`
}

type SubmitQuizResponse struct {
	LevelID        uint           `json:"level_id"`
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	Score          int            `json:"score"`
	Passed         bool           `json:"passed"`
	Results        []AnswerResult `json:"results"`
}
