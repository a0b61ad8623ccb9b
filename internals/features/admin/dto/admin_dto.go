package dto

import "encoding/json"

type AchievementRequest struct {
	Code         *string         `json:"code"`
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	IconURL      *string         `json:"icon_url"`
	Criteria     json.RawMessage `json:"criteria"`
	PointsReward *int            `json:"points_reward"`
}

type SubjectRequest struct {
	Code        *string `json:"code"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex *int   `json:"order_index"`
}

type QuestionRequest struct {
	LevelID      *uint           `json:"level_id"`
	QuestionText *string         `json:"question_text"`
	Type         *string         `json:"type"`
	Metadata     json.RawMessage `json:"metadata"`
	OrderIndex   *int            `json:"order_index"`
	Choices      []ChoiceRequest `json:"choices"`
}

type MaterialRequest struct {
	LevelID    *uint           `json:"level_id"`
	Content    json.RawMessage `json:"content"`
	OrderIndex *int            `json:"order_index"`
}

type LevelRequest struct {
	SubjectLevelID   *uint   `json:"subject_level_id"`
	LevelIndex       *int    `json:"level_index"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	PointsReward     *int    `json:"points_reward"`
	EstimatedMinutes *int    `json:"estimated_minutes"`
}
