package dto

import (
	"time"

	"gorm.io/datatypes"

	"belajarku_backend/internals/features/progress/progress/model"
)

// UpdateProgressRequest: progress adalah payload bebas milik frontend;
// hanya percent yang dikontrak (di-clamp 0..100).
type UpdateProgressRequest struct {
	Progress map[string]interface{} `json:"progress"`
	Percent  *int                   `json:"percent"`
}

type CompleteLevelResponse struct {
	model.UserProgressModel
	NextLevelUnlocked bool  `json:"next_level_unlocked"`
	NextLevelID       *uint `json:"next_level_id"`
}

// JourneyMapEntry adalah view turunan per level, tidak dipersist.
type JourneyMapEntry struct {
	LevelID       uint           `json:"level_id"`
	LevelIndex    int            `json:"level_index"`
	Title         string         `json:"title"`
	PointsReward  int            `json:"points_reward"`
	Status        *string        `json:"status"`
	JourneyStatus string         `json:"journey_status"`
	IsUnlocked    bool           `json:"is_unlocked"`
	Progress      datatypes.JSON `json:"progress"`
	PointsEarned  int            `json:"points_earned"`
	StartedAt     *time.Time     `json:"started_at"`
	CompletedAt   *time.Time     `json:"completed_at"`
}

type ProgressStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"in_progress"`
}
