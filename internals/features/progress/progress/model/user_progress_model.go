package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// UserProgressModel adalah satu baris progress per (user, level).
// Transisi status hanya satu arah: in_progress -> completed.
type UserProgressModel struct {
	ID           uint                     `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_user_level,priority:1" json:"user_id"`
	LevelID      uint                     `gorm:"not null;uniqueIndex:idx_user_level,priority:2" json:"level_id"`
	Status       string                   `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	Progress     datatypes.JSON           `gorm:"type:jsonb" json:"progress"`
	PointsEarned int                      `gorm:"default:0" json:"points_earned"`
	StartedAt    time.Time                `gorm:"autoCreateTime" json:"started_at"`
	CompletedAt  *time.Time               `json:"completed_at"`
	Level        *catalogModel.LevelModel `gorm:"foreignKey:LevelID" json:"level,omitempty"`
}

func (UserProgressModel) TableName() string {
	return "user_progress"
}
