package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AchievementModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Code         string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  *string        `gorm:"type:text" json:"description"`
	IconURL      *string        `gorm:"type:text" json:"icon_url"`
	Criteria     datatypes.JSON `gorm:"type:jsonb" json:"criteria"`
	PointsReward int            `gorm:"default:0" json:"points_reward"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AchievementModel) TableName() string {
	return "achievements"
}

// UserAchievementModel: satu grant per (user, achievement).
type UserAchievementModel struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement,priority:1" json:"user_id"`
	AchievementID uint              `gorm:"not null;uniqueIndex:idx_user_achievement,priority:2" json:"achievement_id"`
	Metadata      datatypes.JSON    `gorm:"type:jsonb" json:"metadata"`
	AwardedAt     time.Time         `gorm:"autoCreateTime" json:"awarded_at"`
	Achievement   *AchievementModel `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (UserAchievementModel) TableName() string {
	return "user_achievements"
}
