package model

import "time"

// LevelModel adalah satu level belajar di dalam subject_level,
// diurutkan dengan level_index.
type LevelModel struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	SubjectLevelID   uint               `gorm:"not null;index:idx_levels_order,priority:1" json:"subject_level_id"`
	LevelIndex       int                `gorm:"not null;index:idx_levels_order,priority:2" json:"level_index"`
	Title            string             `gorm:"type:varchar(255);not null" json:"title"`
	Description      string             `gorm:"type:text" json:"description"`
	PointsReward     int                `gorm:"default:0" json:"points_reward"`
	EstimatedMinutes int                `gorm:"default:0" json:"estimated_minutes"`
	CreatedAt        time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	SubjectLevel     *SubjectLevelModel `gorm:"foreignKey:SubjectLevelID" json:"subject_level,omitempty"`
	Materials        []MaterialModel    `gorm:"foreignKey:LevelID" json:"materials,omitempty"`
}

func (LevelModel) TableName() string {
	return "levels"
}
