package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStreakModel mencatat streak belajar harian (kalender UTC).
type UserStreakModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CurrentStreak  int        `gorm:"default:0" json:"current_streak"`
	LongestStreak  int        `gorm:"default:0" json:"longest_streak"`
	LastActiveDate *time.Time `gorm:"type:date" json:"last_active_date"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate mengisi id di sisi aplikasi supaya insert tidak bergantung
// pada fungsi uuid milik Postgres.
func (m *UserStreakModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (UserStreakModel) TableName() string {
	return "user_streaks"
}
