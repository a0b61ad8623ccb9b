package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPointsModel adalah ledger poin per user: total seumur hidup plus
// counter mingguan/bulanan yang direset oleh job eksternal.
type UserPointsModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TotalPoints   int       `gorm:"default:0" json:"total_points"`
	WeeklyPoints  int       `gorm:"default:0" json:"weekly_points"`
	MonthlyPoints int       `gorm:"default:0" json:"monthly_points"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate mengisi id di sisi aplikasi supaya insert tidak bergantung
// pada fungsi uuid milik Postgres.
func (m *UserPointsModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (UserPointsModel) TableName() string {
	return "user_points"
}
