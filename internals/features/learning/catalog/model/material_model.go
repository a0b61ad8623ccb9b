package model

import (
	"time"

	"gorm.io/datatypes"
)

// MaterialModel menyimpan konten materi sebagai JSON bebas (schema milik frontend).
type MaterialModel struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	LevelID    uint           `gorm:"not null;index" json:"level_id"`
	Content    datatypes.JSON `gorm:"type:jsonb" json:"content"`
	OrderIndex int            `gorm:"default:0" json:"order_index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MaterialModel) TableName() string {
	return "materials"
}
