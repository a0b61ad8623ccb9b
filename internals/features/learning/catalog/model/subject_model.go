package model

import "time"

type SubjectModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        *string   `gorm:"type:varchar(50);uniqueIndex" json:"code"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
