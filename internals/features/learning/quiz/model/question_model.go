package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	LevelID      uint           `gorm:"not null;index" json:"level_id"`
	QuestionText string         `gorm:"type:text;not null" json:"question_text"`
	Type         string         `gorm:"type:varchar(30);default:'single_choice'" json:"type"`
	Metadata     datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	OrderIndex   int            `gorm:"default:0" json:"order_index"`
	CreatedBy    *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Choices      []ChoiceModel  `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

type ChoiceModel struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	ChoiceText string `gorm:"type:text;not null" json:"choice_text"`
	IsCorrect  bool   `gorm:"default:false" json:"is_correct"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}

func (ChoiceModel) TableName() string {
	return "choices"
}
