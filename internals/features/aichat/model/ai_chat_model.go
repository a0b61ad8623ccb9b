package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
)

// AIChatSessionModel adalah satu percakapan tutor AI, opsional terikat
// subject/level sebagai konteks.
type AIChatSessionModel struct {
	ID        uint                       `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID                  `gorm:"type:uuid;not null;index" json:"user_id"`
	SubjectID *uint                      `json:"subject_id"`
	LevelID   *uint                      `json:"level_id"`
	CreatedAt time.Time                  `gorm:"autoCreateTime" json:"created_at"`
	Subject   *catalogModel.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Level     *catalogModel.LevelModel   `gorm:"foreignKey:LevelID" json:"level,omitempty"`
}

func (AIChatSessionModel) TableName() string {
	return "ai_chat_sessions"
}

type AIChatMessageModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID uint           `gorm:"not null;index" json:"session_id"`
	Sender    string         `gorm:"type:varchar(10);not null" json:"sender"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AIChatMessageModel) TableName() string {
	return "ai_chat_messages"
}
