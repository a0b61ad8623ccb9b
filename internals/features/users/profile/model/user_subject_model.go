package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
)

// UserSubjectModel adalah pilihan subject milik user (hasil onboarding).
type UserSubjectModel struct {
	ID        uint                      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_user_subject,priority:1" json:"user_id"`
	SubjectID uint                      `gorm:"not null;uniqueIndex:idx_user_subject,priority:2" json:"subject_id"`
	CreatedAt time.Time                 `gorm:"autoCreateTime" json:"created_at"`
	Subject   *catalogModel.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}

func (UserSubjectModel) TableName() string {
	return "user_subjects"
}
