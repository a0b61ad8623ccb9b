package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
)

type UserProfileModel struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName     string                        `gorm:"type:varchar(255)" json:"full_name"`
	Gender       string                        `gorm:"type:varchar(10)" json:"gender"`
	GradeLevelID *uint                         `json:"grade_level_id"`
	ClassID      *uint                         `json:"class_id"`
	Bio          string                        `gorm:"type:text" json:"bio"`
	AvatarURL    *string                       `gorm:"type:text" json:"avatar_url"`
	CreatedAt    time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                     `gorm:"autoUpdateTime" json:"updated_at"`
	GradeLevel   *catalogModel.GradeLevelModel `gorm:"foreignKey:GradeLevelID" json:"grade_level,omitempty"`
	Class        *catalogModel.ClassModel      `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
