package model

import "time"

// SubjectLevelModel menghubungkan subject dengan kelas (subject x class).
type SubjectLevelModel struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	SubjectID     uint          `gorm:"not null;index" json:"subject_id"`
	ClassID       *uint         `gorm:"index" json:"class_id"`
	TitleOverride *string       `gorm:"type:varchar(255)" json:"title_override"`
	Visible       bool          `gorm:"default:true" json:"visible"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	Subject       *SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Class         *ClassModel   `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (SubjectLevelModel) TableName() string {
	return "subject_levels"
}
