package model

type GradeLevelModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

func (GradeLevelModel) TableName() string {
	return "grade_levels"
}

type ClassModel struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Name         string           `gorm:"type:varchar(100);not null" json:"name"`
	GradeLevelID uint             `gorm:"not null" json:"grade_level_id"`
	GradeLevel   *GradeLevelModel `gorm:"foreignKey:GradeLevelID" json:"grade_level,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}
