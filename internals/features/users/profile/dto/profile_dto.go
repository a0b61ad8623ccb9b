package dto

type CompleteProfileRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=255"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	GradeLevelID uint   `json:"grade_level_id" validate:"required"`
	ClassID      uint   `json:"class_id" validate:"required"`
	Bio          string `json:"bio" validate:"omitempty,max=500"`
	SubjectIDs   []uint `json:"subject_ids" validate:"required,min=1,dive,required"`
}

// UpdateProfileRequest: semua field opsional; pointer membedakan
// "tidak dikirim" dengan "dikosongkan".
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=male female other"`
	GradeLevelID *uint   `json:"grade_level_id"`
	ClassID      *uint   `json:"class_id"`
	Bio          *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL    *string `json:"avatar_url"`
}
