package dto

type CreateSessionRequest struct {
	SubjectID *uint `json:"subject_id"`
	LevelID   *uint `json:"level_id"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}
