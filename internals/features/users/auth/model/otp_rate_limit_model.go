package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpRateLimitModel mencatat window permintaan OTP per email.
// Maksimal 5 permintaan per window 30 detik.
type OtpRateLimitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	RequestCount int       `gorm:"default:1" json:"request_count"`
	WindowStart  time.Time `gorm:"not null" json:"window_start"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OtpRateLimitModel) TableName() string {
	return "otp_rate_limits"
}
