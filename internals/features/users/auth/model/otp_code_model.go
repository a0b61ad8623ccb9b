package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpCodeModel menyimpan kode OTP verifikasi email / reset password.
// Satu kode berlaku 2 jam dan maksimal 3 kali percobaan verifikasi.
type OtpCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	Purpose   string    `gorm:"type:varchar(30);not null;default:'email_verification'" json:"purpose"`
	Attempts  int       `gorm:"default:0" json:"attempts"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OtpCodeModel) TableName() string {
	return "otp_codes"
}
