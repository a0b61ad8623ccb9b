package mailer

import (
	"fmt"

	"belajarku_backend/internals/configs"
)

// Mailer mengirim email OTP. Implementasi: sendgrid (produksi) atau
// console (dev, saat SENDGRID_API_KEY kosong).
type Mailer interface {
	SendOtpEmail(to, otpCode, purpose string) error
}

// New memilih implementasi berdasarkan konfigurasi.
func New() Mailer {
	if configs.SendgridAPIKey != "" {
		return newSendgridMailer(configs.SendgridAPIKey)
	}
	return consoleMailer{}
}

const (
	PurposeEmailVerification = "email_verification"
	PurposePasswordReset     = "password_reset"
)

func subjectFor(purpose string) string {
	switch purpose {
	case PurposePasswordReset:
		return "Reset Your Password - OTP Code"
	case PurposeEmailVerification:
		return "Verify Your Email - OTP Code"
	default:
		return "Your OTP Code"
	}
}

func htmlBody(otpCode, purpose string) string {
	intro := "Thank you for registering! Please use the OTP code below to verify your email address:"
	if purpose == PurposePasswordReset {
		intro = "You requested to reset your password. Please use the OTP code below:"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <p style="font-size: 16px;">Hello,</p>
  <p style="font-size: 16px;">%s</p>
  <div style="background: white; border: 2px dashed #667eea; border-radius: 8px; padding: 20px; text-align: center; margin: 30px 0;">
    <h2 style="color: #667eea; font-size: 36px; letter-spacing: 5px; margin: 0;">%s</h2>
  </div>
  <p style="font-size: 14px; color: #666;">This code will expire in 2 hours.</p>
  <p style="font-size: 14px; color: #666;">If you didn't request this code, please ignore this email.</p>
  <p style="font-size: 12px; color: #999; text-align: center;">This is an automated message, please do not reply.</p>
</body>
</html>`, intro, otpCode)
}
