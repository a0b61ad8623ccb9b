package mailer

import "log"

// consoleMailer menulis OTP ke log, dipakai saat development tanpa sendgrid.
type consoleMailer struct{}

func (consoleMailer) SendOtpEmail(to, otpCode, purpose string) error {
	log.Printf("[MAIL] to=%s purpose=%s otp=%s", to, purpose, otpCode)
	return nil
}
