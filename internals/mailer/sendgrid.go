package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"belajarku_backend/internals/configs"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func newSendgridMailer(apiKey string) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from: sgmail.NewEmail(
			configs.GetEnv("EMAIL_FROM_NAME", "Belajarku"),
			configs.GetEnv("EMAIL_FROM", "no-reply@belajarku.app"),
		),
	}
}

func (m *sendgridMailer) SendOtpEmail(to, otpCode, purpose string) error {
	msg := sgmail.NewSingleEmail(
		m.from,
		subjectFor(purpose),
		sgmail.NewEmail("", to),
		"Your OTP code: "+otpCode,
		htmlBody(otpCode, purpose),
	)

	resp, err := m.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send gagal: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send gagal (%d): %s", resp.StatusCode, resp.Body)
	}
	log.Printf("[INFO] OTP email terkirim ke %s (purpose=%s)", to, purpose)
	return nil
}
