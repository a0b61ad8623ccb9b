package service

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "belajarku_backend/internals/features/users/auth/model"
	"belajarku_backend/internals/mailer"
)

const (
	otpTTL          = 120 * time.Minute
	otpMaxAttempts  = 3
	otpWindow       = 30 * time.Second
	otpMaxPerWindow = 5
)

func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// checkOtpRateLimit membatasi permintaan OTP per email dalam satu window.
func checkOtpRateLimit(db *gorm.DB, email string) error {
	now := time.Now()

	var rl authModel.OtpRateLimitModel
	err := db.First(&rl, "email = ?", email).Error
	if err == gorm.ErrRecordNotFound {
		rl = authModel.OtpRateLimitModel{Email: email, RequestCount: 1, WindowStart: now}
		if err := db.Create(&rl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat rate limit OTP")
		}
		return nil
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca rate limit OTP")
	}

	if now.Sub(rl.WindowStart) > otpWindow {
		// window lama habis, mulai hitungan baru
		return db.Model(&authModel.OtpRateLimitModel{}).
			Where("email = ?", email).
			Updates(map[string]interface{}{
				"request_count": 1,
				"window_start":  now,
			}).Error
	}

	if rl.RequestCount >= otpMaxPerWindow {
		return fiber.NewError(fiber.StatusTooManyRequests, "Terlalu banyak permintaan OTP, coba lagi sebentar lagi")
	}

	return db.Model(&authModel.OtpRateLimitModel{}).
		Where("email = ?", email).
		Update("request_count", gorm.Expr("request_count + 1")).Error
}

// IssueOtp membatalkan OTP lama untuk purpose yang sama, membuat kode baru,
// dan mengirimkannya lewat mailer. Gagal kirim email hanya dilog.
func IssueOtp(db *gorm.DB, userID uuid.UUID, email, purpose string) error {
	if err := db.Model(&authModel.OtpCodeModel{}).
		Where("email = ? AND purpose = ? AND is_used = false", email, purpose).
		Update("is_used", true).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan OTP lama")
	}

	code, err := generateOtpCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kode OTP")
	}

	otp := authModel.OtpCodeModel{
		UserID:    userID,
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := db.Create(&otp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kode OTP")
	}

	if err := mailer.New().SendOtpEmail(email, code, purpose); err != nil {
		log.Printf("[ERROR] kirim OTP ke %s gagal: %v", email, err)
	}
	return nil
}

// VerifyOtp memvalidasi kode untuk email+purpose. Salah kode menambah attempts;
// sukses menandai kode terpakai.
func VerifyOtp(db *gorm.DB, email, code, purpose string) error {
	var otp authModel.OtpCodeModel
	err := db.Where("email = ? AND purpose = ? AND is_used = false AND expires_at > ?",
		email, purpose, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusBadRequest, "Kode OTP tidak ditemukan atau sudah kedaluwarsa")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca kode OTP")
	}

	if otp.Attempts >= otpMaxAttempts {
		return fiber.NewError(fiber.StatusBadRequest, "Kode OTP sudah melebihi batas percobaan, minta kode baru")
	}

	if otp.Code != code {
		if err := db.Model(&otp).Update("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
			log.Printf("[ERROR] gagal menambah attempts OTP %s: %v", otp.ID, err)
		}
		return fiber.NewError(fiber.StatusBadRequest, "Kode OTP salah")
	}

	if err := db.Model(&otp).Update("is_used", true).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai OTP terpakai")
	}
	return nil
}
