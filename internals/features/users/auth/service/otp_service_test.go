package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "belajarku_backend/internals/features/users/auth/model"
)

func openOtpTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	// Skema dibuat manual: default gen_random_uuid() milik Postgres
	// tidak dikenal sqlite, id diisi eksplisit di test.
	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS otp_codes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		email TEXT NOT NULL,
		code TEXT NOT NULL,
		purpose TEXT NOT NULL DEFAULT 'email_verification',
		attempts INTEGER DEFAULT 0,
		is_used BOOLEAN DEFAULT false,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS otp_rate_limits (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		request_count INTEGER DEFAULT 1,
		window_start DATETIME NOT NULL,
		updated_at DATETIME
	)`).Error)
	return db
}

func createOtp(t *testing.T, db *gorm.DB, email, code string, expiresIn time.Duration) authModel.OtpCodeModel {
	otp := authModel.OtpCodeModel{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Email:     email,
		Code:      code,
		Purpose:   "email_verification",
		ExpiresAt: time.Now().Add(expiresIn),
	}
	require.NoError(t, db.Create(&otp).Error)
	return otp
}

func TestGenerateOtpCodeFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := generateOtpCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestVerifyOtpSuccessMarksUsed(t *testing.T) {
	db := openOtpTestDB(t)
	otp := createOtp(t, db, "sukses@example.com", "123456", time.Hour)

	require.NoError(t, VerifyOtp(db, "sukses@example.com", "123456", "email_verification"))

	var row authModel.OtpCodeModel
	require.NoError(t, db.First(&row, "id = ?", otp.ID).Error)
	assert.True(t, row.IsUsed)

	// kode yang sudah terpakai tidak bisa dipakai lagi
	err := VerifyOtp(db, "sukses@example.com", "123456", "email_verification")
	require.Error(t, err)
}

func TestVerifyOtpWrongCodeIncrementsAttempts(t *testing.T) {
	db := openOtpTestDB(t)
	otp := createOtp(t, db, "salah@example.com", "123456", time.Hour)

	for i := 0; i < otpMaxAttempts; i++ {
		err := VerifyOtp(db, "salah@example.com", "000000", "email_verification")
		require.Error(t, err)
	}

	var row authModel.OtpCodeModel
	require.NoError(t, db.First(&row, "id = ?", otp.ID).Error)
	assert.Equal(t, otpMaxAttempts, row.Attempts)

	// kode benar pun ditolak setelah melewati batas percobaan
	err := VerifyOtp(db, "salah@example.com", "123456", "email_verification")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestVerifyOtpExpired(t *testing.T) {
	db := openOtpTestDB(t)
	createOtp(t, db, "kedaluwarsa@example.com", "123456", -time.Minute)

	err := VerifyOtp(db, "kedaluwarsa@example.com", "123456", "email_verification")
	require.Error(t, err)
}

func TestCheckOtpRateLimit(t *testing.T) {
	db := openOtpTestDB(t)
	email := "ratelimit@example.com"

	for i := 0; i < otpMaxPerWindow; i++ {
		require.NoError(t, checkOtpRateLimit(db, email))
	}

	err := checkOtpRateLimit(db, email)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusTooManyRequests, fe.Code)

	// window lama habis -> hitungan mulai lagi
	require.NoError(t, db.Model(&authModel.OtpRateLimitModel{}).
		Where("email = ?", email).
		Update("window_start", time.Now().Add(-time.Minute)).Error)
	require.NoError(t, checkOtpRateLimit(db, email))
}
