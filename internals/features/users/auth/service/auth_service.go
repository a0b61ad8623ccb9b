package service

import (
	"log"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	pointsService "belajarku_backend/internals/features/progress/points/service"
	streakService "belajarku_backend/internals/features/progress/streaks/service"
	authDto "belajarku_backend/internals/features/users/auth/dto"
	authModel "belajarku_backend/internals/features/users/auth/model"
	profileModel "belajarku_backend/internals/features/users/profile/model"
	profileService "belajarku_backend/internals/features/users/profile/service"
	helper "belajarku_backend/internals/helpers"
	"belajarku_backend/internals/mailer"
)

var validateAuth = validator.New()

var usernameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func init() {
	_ = validateAuth.RegisterValidation("username_format", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// username tidak boleh dipakai akun lain
	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("username = ? AND email <> ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Username sudah digunakan")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	var user authModel.UserModel
	err = db.First(&user, "email = ?", req.Email).Error
	switch {
	case err == nil && user.IsActive:
		return helper.Error(c, fiber.StatusBadRequest, "Email sudah terdaftar")

	case err == nil:
		// akun lama yang belum diverifikasi boleh didaftarkan ulang
		if err := db.Model(&user).Updates(map[string]interface{}{
			"username":      req.Username,
			"password_hash": string(hash),
		}).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui akun")
		}
		user.Username = req.Username

	case err == gorm.ErrRecordNotFound:
		user = authModel.UserModel{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         "student",
		}
		if txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&profileModel.UserProfileModel{UserID: user.ID}).Error
		}); txErr != nil {
			log.Printf("[ERROR] register %s gagal: %v", req.Email, txErr)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}

		if err := pointsService.Initialize(db, user.ID); err != nil {
			log.Printf("[ERROR] init points %s: %v", user.ID, err)
		}
		if err := streakService.Initialize(db, user.ID); err != nil {
			log.Printf("[ERROR] init streak %s: %v", user.ID, err)
		}

	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}

	if err := IssueOtp(db, user.ID, user.Email, mailer.PurposeEmailVerification); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Registrasi berhasil, cek email untuk kode verifikasi",
		fiber.Map{"user_id": user.ID, "email": user.Email})
}

/* ==========================
   REQUEST OTP
========================== */

func RequestOtp(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.RequestOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Purpose == "" {
		req.Purpose = mailer.PurposeEmailVerification
	}

	if err := checkOtpRateLimit(db, req.Email); err != nil {
		return err
	}

	var user authModel.UserModel
	if err := db.First(&user, "email = ?", req.Email).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Email tidak terdaftar")
	}
	if req.Purpose == mailer.PurposeEmailVerification && user.IsActive {
		return helper.Error(c, fiber.StatusBadRequest, "Email sudah terverifikasi")
	}

	if err := IssueOtp(db, user.ID, user.Email, req.Purpose); err != nil {
		return err
	}

	return helper.Success(c, "Kode OTP sudah dikirim ke email", nil)
}

/* ==========================
   VERIFY EMAIL
========================== */

func VerifyEmail(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.First(&user, "email = ?", req.Email).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Email tidak terdaftar")
	}

	if err := VerifyOtp(db, req.Email, req.Code, mailer.PurposeEmailVerification); err != nil {
		return err
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"is_active":   true,
		"is_verified": true,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengaktifkan akun")
	}
	user.IsActive = true

	// akun lama yang dibuat sebelum fitur points/streak tetap dapat baris awal
	_ = pointsService.Initialize(db, user.ID)
	_ = streakService.Initialize(db, user.ID)

	return respondWithToken(db, c, &user, "Email berhasil diverifikasi")
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.First(&user, "email = ?", req.Email).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun belum diverifikasi, cek email untuk kode OTP")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	if err := db.Model(&user).Update("last_login_at", now).Error; err != nil {
		log.Printf("[ERROR] update last_login %s: %v", user.ID, err)
	}

	return respondWithToken(db, c, &user, "Login berhasil")
}

/* ==========================
   RESET PASSWORD
========================== */

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.First(&user, "email = ?", req.Email).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Email tidak terdaftar")
	}

	if err := VerifyOtp(db, req.Email, req.Code, mailer.PurposePasswordReset); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}

	return helper.Success(c, "Password berhasil direset", nil)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "", buildAuthUser(db, &user))
}

/* ==========================
   Internal
========================== */

func buildAuthUser(db *gorm.DB, user *authModel.UserModel) authDto.AuthUserResponse {
	resp := authDto.AuthUserResponse{
		ID:              user.ID.String(),
		Username:        user.Username,
		Email:           user.Email,
		Role:            user.Role,
		ProfileComplete: profileService.IsComplete(db, user.ID, user.Role),
	}

	if points, err := pointsService.GetByUser(db, user.ID); err == nil {
		resp.Points = points
	}

	return resp
}

func respondWithToken(db *gorm.DB, c *fiber.Ctx, user *authModel.UserModel, message string) error {
	token, err := helper.GenerateToken(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, message, authDto.LoginResponse{
		Token: token,
		User:  buildAuthUser(db, user),
	})
}
