package controller

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointsService "belajarku_backend/internals/features/progress/points/service"
	streakService "belajarku_backend/internals/features/progress/streaks/service"
	"belajarku_backend/internals/features/users/profile/dto"
	"belajarku_backend/internals/features/users/profile/model"
	"belajarku_backend/internals/features/users/profile/service"
	helper "belajarku_backend/internals/helpers"
)

var validateProfile = validator.New()

const avatarBucket = "avatars"

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/profile
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	profile, err := service.FindByUser(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	subjects, err := service.GetUserSubjects(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil subject pilihan")
	}

	data := fiber.Map{
		"profile":          profile,
		"subjects":         subjects,
		"profile_complete": service.IsComplete(pc.DB, userID, role),
	}
	if points, err := pointsService.GetByUser(pc.DB, userID); err == nil {
		data["points"] = points
	}
	if streak, err := streakService.GetByUser(pc.DB, userID); err == nil {
		data["streak"] = streak
	}

	return helper.Success(c, "", data)
}

// PUT /api/profile/complete — onboarding
func (pc *ProfileController) CompleteProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	var req dto.CompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateProfile.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if fieldErr := pc.validateClassAndGrade(req.ClassID, req.GradeLevelID); fieldErr != nil {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{*fieldErr})
	}

	missing, err := service.ValidateSubjectIDs(pc.DB, req.SubjectIDs)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa subject")
	}
	if len(missing) > 0 {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{{
			Field:   "subject_ids",
			Message: fmt.Sprintf("Subject tidak ditemukan: %v", missing),
			Code:    "INVALID_SUBJECT_IDS",
		}})
	}

	if _, err := service.FindByUser(pc.DB, userID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyiapkan profil")
	}

	if err := pc.DB.Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"full_name":      req.FullName,
			"gender":         req.Gender,
			"grade_level_id": req.GradeLevelID,
			"class_id":       req.ClassID,
			"bio":            req.Bio,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	if err := service.SetUserSubjects(pc.DB, userID, req.SubjectIDs); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan subject pilihan")
	}

	profile, err := service.FindByUser(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.Success(c, "Profil berhasil dilengkapi", fiber.Map{
		"profile":          profile,
		"profile_complete": service.IsComplete(pc.DB, userID, role),
	})
}

// PUT /api/profile — update parsial
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateProfile.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	current, err := service.FindByUser(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.GradeLevelID != nil {
		updates["grade_level_id"] = *req.GradeLevelID
	}
	if req.ClassID != nil {
		updates["class_id"] = *req.ClassID
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		trimmed := strings.TrimSpace(*req.AvatarURL)
		if trimmed == "" {
			updates["avatar_url"] = nil
		} else {
			if _, err := url.ParseRequestURI(trimmed); err != nil {
				return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{{
					Field:   "avatar_url",
					Message: "avatar_url harus berupa URL valid",
					Code:    "INVALID_AVATAR_URL",
				}})
			}
			updates["avatar_url"] = trimmed
		}
	}

	// validasi pasangan class-grade pakai nilai efektif (request atau existing)
	if req.ClassID != nil || req.GradeLevelID != nil {
		effectiveClass := current.ClassID
		effectiveGrade := current.GradeLevelID
		if req.ClassID != nil {
			effectiveClass = req.ClassID
		}
		if req.GradeLevelID != nil {
			effectiveGrade = req.GradeLevelID
		}
		if effectiveClass != nil && effectiveGrade != nil {
			ok, err := service.ValidateClassGrade(pc.DB, *effectiveClass, *effectiveGrade)
			if err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
			}
			if !ok {
				return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{{
					Field:   "class_id",
					Message: "Kelas tidak sesuai dengan grade level yang dipilih",
					Code:    "INVALID_CLASS_GRADE",
				}})
			}
		}
	}

	if len(updates) > 0 {
		if err := pc.DB.Model(&model.UserProfileModel{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
		}
	}

	profile, err := service.FindByUser(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.Success(c, "Profil berhasil diperbarui", fiber.Map{"profile": profile})
}

// POST /api/profile/avatar — upload multipart, convert webp, simpan ke storage
func (pc *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{{
			Field:   "avatar",
			Message: "File avatar wajib diunggah",
			Code:    "AVATAR_REQUIRED",
		}})
	}

	if err := helper.ValidateImageUpload(fh); err != nil {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{{
			Field:   "avatar",
			Message: err.Error(),
			Code:    "INVALID_AVATAR",
		}})
	}

	buf, err := helper.ConvertToWebP(fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Gagal memproses gambar")
	}

	current, err := service.FindByUser(pc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	objectPath := helper.GenerateUniqueFilename("user-"+userID.String(), "avatar.webp")
	publicURL, err := helper.UploadToSupabase(avatarBucket, objectPath, "image/webp", buf)
	if err != nil {
		log.Printf("[ERROR] upload avatar user %s: %v", userID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah avatar")
	}

	// avatar lama dihapus best-effort
	if current.AvatarURL != nil {
		if oldPath, ok := helper.ObjectPathFromPublicURL(*current.AvatarURL, avatarBucket); ok {
			if err := helper.DeleteFromSupabase(avatarBucket, oldPath); err != nil {
				log.Printf("[ERROR] hapus avatar lama user %s: %v", userID, err)
			}
		}
	}

	if err := pc.DB.Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Update("avatar_url", publicURL).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}

	return helper.Success(c, "Avatar berhasil diperbarui", fiber.Map{"avatar_url": publicURL})
}

func (pc *ProfileController) validateClassAndGrade(classID, gradeLevelID uint) *helper.FieldError {
	var count int64
	if err := pc.DB.Table("grade_levels").Where("id = ?", gradeLevelID).Count(&count).Error; err != nil || count == 0 {
		return &helper.FieldError{Field: "grade_level_id", Message: "Grade level tidak ditemukan", Code: "GRADE_LEVEL_NOT_FOUND"}
	}
	if err := pc.DB.Table("classes").Where("id = ?", classID).Count(&count).Error; err != nil || count == 0 {
		return &helper.FieldError{Field: "class_id", Message: "Kelas tidak ditemukan", Code: "CLASS_NOT_FOUND"}
	}

	ok, err := service.ValidateClassGrade(pc.DB, classID, gradeLevelID)
	if err != nil || !ok {
		return &helper.FieldError{Field: "class_id", Message: "Kelas tidak sesuai dengan grade level yang dipilih", Code: "INVALID_CLASS_GRADE"}
	}
	return nil
}
