package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
	"belajarku_backend/internals/features/users/profile/model"
)

// FindByUser mengambil profil user, membuat baris kosong kalau belum ada
// (akun lama yang dibuat sebelum baris profil otomatis).
func FindByUser(db *gorm.DB, userID uuid.UUID) (*model.UserProfileModel, error) {
	var profile model.UserProfileModel
	err := db.Preload("GradeLevel").Preload("Class").
		First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfileModel{UserID: userID}
		if err := db.Create(&profile).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		err = db.First(&profile, "user_id = ?", userID).Error
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// IsComplete: student harus punya full_name, gender, grade_level, class,
// dan minimal satu subject; role lain cukup full_name.
func IsComplete(db *gorm.DB, userID uuid.UUID, role string) bool {
	var profile model.UserProfileModel
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return false
	}

	if role != "student" {
		return profile.FullName != ""
	}

	if profile.FullName == "" || profile.Gender == "" ||
		profile.GradeLevelID == nil || profile.ClassID == nil {
		return false
	}

	var subjectCount int64
	if err := db.Model(&model.UserSubjectModel{}).
		Where("user_id = ?", userID).
		Count(&subjectCount).Error; err != nil {
		return false
	}
	return subjectCount > 0
}

// ValidateClassGrade memastikan kelas memang milik grade level tersebut.
func ValidateClassGrade(db *gorm.DB, classID, gradeLevelID uint) (bool, error) {
	var count int64
	err := db.Model(&catalogModel.ClassModel{}).
		Where("id = ? AND grade_level_id = ?", classID, gradeLevelID).
		Count(&count).Error
	return count > 0, err
}

// ValidateSubjectIDs mengembalikan id yang tidak ada di tabel subjects.
func ValidateSubjectIDs(db *gorm.DB, subjectIDs []uint) ([]uint, error) {
	var found []uint
	if err := db.Model(&catalogModel.SubjectModel{}).
		Where("id IN ?", subjectIDs).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	foundSet := make(map[uint]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}

	var missing []uint
	for _, id := range subjectIDs {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// SetUserSubjects mengganti seluruh pilihan subject user (replace-all).
func SetUserSubjects(db *gorm.DB, userID uuid.UUID, subjectIDs []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&model.UserSubjectModel{}).Error; err != nil {
			return err
		}
		rows := make([]model.UserSubjectModel, 0, len(subjectIDs))
		for _, id := range subjectIDs {
			rows = append(rows, model.UserSubjectModel{UserID: userID, SubjectID: id})
		}
		return tx.Create(&rows).Error
	})
}

// GetUserSubjects mengambil subject pilihan user beserta detailnya.
func GetUserSubjects(db *gorm.DB, userID uuid.UUID) ([]model.UserSubjectModel, error) {
	var rows []model.UserSubjectModel
	err := db.Preload("Subject").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
