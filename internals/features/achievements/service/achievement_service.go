package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/achievements/model"
)

// Grant memberikan achievement ke user. Grant ganda diabaikan diam-diam
// supaya pemanggil tidak perlu cek duplikat dulu.
func Grant(db *gorm.DB, userID uuid.UUID, achievementID uint, metadata datatypes.JSON) (*model.UserAchievementModel, error) {
	row := model.UserAchievementModel{
		UserID:        userID,
		AchievementID: achievementID,
		Metadata:      metadata,
	}
	if err := db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.UserAchievementModel
			if err := db.Preload("Achievement").
				Where("user_id = ? AND achievement_id = ?", userID, achievementID).
				First(&existing).Error; err == nil {
				return &existing, nil
			}
			return nil, nil
		}
		log.Printf("[ERROR] grant achievement %d ke %s: %v", achievementID, userID, err)
		return nil, err
	}
	return &row, nil
}

// GrantByCode mencari achievement lewat code lalu memberikannya.
func GrantByCode(db *gorm.DB, userID uuid.UUID, code string, metadata datatypes.JSON) error {
	var ach model.AchievementModel
	if err := db.First(&ach, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	_, err := Grant(db, userID, ach.ID, metadata)
	return err
}

// FindAll mengembalikan semua achievement urut created_at.
func FindAll(db *gorm.DB) ([]model.AchievementModel, error) {
	var rows []model.AchievementModel
	err := db.Order("created_at ASC").Find(&rows).Error
	return rows, err
}

// FindByUser mengembalikan grant milik user, terbaru dulu.
func FindByUser(db *gorm.DB, userID uuid.UUID) ([]model.UserAchievementModel, error) {
	var rows []model.UserAchievementModel
	err := db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Find(&rows).Error
	return rows, err
}
