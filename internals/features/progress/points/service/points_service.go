package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/progress/points/model"
)

// Initialize membuat baris poin bernilai nol. Idempotent: duplikat diabaikan.
func Initialize(db *gorm.DB, userID uuid.UUID) error {
	row := model.UserPointsModel{UserID: userID}
	if err := db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		log.Println("[ERROR] Gagal inisialisasi user_points:", err)
		return err
	}
	return nil
}

// AddPoints menambah ketiga counter sekaligus dalam satu UPDATE additive.
// points <= 0 adalah no-op. Baris yang belum ada dibuat dulu (self-healing).
func AddPoints(db *gorm.DB, userID uuid.UUID, points int) error {
	if points <= 0 {
		return nil
	}

	res := db.Model(&model.UserPointsModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_points":   gorm.Expr("total_points + ?", points),
			"weekly_points":  gorm.Expr("weekly_points + ?", points),
			"monthly_points": gorm.Expr("monthly_points + ?", points),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	if err := Initialize(db, userID); err != nil {
		return err
	}
	return db.Model(&model.UserPointsModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_points":   gorm.Expr("total_points + ?", points),
			"weekly_points":  gorm.Expr("weekly_points + ?", points),
			"monthly_points": gorm.Expr("monthly_points + ?", points),
		}).Error
}

// GetByUser mengembalikan baris poin, membuatnya kalau belum ada.
func GetByUser(db *gorm.DB, userID uuid.UUID) (*model.UserPointsModel, error) {
	var row model.UserPointsModel
	err := db.First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := Initialize(db, userID); err != nil {
			return nil, err
		}
		err = db.First(&row, "user_id = ?", userID).Error
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
