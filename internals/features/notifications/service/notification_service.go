package service

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/notifications/model"
)

// Create menulis satu notifikasi in-app (tidak ada push delivery).
func Create(db *gorm.DB, userID uuid.UUID, title, body string, data datatypes.JSON) (*model.NotificationModel, error) {
	row := model.NotificationModel{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByUser mengembalikan notifikasi user, terbaru dulu.
func FindByUser(db *gorm.DB, userID uuid.UUID, unreadOnly bool, limit int) ([]model.NotificationModel, error) {
	q := db.Where("user_id = ?", userID).Order("created_at DESC")
	if unreadOnly {
		q = q.Where("is_read = false")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.NotificationModel
	err := q.Find(&rows).Error
	return rows, err
}

// CountUnread menghitung notifikasi belum dibaca.
func CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}

// MarkAsRead menandai satu notifikasi milik user. false = tidak ditemukan.
func MarkAsRead(db *gorm.DB, userID uuid.UUID, notificationID uint) (bool, error) {
	res := db.Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkAllAsRead menandai semua dan mengembalikan jumlah yang berubah.
func MarkAllAsRead(db *gorm.DB, userID uuid.UUID) (int64, error) {
	res := db.Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
