package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/progress/streaks/model"
)

// Initialize membuat baris streak nol. Idempotent: duplikat diabaikan.
func Initialize(db *gorm.DB, userID uuid.UUID) error {
	row := model.UserStreakModel{UserID: userID}
	if err := db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		log.Println("[ERROR] Gagal inisialisasi user_streaks:", err)
		return err
	}
	return nil
}

func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UpdateStreak menerapkan aturan kalender UTC:
// aktivitas kemarin -> streak +1; hari ini sudah tercatat -> no-op;
// selain itu -> reset ke 1. Longest selalu max(longest, current).
func UpdateStreak(db *gorm.DB, userID uuid.UUID) (*model.UserStreakModel, error) {
	var row model.UserStreakModel
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

	today := utcDate(time.Now())
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case row.LastActiveDate != nil && utcDate(*row.LastActiveDate).Equal(today):
		return &row, nil

	case row.LastActiveDate != nil && utcDate(*row.LastActiveDate).Equal(yesterday):
		row.CurrentStreak++

	default:
		row.CurrentStreak = 1
	}

	if row.CurrentStreak > row.LongestStreak {
		row.LongestStreak = row.CurrentStreak
	}
	row.LastActiveDate = &today

	if err := db.Model(&model.UserStreakModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":   row.CurrentStreak,
			"longest_streak":   row.LongestStreak,
			"last_active_date": today,
		}).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByUser mengembalikan baris streak, membuatnya kalau belum ada.
func GetByUser(db *gorm.DB, userID uuid.UUID) (*model.UserStreakModel, error) {
	var row model.UserStreakModel
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
