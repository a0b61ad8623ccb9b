package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogService "belajarku_backend/internals/features/learning/catalog/service"
	pointsService "belajarku_backend/internals/features/progress/points/service"
	"belajarku_backend/internals/features/progress/progress/dto"
	"belajarku_backend/internals/features/progress/progress/model"
	streakService "belajarku_backend/internals/features/progress/streaks/service"
)

func emptyProgress() datatypes.JSON {
	return datatypes.JSON([]byte(`{"percent":0}`))
}

// StartLevel membuat baris progress baru, atau mengembalikan yang sudah ada.
// bool kedua = true kalau baris baru dibuat.
func StartLevel(db *gorm.DB, userID uuid.UUID, levelID uint) (*model.UserProgressModel, bool, error) {
	level, err := catalogService.FindLevelByID(db, levelID)
	if err != nil {
		return nil, false, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca level")
	}
	if level == nil {
		return nil, false, fiber.NewError(fiber.StatusNotFound, "Level tidak ditemukan")
	}

	var existing model.UserProgressModel
	err = db.Where("user_id = ? AND level_id = ?", userID, levelID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
	}

	row := model.UserProgressModel{
		UserID:   userID,
		LevelID:  levelID,
		Status:   model.StatusInProgress,
		Progress: emptyProgress(),
	}
	if err := db.Create(&row).Error; err != nil {
		// kalah balapan dengan request lain untuk (user, level) yang sama
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("user_id = ? AND level_id = ?", userID, levelID).First(&existing).Error; err == nil {
				return &existing, false, nil
			}
		}
		return nil, false, fiber.NewError(fiber.StatusInternalServerError, "Gagal memulai level")
	}
	return &row, true, nil
}

// GetProgress mengambil progress satu level; 404 kalau belum pernah start.
func GetProgress(db *gorm.DB, userID uuid.UUID, levelID uint) (*model.UserProgressModel, error) {
	var row model.UserProgressModel
	err := db.Preload("Level").
		Where("user_id = ? AND level_id = ?", userID, levelID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Progress tidak ditemukan. Mulai level dulu.")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
	}
	return &row, nil
}

// UpdateProgress merge payload bebas ke blob progress. Hanya percent yang
// dikontrak: di-clamp ke [0,100]. Status tidak pernah berubah di sini.
func UpdateProgress(db *gorm.DB, userID uuid.UUID, levelID uint, req *dto.UpdateProgressRequest) (*model.UserProgressModel, error) {
	var row model.UserProgressModel
	err := db.Where("user_id = ? AND level_id = ?", userID, levelID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Progress tidak ditemukan. Mulai level dulu.")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
	}

	merged := map[string]interface{}{}
	if len(row.Progress) > 0 {
		_ = json.Unmarshal(row.Progress, &merged)
	}
	for k, v := range req.Progress {
		merged[k] = v
	}
	if req.Percent != nil {
		p := *req.Percent
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		merged["percent"] = p
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload progress tidak valid")
	}

	if err := db.Model(&row).Update("progress", datatypes.JSON(raw)).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui progress")
	}
	row.Progress = datatypes.JSON(raw)
	return &row, nil
}

// CompleteLevel adalah transisi satu arah in_progress -> completed.
// Langkah otoritatifnya satu UPDATE kondisional; poin, streak, dan auto-start
// level berikutnya hanyalah side effect best-effort yang tidak pernah
// menggagalkan response.
func CompleteLevel(db *gorm.DB, userID uuid.UUID, levelID uint) (*dto.CompleteLevelResponse, error) {
	level, err := catalogService.FindLevelByID(db, levelID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca level")
	}
	if level == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Level tidak ditemukan")
	}
	if level.SubjectLevelID == 0 {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Data level tidak lengkap")
	}

	var row model.UserProgressModel
	err = db.Where("user_id = ? AND level_id = ?", userID, levelID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// user boleh complete tanpa start eksplisit
		row = model.UserProgressModel{
			UserID:   userID,
			LevelID:  levelID,
			Status:   model.StatusInProgress,
			Progress: emptyProgress(),
		}
		if err := db.Create(&row).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyiapkan progress")
		}
	case err != nil:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
	case row.Status == model.StatusCompleted:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Level sudah diselesaikan")
	}

	pointsReward := level.PointsReward
	now := time.Now()

	// UPDATE kondisional menutup race dua complete bersamaan:
	// hanya satu request yang melihat RowsAffected > 0.
	res := db.Model(&model.UserProgressModel{}).
		Where("user_id = ? AND level_id = ? AND status <> ?", userID, levelID, model.StatusCompleted).
		Updates(map[string]interface{}{
			"status":        model.StatusCompleted,
			"points_earned": pointsReward,
			"completed_at":  now,
		})
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyelesaikan level")
	}
	if res.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Level sudah diselesaikan")
	}

	row.Status = model.StatusCompleted
	row.PointsEarned = pointsReward
	row.CompletedAt = &now

	// ---- side effect best-effort, gagal hanya dilog ----

	if pointsReward > 0 {
		if err := pointsService.AddPoints(db, userID, pointsReward); err != nil {
			log.Printf("[ERROR] tambah poin user %s level %d: %v", userID, levelID, err)
		}
	}

	if _, err := streakService.UpdateStreak(db, userID); err != nil {
		log.Printf("[ERROR] update streak user %s: %v", userID, err)
	}

	resp := &dto.CompleteLevelResponse{UserProgressModel: row}

	nextLevel, err := catalogService.FindNextLevel(db, level.SubjectLevelID, level.LevelIndex)
	if err != nil {
		log.Printf("[ERROR] cari level berikutnya setelah %d: %v", levelID, err)
	} else if nextLevel != nil {
		resp.NextLevelUnlocked = true
		resp.NextLevelID = &nextLevel.ID

		var existing model.UserProgressModel
		err := db.Where("user_id = ? AND level_id = ?", userID, nextLevel.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			next := model.UserProgressModel{
				UserID:   userID,
				LevelID:  nextLevel.ID,
				Status:   model.StatusInProgress,
				Progress: emptyProgress(),
			}
			if err := db.Create(&next).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Printf("[ERROR] auto-start level %d user %s: %v", nextLevel.ID, userID, err)
			}
		}
	}

	return resp, nil
}

// GetMyProgress mengembalikan semua progress user, terbaru dulu.
func GetMyProgress(db *gorm.DB, userID uuid.UUID, status string) ([]model.UserProgressModel, error) {
	q := db.Preload("Level").
		Preload("Level.SubjectLevel").
		Preload("Level.SubjectLevel.Subject").
		Preload("Level.SubjectLevel.Class").
		Preload("Level.SubjectLevel.Class.GradeLevel").
		Where("user_id = ?", userID).
		Order("started_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []model.UserProgressModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProgressStats menghitung total/completed/in_progress.
func GetProgressStats(db *gorm.DB, userID uuid.UUID) (*dto.ProgressStats, error) {
	var stats dto.ProgressStats
	base := db.Model(&model.UserProgressModel{}).Where("user_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", model.StatusCompleted).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", model.StatusInProgress).Count(&stats.InProgress).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
