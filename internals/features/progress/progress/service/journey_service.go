package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogService "belajarku_backend/internals/features/learning/catalog/service"
	"belajarku_backend/internals/features/progress/progress/dto"
	"belajarku_backend/internals/features/progress/progress/model"
)

// GetJourneyMap membangun peta perjalanan satu subject_level: scan linear
// kiri-ke-kanan per level_index, tidak ada state turunan yang dipersist.
//
// Aturan unlock:
//   - baris progress ada  -> journey_status mengikuti statusnya
//   - level pertama       -> current (selalu terbuka)
//   - level sebelumnya completed -> current
//   - selain itu          -> locked
func GetJourneyMap(db *gorm.DB, userID uuid.UUID, subjectLevelID uint) ([]dto.JourneyMapEntry, error) {
	levels, err := catalogService.FindLevelsBySubjectLevel(db, subjectLevelID)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return []dto.JourneyMapEntry{}, nil
	}

	levelIDs := make([]uint, 0, len(levels))
	for _, l := range levels {
		levelIDs = append(levelIDs, l.ID)
	}

	var progressRows []model.UserProgressModel
	if err := db.Where("user_id = ? AND level_id IN ?", userID, levelIDs).
		Find(&progressRows).Error; err != nil {
		return nil, err
	}

	progressMap := make(map[uint]*model.UserProgressModel, len(progressRows))
	for i := range progressRows {
		progressMap[progressRows[i].LevelID] = &progressRows[i]
	}

	entries := make([]dto.JourneyMapEntry, 0, len(levels))
	for i, level := range levels {
		entry := dto.JourneyMapEntry{
			LevelID:       level.ID,
			LevelIndex:    level.LevelIndex,
			Title:         level.Title,
			PointsReward:  level.PointsReward,
			JourneyStatus: "locked",
		}

		if p, ok := progressMap[level.ID]; ok {
			status := p.Status
			entry.Status = &status
			entry.JourneyStatus = p.Status
			entry.IsUnlocked = true
			entry.Progress = p.Progress
			entry.PointsEarned = p.PointsEarned
			startedAt := p.StartedAt
			entry.StartedAt = &startedAt
			entry.CompletedAt = p.CompletedAt
		} else if i == 0 {
			entry.JourneyStatus = "current"
			entry.IsUnlocked = true
		} else if prev, ok := progressMap[levels[i-1].ID]; ok && prev.Status == model.StatusCompleted {
			entry.JourneyStatus = "current"
			entry.IsUnlocked = true
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
