package service

import (
	"errors"

	"gorm.io/gorm"

	"belajarku_backend/internals/features/learning/catalog/model"
)

// FindLevelByID mengambil satu level. nil, nil kalau tidak ada.
func FindLevelByID(db *gorm.DB, levelID uint) (*model.LevelModel, error) {
	var level model.LevelModel
	err := db.First(&level, "id = ?", levelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// FindNextLevel mencari level dengan level_index persis satu di atas
// currentIndex pada subject_level yang sama. nil, nil kalau sudah terakhir.
func FindNextLevel(db *gorm.DB, subjectLevelID uint, currentIndex int) (*model.LevelModel, error) {
	var level model.LevelModel
	err := db.Where("subject_level_id = ? AND level_index = ?", subjectLevelID, currentIndex+1).
		First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// FindLevelsBySubjectLevel mengembalikan semua level terurut level_index.
func FindLevelsBySubjectLevel(db *gorm.DB, subjectLevelID uint) ([]model.LevelModel, error) {
	var levels []model.LevelModel
	err := db.Where("subject_level_id = ?", subjectLevelID).
		Order("level_index ASC").
		Find(&levels).Error
	return levels, err
}
