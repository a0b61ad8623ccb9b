package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
	pointsModel "belajarku_backend/internals/features/progress/points/model"
	pointsService "belajarku_backend/internals/features/progress/points/service"
	"belajarku_backend/internals/features/progress/progress/dto"
	"belajarku_backend/internals/features/progress/progress/model"
	streakModel "belajarku_backend/internals/features/progress/streaks/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalogModel.SubjectModel{},
		&catalogModel.SubjectLevelModel{},
		&catalogModel.LevelModel{},
		&model.UserProgressModel{},
		&pointsModel.UserPointsModel{},
		&streakModel.UserStreakModel{},
	))
	return db
}

// seedLevels membuat satu subject_level dengan n level berurutan.
func seedLevels(t *testing.T, db *gorm.DB, n int) (uint, []catalogModel.LevelModel) {
	subject := catalogModel.SubjectModel{Title: "IPA"}
	require.NoError(t, db.Create(&subject).Error)
	subjectLevel := catalogModel.SubjectLevelModel{SubjectID: subject.ID}
	require.NoError(t, db.Create(&subjectLevel).Error)

	levels := make([]catalogModel.LevelModel, 0, n)
	for i := 0; i < n; i++ {
		level := catalogModel.LevelModel{
			SubjectLevelID: subjectLevel.ID,
			LevelIndex:     i,
			Title:          "Level",
			PointsReward:   100,
		}
		require.NoError(t, db.Create(&level).Error)
		levels = append(levels, level)
	}
	return subjectLevel.ID, levels
}

func fiberCode(t *testing.T, err error) int {
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestStartLevelIdempotent(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 1)
	userID := uuid.New()

	row, created, err := StartLevel(db, userID, levels[0].ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.StatusInProgress, row.Status)

	again, created, err := StartLevel(db, userID, levels[0].ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, row.ID, again.ID)
}

func TestStartLevelUnknownLevel(t *testing.T) {
	db := openTestDB(t)
	_, _, err := StartLevel(db, uuid.New(), 999)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdateProgressClampsPercent(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 1)
	userID := uuid.New()

	_, _, err := StartLevel(db, userID, levels[0].ID)
	require.NoError(t, err)

	tooBig := 150
	row, err := UpdateProgress(db, userID, levels[0].ID, &dto.UpdateProgressRequest{Percent: &tooBig})
	require.NoError(t, err)
	assert.Contains(t, string(row.Progress), `"percent":100`)

	negative := -10
	row, err = UpdateProgress(db, userID, levels[0].ID, &dto.UpdateProgressRequest{Percent: &negative})
	require.NoError(t, err)
	assert.Contains(t, string(row.Progress), `"percent":0`)
}

func TestUpdateProgressRequiresStart(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 1)

	p := 50
	_, err := UpdateProgress(db, uuid.New(), levels[0].ID, &dto.UpdateProgressRequest{Percent: &p})
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestCompleteLevelAwardsPointsAndUnlocksNext(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 2)
	userID := uuid.New()

	_, _, err := StartLevel(db, userID, levels[0].ID)
	require.NoError(t, err)

	resp, err := CompleteLevel(db, userID, levels[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, resp.Status)
	assert.Equal(t, 100, resp.PointsEarned)
	assert.NotNil(t, resp.CompletedAt)
	assert.True(t, resp.NextLevelUnlocked)
	require.NotNil(t, resp.NextLevelID)
	assert.Equal(t, levels[1].ID, *resp.NextLevelID)

	// poin masuk ke counter user
	points, err := pointsService.GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 100, points.TotalPoints)

	// level berikutnya otomatis di-start
	var next model.UserProgressModel
	require.NoError(t, db.Where("user_id = ? AND level_id = ?", userID, levels[1].ID).First(&next).Error)
	assert.Equal(t, model.StatusInProgress, next.Status)
}

func TestCompleteLevelWithoutExplicitStart(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 1)

	resp, err := CompleteLevel(db, uuid.New(), levels[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, resp.Status)
	assert.False(t, resp.NextLevelUnlocked)
	assert.Nil(t, resp.NextLevelID)
}

func TestCompleteLevelIsOneWay(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 1)
	userID := uuid.New()

	_, err := CompleteLevel(db, userID, levels[0].ID)
	require.NoError(t, err)

	_, err = CompleteLevel(db, userID, levels[0].ID)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// complete kedua tidak menambah poin
	points, err := pointsService.GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 100, points.TotalPoints)
}

func TestGetProgressStats(t *testing.T) {
	db := openTestDB(t)
	_, levels := seedLevels(t, db, 3)
	userID := uuid.New()

	_, _, err := StartLevel(db, userID, levels[0].ID)
	require.NoError(t, err)
	_, err = CompleteLevel(db, userID, levels[0].ID)
	require.NoError(t, err)

	stats, err := GetProgressStats(db, userID)
	require.NoError(t, err)
	// complete level 0 auto-start level 1
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.InProgress)
}
