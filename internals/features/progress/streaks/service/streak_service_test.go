package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"belajarku_backend/internals/features/progress/streaks/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserStreakModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM user_streaks")
	})
	return db
}

func setLastActive(t *testing.T, db *gorm.DB, userID uuid.UUID, daysAgo int) {
	date := utcDate(time.Now()).AddDate(0, 0, -daysAgo)
	err := db.Model(&model.UserStreakModel{}).
		Where("user_id = ?", userID).
		Update("last_active_date", date).Error
	require.NoError(t, err)
}

func TestUpdateStreakFirstActivity(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	row, err := UpdateStreak(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentStreak)
	assert.Equal(t, 1, row.LongestStreak)
	require.NotNil(t, row.LastActiveDate)
	assert.True(t, utcDate(*row.LastActiveDate).Equal(utcDate(time.Now())))
}

func TestUpdateStreakSameDayIsNoop(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	_, err := UpdateStreak(db, userID)
	require.NoError(t, err)
	row, err := UpdateStreak(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentStreak)
}

func TestUpdateStreakYesterdayIncrements(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	_, err := UpdateStreak(db, userID)
	require.NoError(t, err)
	setLastActive(t, db, userID, 1)

	row, err := UpdateStreak(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, row.CurrentStreak)
	assert.Equal(t, 2, row.LongestStreak)
}

func TestUpdateStreakGapResetsButKeepsLongest(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	require.NoError(t, Initialize(db, userID))
	err := db.Model(&model.UserStreakModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak": 5,
			"longest_streak": 5,
		}).Error
	require.NoError(t, err)
	setLastActive(t, db, userID, 3)

	row, err := UpdateStreak(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentStreak)
	assert.Equal(t, 5, row.LongestStreak)
}

func TestGetByUserCreatesRow(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	row, err := GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, row.CurrentStreak)
	assert.Nil(t, row.LastActiveDate)
}

func TestInitializeDistinctUsersGetDistinctRows(t *testing.T) {
	db := openTestDB(t)
	userA := uuid.New()
	userB := uuid.New()

	require.NoError(t, Initialize(db, userA))
	require.NoError(t, Initialize(db, userB))

	rowA, err := GetByUser(db, userA)
	require.NoError(t, err)
	rowB, err := GetByUser(db, userB)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rowA.ID)
	assert.NotEqual(t, uuid.Nil, rowB.ID)
	assert.NotEqual(t, rowA.ID, rowB.ID)
}
