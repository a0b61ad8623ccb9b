package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"belajarku_backend/internals/features/progress/points/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserPointsModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM user_points")
	})
	return db
}

func TestInitializeIdempotent(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	require.NoError(t, Initialize(db, userID))
	require.NoError(t, Initialize(db, userID))

	var count int64
	db.Model(&model.UserPointsModel{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(1), count)
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

	// id diisi di sisi aplikasi, dua user tidak boleh bentrok di primary key
	assert.NotEqual(t, uuid.Nil, rowA.ID)
	assert.NotEqual(t, uuid.Nil, rowB.ID)
	assert.NotEqual(t, rowA.ID, rowB.ID)
}

func TestAddPointsZeroIsNoop(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	require.NoError(t, Initialize(db, userID))

	require.NoError(t, AddPoints(db, userID, 0))
	require.NoError(t, AddPoints(db, userID, -5))

	row, err := GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, row.TotalPoints)
}

func TestAddPointsIncrementsAllCounters(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	require.NoError(t, Initialize(db, userID))

	require.NoError(t, AddPoints(db, userID, 50))
	require.NoError(t, AddPoints(db, userID, 25))

	row, err := GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 75, row.TotalPoints)
	assert.Equal(t, 75, row.WeeklyPoints)
	assert.Equal(t, 75, row.MonthlyPoints)
}

func TestAddPointsSelfHealsMissingRow(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	// Tanpa Initialize: baris harus dibuat lalu di-update.
	require.NoError(t, AddPoints(db, userID, 40))

	row, err := GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 40, row.TotalPoints)
}

func TestGetByUserCreatesRow(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()

	row, err := GetByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, row.UserID)
	assert.Equal(t, 0, row.TotalPoints)
}
