package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyMapNoProgress(t *testing.T) {
	db := openTestDB(t)
	subjectLevelID, _ := seedLevels(t, db, 3)
	userID := uuid.New()

	entries, err := GetJourneyMap(db, userID, subjectLevelID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "current", entries[0].JourneyStatus)
	assert.True(t, entries[0].IsUnlocked)
	assert.Equal(t, "locked", entries[1].JourneyStatus)
	assert.False(t, entries[1].IsUnlocked)
	assert.Equal(t, "locked", entries[2].JourneyStatus)
}

func TestJourneyMapAfterFirstCompletion(t *testing.T) {
	db := openTestDB(t)
	subjectLevelID, levels := seedLevels(t, db, 3)
	userID := uuid.New()

	_, err := CompleteLevel(db, userID, levels[0].ID)
	require.NoError(t, err)

	entries, err := GetJourneyMap(db, userID, subjectLevelID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "completed", entries[0].JourneyStatus)
	// level 1 auto-start saat complete, jadi punya baris progress sendiri
	assert.Equal(t, "in_progress", entries[1].JourneyStatus)
	assert.True(t, entries[1].IsUnlocked)
	assert.Equal(t, "locked", entries[2].JourneyStatus)
}

func TestJourneyMapInProgressRowMirrorsStatus(t *testing.T) {
	db := openTestDB(t)
	subjectLevelID, levels := seedLevels(t, db, 2)
	userID := uuid.New()

	_, _, err := StartLevel(db, userID, levels[0].ID)
	require.NoError(t, err)

	entries, err := GetJourneyMap(db, userID, subjectLevelID)
	require.NoError(t, err)

	assert.Equal(t, "in_progress", entries[0].JourneyStatus)
	require.NotNil(t, entries[0].Status)
	assert.Equal(t, "in_progress", *entries[0].Status)
	assert.Equal(t, "locked", entries[1].JourneyStatus)
}

func TestJourneyMapEmptySubjectLevel(t *testing.T) {
	db := openTestDB(t)

	entries, err := GetJourneyMap(db, uuid.New(), 999)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
