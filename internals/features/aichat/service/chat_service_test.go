package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"belajarku_backend/internals/features/aichat/model"
	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
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
		&model.AIChatSessionModel{},
		&model.AIChatMessageModel{},
	))
	return db
}

func TestFindMessagesRejectsForeignSession(t *testing.T) {
	db := openTestDB(t)
	owner := uuid.New()

	session, err := CreateSession(db, owner, nil, nil)
	require.NoError(t, err)

	_, err = FindMessages(db, uuid.New(), session.ID)
	require.Error(t, err)

	rows, err := FindMessages(db, owner, session.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBuildTurnsMapsSenders(t *testing.T) {
	db := openTestDB(t)
	session, err := CreateSession(db, uuid.New(), nil, nil)
	require.NoError(t, err)

	msgs := []model.AIChatMessageModel{
		{SessionID: session.ID, Sender: "user", Message: "Apa itu pecahan?"},
		{SessionID: session.ID, Sender: "bot", Message: "Coba pikirkan sepotong kue..."},
		{SessionID: session.ID, Sender: "user", Message: "Oh, bagian dari keseluruhan?"},
	}
	require.NoError(t, db.Create(&msgs).Error)

	turns, err := buildTurns(db, session.ID)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.Equal(t, "user", turns[2].Role)
}

func TestBuildSystemPromptIncludesContext(t *testing.T) {
	subject := &catalogModel.SubjectModel{Title: "Matematika", Description: "Berhitung dasar"}
	level := &catalogModel.LevelModel{Title: "Pecahan"}

	prompt := buildSystemPrompt(&model.AIChatSessionModel{Subject: subject, Level: level})
	assert.Contains(t, prompt, "Mata Pelajaran: Matematika")
	assert.Contains(t, prompt, "Deskripsi: Berhitung dasar")
	assert.Contains(t, prompt, "Level: Pecahan")

	bare := buildSystemPrompt(&model.AIChatSessionModel{})
	assert.NotContains(t, bare, "Konteks Pembelajaran")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
