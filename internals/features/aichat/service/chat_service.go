package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/aichat/model"
)

const fallbackReply = "Maaf, AI tutor sedang tidak bisa dihubungi. Coba kirim pertanyaanmu lagi beberapa saat lagi ya."

// CreateSession membuat sesi chat baru dengan konteks subject/level opsional.
func CreateSession(db *gorm.DB, userID uuid.UUID, subjectID, levelID *uint) (*model.AIChatSessionModel, error) {
	session := model.AIChatSessionModel{
		UserID:    userID,
		SubjectID: subjectID,
		LevelID:   levelID,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FindSessions mengembalikan sesi milik user, terbaru dulu.
func FindSessions(db *gorm.DB, userID uuid.UUID) ([]model.AIChatSessionModel, error) {
	var rows []model.AIChatSessionModel
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// findOwnedSession memuat sesi dan memastikan miliknya pemanggil.
func findOwnedSession(db *gorm.DB, userID uuid.UUID, sessionID uint) (*model.AIChatSessionModel, error) {
	var session model.AIChatSessionModel
	err := db.Preload("Subject").Preload("Level").
		First(&session, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && session.UserID != userID) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Sesi chat tidak ditemukan")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca sesi chat")
	}
	return &session, nil
}

// FindMessages mengembalikan isi percakapan urut waktu.
func FindMessages(db *gorm.DB, userID uuid.UUID, sessionID uint) ([]model.AIChatMessageModel, error) {
	if _, err := findOwnedSession(db, userID, sessionID); err != nil {
		return nil, err
	}

	var rows []model.AIChatMessageModel
	err := db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}
	return rows, nil
}

// SendMessage menyimpan pesan user, memanggil Gemini, lalu menyimpan
// balasan bot. Kegagalan API tidak menggagalkan request: bot membalas
// dengan pesan fallback.
func SendMessage(db *gorm.DB, userID uuid.UUID, sessionID uint, message string) (*model.AIChatMessageModel, *model.AIChatMessageModel, error) {
	session, err := findOwnedSession(db, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	userMsg := model.AIChatMessageModel{
		SessionID: sessionID,
		Sender:    "user",
		Message:   message,
	}
	if err := db.Create(&userMsg).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pesan")
	}

	turns, err := buildTurns(db, sessionID)
	if err != nil {
		log.Printf("[ERROR] baca riwayat sesi %d: %v", sessionID, err)
		turns = []ChatTurn{{Role: "user", Content: message}}
	}

	var botMsg model.AIChatMessageModel
	reply, err := GenerateTutorReply(turns, buildSystemPrompt(session))
	if err != nil {
		log.Printf("[ERROR] Gemini sesi %d: %v", sessionID, err)
		botMsg = model.AIChatMessageModel{
			SessionID: sessionID,
			Sender:    "bot",
			Message:   fallbackReply,
			Metadata:  datatypes.JSON([]byte(`{"model":"fallback"}`)),
		}
	} else {
		meta, _ := json.Marshal(map[string]interface{}{
			"model":         reply.Model,
			"finish_reason": reply.FinishReason,
			"usage":         reply.Usage,
		})
		botMsg = model.AIChatMessageModel{
			SessionID: sessionID,
			Sender:    "bot",
			Message:   reply.Content,
			Metadata:  datatypes.JSON(meta),
		}
	}

	if err := db.Create(&botMsg).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan balasan")
	}
	return &userMsg, &botMsg, nil
}

func buildTurns(db *gorm.DB, sessionID uint) ([]ChatTurn, error) {
	var rows []model.AIChatMessageModel
	if err := db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	turns := make([]ChatTurn, 0, len(rows))
	for _, row := range rows {
		role := "user"
		if row.Sender == "bot" {
			role = "assistant"
		}
		turns = append(turns, ChatTurn{Role: role, Content: row.Message})
	}
	return turns, nil
}

// buildSystemPrompt menyusun instruksi tutor: membimbing, bukan memberi
// jawaban jadi, dalam bahasa Indonesia, plus konteks subject/level sesi.
func buildSystemPrompt(session *model.AIChatSessionModel) string {
	prompt := `Kamu adalah asisten AI tutor yang sabar dan edukatif untuk membantu siswa belajar.
Tugasmu adalah membantu siswa memahami materi, menyelesaikan tugas, dan menjawab pertanyaan mereka.

Panduan dalam memberikan bantuan:
1. Jangan langsung memberikan jawaban lengkap, tetapi bimbing siswa untuk menemukan jawabannya sendiri
2. Berikan penjelasan yang jelas dan bertahap
3. Gunakan contoh yang relevan dan mudah dipahami
4. Jika siswa bingung, tanyakan lebih detail untuk memahami masalahnya
5. Berikan motivasi dan dukungan positif
6. Jawab dalam bahasa Indonesia yang baik dan benar`

	if session.Subject != nil {
		prompt += fmt.Sprintf("\n\nKonteks Pembelajaran:\n- Mata Pelajaran: %s", session.Subject.Title)
		if session.Subject.Description != "" {
			prompt += fmt.Sprintf("\n- Deskripsi: %s", session.Subject.Description)
		}
	}
	if session.Level != nil {
		prompt += fmt.Sprintf("\n- Level: %s", session.Level.Title)
		if session.Level.Description != "" {
			prompt += fmt.Sprintf("\n- Deskripsi Level: %s", session.Level.Description)
		}
	}
	return prompt
}
