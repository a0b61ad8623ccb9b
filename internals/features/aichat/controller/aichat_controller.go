package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	"belajarku_backend/internals/features/aichat/dto"
	"belajarku_backend/internals/features/aichat/service"
	helper "belajarku_backend/internals/helpers"
)

var validateChat = validator.New()

type AIChatController struct {
	DB *gorm.DB
}

func NewAIChatController(db *gorm.DB) *AIChatController {
	return &AIChatController{DB: db}
}

// POST /api/ai-chat/sessions
func (cc *AIChatController) CreateSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	session, err := service.CreateSession(cc.DB, userID, req.SubjectID, req.LevelID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat sesi chat")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi chat dibuat", session)
}

// GET /api/ai-chat/sessions
func (cc *AIChatController) GetSessions(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sessions, err := service.FindSessions(cc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sesi chat")
	}
	return helper.Success(c, "", sessions)
}

// GET /api/ai-chat/sessions/:sessionId/messages
func (cc *AIChatController) GetMessages(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil || sessionID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	messages, err := service.FindMessages(cc.DB, userID, uint(sessionID))
	if err != nil {
		return err
	}
	return helper.Success(c, "", messages)
}

// POST /api/ai-chat/sessions/:sessionId/messages
func (cc *AIChatController) SendMessage(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil || sessionID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.ErrorWithFields(c, fiber.StatusBadRequest, []helper.FieldError{
			{Field: "message", Message: "Message is required", Code: "MESSAGE_REQUIRED"},
		})
	}

	userMsg, botMsg, err := service.SendMessage(cc.DB, userID, uint(sessionID), req.Message)
	if err != nil {
		return err
	}
	return helper.Success(c, "", fiber.Map{
		"user_message": userMsg,
		"ai_message":   botMsg,
	})
}

// GET /api/ai-chat/test-api-key — cek konfigurasi Gemini tanpa membuat sesi
func (cc *AIChatController) TestAPIKey(c *fiber.Ctx) error {
	if configs.GeminiAPIKey == "" {
		return helper.Error(c, fiber.StatusBadRequest, "GEMINI_API_KEY belum dikonfigurasi")
	}

	reply, err := service.GenerateTutorReply(
		[]service.ChatTurn{{Role: "user", Content: "Balas dengan satu kata: siap"}},
		"Kamu adalah asisten uji koneksi.",
	)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gemini tidak dapat dihubungi: "+err.Error())
	}
	return helper.Success(c, "", fiber.Map{"model": reply.Model, "reply": reply.Content})
}
