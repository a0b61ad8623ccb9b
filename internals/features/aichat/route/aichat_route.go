package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aichatController "belajarku_backend/internals/features/aichat/controller"
)

// AIChatRoutes mendaftarkan endpoint /ai-chat (grup sudah ber-auth).
func AIChatRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := aichatController.NewAIChatController(db)

	chat := api.Group("/ai-chat")
	chat.Post("/sessions", ctrl.CreateSession)
	chat.Get("/sessions", ctrl.GetSessions)
	chat.Get("/sessions/:sessionId/messages", ctrl.GetMessages)
	chat.Post("/sessions/:sessionId/messages", ctrl.SendMessage)
	chat.Get("/test-api-key", ctrl.TestAPIKey)
}
