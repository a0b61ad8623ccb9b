package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserID membaca user_id yang disimpan auth middleware di locals.
// Bentuknya bisa uuid.UUID atau string, tergantung jalur masuknya.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token tidak valid")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id tidak valid dalam token")
		}
		return parsed, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id tidak dikenali")
	}
}
