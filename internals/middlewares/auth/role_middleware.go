package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles membatasi route untuk role tertentu (dipakai grup admin).
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak: role tidak diizinkan")
		}
		return c.Next()
	}
}
