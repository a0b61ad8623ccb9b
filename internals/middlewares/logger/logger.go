package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request beserta request-id yang
// dipasang di Locals("reqid") oleh middleware paling awal di main.go.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] [${locals:reqid}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
