package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "belajarku_backend/internals/features/users/auth/controller"
	"belajarku_backend/internals/middlewares"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan endpoint /api/auth/*.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/request-otp", middlewares.OtpRateLimiter(), ctrl.RequestOtp)
	auth.Post("/verify-email", ctrl.VerifyEmail)
	auth.Post("/reset-password", ctrl.ResetPassword)

	auth.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
