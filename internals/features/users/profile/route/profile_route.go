package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "belajarku_backend/internals/features/users/profile/controller"
)

// ProfileRoutes mendaftarkan endpoint /profile (grup sudah ber-auth).
func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/complete", ctrl.CompleteProfile)
	profile.Put("/", ctrl.UpdateProfile)
	profile.Post("/avatar", ctrl.UploadAvatar)
}
