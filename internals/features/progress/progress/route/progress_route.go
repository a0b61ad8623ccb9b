package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "belajarku_backend/internals/features/progress/progress/controller"
)

// ProgressRoutes mendaftarkan endpoint tracker progress (grup sudah ber-auth).
func ProgressRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	progress := api.Group("/progress")

	progress.Post("/levels/:levelId/start", ctrl.StartLevel)
	progress.Get("/levels/:levelId", ctrl.GetLevelProgress)
	progress.Put("/levels/:levelId", ctrl.UpdateProgress)
	progress.Post("/levels/:levelId/complete", ctrl.CompleteLevel)

	progress.Get("/my-progress", ctrl.GetMyProgress)
	progress.Get("/stats", ctrl.GetProgressStats)
	progress.Get("/journey-map/:subjectLevelId", ctrl.GetJourneyMap)
}
