package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "belajarku_backend/internals/features/learning/catalog/controller"
)

// CatalogRoutes mendaftarkan endpoint katalog read-only di bawah /learning
// (grup sudah ber-AuthMiddleware).
func CatalogRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := catalogController.NewCatalogController(db)

	learning := api.Group("/learning")

	learning.Get("/subjects", ctrl.GetAllSubjects)
	learning.Get("/subjects/class/:id", ctrl.GetSubjectsByClass)
	learning.Get("/subjects/:id", ctrl.GetSubjectByID)
	learning.Get("/subjects/:id/levels", ctrl.GetLevelsBySubject)
	learning.Get("/subjects/:id/subject-levels", ctrl.GetSubjectLevelsBySubject)

	learning.Get("/classes/:id/subjects", ctrl.GetSubjectsByClass)

	learning.Get("/levels/subject-level/:id", ctrl.GetLevelsBySubjectLevel)
	learning.Get("/levels/:id", ctrl.GetLevelByID)
	learning.Get("/levels/:id/materials", ctrl.GetMaterialsByLevel)

	learning.Get("/subject-levels/:id/levels", ctrl.GetLevelsBySubjectLevel)
}
