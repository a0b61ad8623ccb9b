package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/learning/catalog/model"
	"belajarku_backend/internals/features/learning/catalog/service"
	helper "belajarku_backend/internals/helpers"
)

type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// GET /api/subjects
func (cc *CatalogController) GetAllSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := cc.DB.Order("title ASC").Find(&subjects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar subject")
	}
	return helper.Success(c, "", subjects)
}

// GET /api/subjects/:id
func (cc *CatalogController) GetSubjectByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	var subject model.SubjectModel
	if err := cc.DB.First(&subject, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}
	return helper.Success(c, "", subject)
}

// GET /api/subjects/:id/subject-levels
func (cc *CatalogController) GetSubjectLevelsBySubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	var rows []model.SubjectLevelModel
	if err := cc.DB.
		Preload("Class").Preload("Class.GradeLevel").
		Where("subject_id = ? AND visible = true", id).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil subject level")
	}
	return helper.Success(c, "", rows)
}

// GET /api/classes/:id/subjects
func (cc *CatalogController) GetSubjectsByClass(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var rows []model.SubjectLevelModel
	if err := cc.DB.
		Preload("Subject").
		Where("class_id = ? AND visible = true", id).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil subject per kelas")
	}
	return helper.Success(c, "", rows)
}

// GET /api/subjects/:id/levels
func (cc *CatalogController) GetLevelsBySubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	var levels []model.LevelModel
	if err := cc.DB.
		Joins("JOIN subject_levels ON subject_levels.id = levels.subject_level_id").
		Where("subject_levels.subject_id = ?", id).
		Order("levels.level_index ASC").
		Find(&levels).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil level")
	}
	return helper.Success(c, "", levels)
}

// GET /api/subject-levels/:id/levels
func (cc *CatalogController) GetLevelsBySubjectLevel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID subject level tidak valid")
	}

	levels, err := service.FindLevelsBySubjectLevel(cc.DB, uint(id))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil level")
	}
	return helper.Success(c, "", levels)
}

// GET /api/levels/:id — level beserta materinya
func (cc *CatalogController) GetLevelByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var level model.LevelModel
	if err := cc.DB.
		Preload("SubjectLevel").
		Preload("SubjectLevel.Subject").
		Preload("SubjectLevel.Class").
		Preload("SubjectLevel.Class.GradeLevel").
		Preload("Materials", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&level, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Level tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil level")
	}
	return helper.Success(c, "", level)
}

// GET /api/levels/:id/materials
func (cc *CatalogController) GetMaterialsByLevel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID level tidak valid")
	}

	var materials []model.MaterialModel
	if err := cc.DB.Where("level_id = ?", id).
		Order("order_index ASC").
		Find(&materials).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}
	return helper.Success(c, "", materials)
}
