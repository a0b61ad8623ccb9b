package catalog

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"belajarku_backend/internals/features/learning/catalog/model"
)

type GradeLevelSeed struct {
	Name    string   `json:"name"`
	Classes []string `json:"classes"`
}

func SeedGradeLevelsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []GradeLevelSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var grade model.GradeLevelModel
		if err := db.Where("name = ?", item.Name).First(&grade).Error; err != nil {
			grade = model.GradeLevelModel{Name: item.Name}
			if err := db.Create(&grade).Error; err != nil {
				log.Printf("❌ Gagal insert grade level %q: %v", item.Name, err)
				continue
			}
			log.Printf("✅ Berhasil insert grade level %q", item.Name)
		} else {
			log.Printf("ℹ️ Grade level %q sudah ada, lewati...", item.Name)
		}

		for _, className := range item.Classes {
			var existing model.ClassModel
			if err := db.Where("name = ? AND grade_level_id = ?", className, grade.ID).
				First(&existing).Error; err == nil {
				continue
			}
			record := model.ClassModel{Name: className, GradeLevelID: grade.ID}
			if err := db.Create(&record).Error; err != nil {
				log.Printf("❌ Gagal insert class %q: %v", className, err)
			} else {
				log.Printf("✅ Berhasil insert class %q", className)
			}
		}
	}
}
