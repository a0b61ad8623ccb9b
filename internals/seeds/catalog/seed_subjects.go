package catalog

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"belajarku_backend/internals/features/learning/catalog/model"
)

type SubjectSeed struct {
	Code        *string `json:"code"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []SubjectSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.SubjectModel
		if err := db.Where("title = ?", item.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Subject %q sudah ada, lewati...", item.Title)
			continue
		}

		record := model.SubjectModel{
			Code:        item.Code,
			Title:       item.Title,
			Description: item.Description,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert subject %q: %v", item.Title, err)
		} else {
			log.Printf("✅ Berhasil insert subject %q", item.Title)
		}
	}
}
