package achievements

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/achievements/model"
)

type AchievementSeed struct {
	Code         string          `json:"code"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	IconURL      *string         `json:"icon_url"`
	Criteria     json.RawMessage `json:"criteria"`
	PointsReward int             `json:"points_reward"`
}

func SeedAchievementsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []AchievementSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.AchievementModel
		if err := db.Where("code = ?", item.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Achievement %q sudah ada, lewati...", item.Code)
			continue
		}

		record := model.AchievementModel{
			Code:         item.Code,
			Title:        item.Title,
			Description:  item.Description,
			IconURL:      item.IconURL,
			PointsReward: item.PointsReward,
		}
		if len(item.Criteria) > 0 {
			record.Criteria = datatypes.JSON(item.Criteria)
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert achievement %q: %v", item.Code, err)
		} else {
			log.Printf("✅ Berhasil insert achievement %q", item.Code)
		}
	}
}
