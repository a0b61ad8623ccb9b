package seeds

import (
	"gorm.io/gorm"

	achievementSeeds "belajarku_backend/internals/seeds/achievements"
	catalogSeeds "belajarku_backend/internals/seeds/catalog"
)

// RunAllSeeds mengisi data master awal. Semua seeder idempoten:
// baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	catalogSeeds.SeedGradeLevelsFromJSON(db, "internals/seeds/catalog/data_grade_levels.json")
	catalogSeeds.SeedSubjectsFromJSON(db, "internals/seeds/catalog/data_subjects.json")
	achievementSeeds.SeedAchievementsFromJSON(db, "internals/seeds/achievements/data_achievements.json")
}
