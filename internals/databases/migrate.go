package database

import (
	"log"

	achievementModel "belajarku_backend/internals/features/achievements/model"
	aichatModel "belajarku_backend/internals/features/aichat/model"
	catalogModel "belajarku_backend/internals/features/learning/catalog/model"
	quizModel "belajarku_backend/internals/features/learning/quiz/model"
	notificationModel "belajarku_backend/internals/features/notifications/model"
	pointsModel "belajarku_backend/internals/features/progress/points/model"
	progressModel "belajarku_backend/internals/features/progress/progress/model"
	streakModel "belajarku_backend/internals/features/progress/streaks/model"
	authModel "belajarku_backend/internals/features/users/auth/model"
	profileModel "belajarku_backend/internals/features/users/profile/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel. Di production
// schema dikelola lewat migrasi SQL; ini untuk dev/bootstrap awal.
func Migrate() {
	log.Println("🛠️ Menjalankan AutoMigrate...")
	err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.OtpCodeModel{},
		&authModel.OtpRateLimitModel{},
		&profileModel.UserProfileModel{},
		&profileModel.UserSubjectModel{},
		&catalogModel.GradeLevelModel{},
		&catalogModel.ClassModel{},
		&catalogModel.SubjectModel{},
		&catalogModel.SubjectLevelModel{},
		&catalogModel.LevelModel{},
		&catalogModel.MaterialModel{},
		&quizModel.QuestionModel{},
		&quizModel.ChoiceModel{},
		&progressModel.UserProgressModel{},
		&pointsModel.UserPointsModel{},
		&streakModel.UserStreakModel{},
		&achievementModel.AchievementModel{},
		&achievementModel.UserAchievementModel{},
		&notificationModel.NotificationModel{},
		&aichatModel.AIChatSessionModel{},
		&aichatModel.AIChatMessageModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
