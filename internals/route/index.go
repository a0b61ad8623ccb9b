package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementRoute "belajarku_backend/internals/features/achievements/route"
	adminRoute "belajarku_backend/internals/features/admin/route"
	aichatRoute "belajarku_backend/internals/features/aichat/route"
	catalogRoute "belajarku_backend/internals/features/learning/catalog/route"
	quizRoute "belajarku_backend/internals/features/learning/quiz/route"
	notificationRoute "belajarku_backend/internals/features/notifications/route"
	leaderboardRoute "belajarku_backend/internals/features/progress/leaderboard/route"
	pointsRoute "belajarku_backend/internals/features/progress/points/route"
	progressRoute "belajarku_backend/internals/features/progress/progress/route"
	streakRoute "belajarku_backend/internals/features/progress/streaks/route"
	authRoute "belajarku_backend/internals/features/users/auth/route"
	profileRoute "belajarku_backend/internals/features/users/profile/route"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// Auth: endpoint publik + /me (middleware dipasang di dalam)
	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, db)

	// Semua route di bawah ini butuh JWT valid
	authed := api.Group("", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Profile & Learning routes...")
	profileRoute.ProfileRoutes(authed, db)
	catalogRoute.CatalogRoutes(authed, db)
	quizRoute.QuizRoutes(authed, db)

	log.Println("[INFO] Mounting Progress routes...")
	progressRoute.ProgressRoutes(authed, db)
	pointsRoute.PointsRoutes(authed, db)
	streakRoute.StreakRoutes(authed, db)
	leaderboardRoute.LeaderboardRoutes(authed, db)

	log.Println("[INFO] Mounting Achievement & Notification routes...")
	achievementRoute.AchievementRoutes(authed, db)
	notificationRoute.NotificationRoutes(authed, db)

	log.Println("[INFO] Mounting AI Chat routes...")
	aichatRoute.AIChatRoutes(authed, db)

	log.Println("[INFO] Mounting Admin routes...")
	adminRoute.AdminRoutes(authed, db)
}
