package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "belajarku_backend/internals/features/notifications/controller"
)

// NotificationRoutes mendaftarkan endpoint /notifications (grup sudah ber-auth).
func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	n := api.Group("/notifications")
	n.Get("/", ctrl.GetNotifications)
	n.Get("/unread-count", ctrl.GetUnreadCount)
	n.Put("/read-all", ctrl.MarkAllAsRead)
	n.Put("/:id/read", ctrl.MarkAsRead)
}
