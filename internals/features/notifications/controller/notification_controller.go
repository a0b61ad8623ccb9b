package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/notifications/service"
	helper "belajarku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/notifications?unread_only=true&limit=
func (nc *NotificationController) GetNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	unreadOnly := c.Query("unread_only") == "true"
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	rows, err := service.FindByUser(nc.DB, userID, unreadOnly, limit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}
	return helper.Success(c, "", rows)
}

// GET /api/notifications/unread-count
func (nc *NotificationController) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	count, err := service.CountUnread(nc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}
	return helper.Success(c, "", fiber.Map{"unread_count": count})
}

// PUT /api/notifications/:id/read
func (nc *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	ok, err := service.MarkAsRead(nc.DB, userID, uint(id))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.Success(c, "Notifikasi ditandai sudah dibaca", nil)
}

// PUT /api/notifications/read-all
func (nc *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	updated, err := service.MarkAllAsRead(nc.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	return helper.Success(c, "Semua notifikasi ditandai sudah dibaca", fiber.Map{"updated_count": updated})
}
