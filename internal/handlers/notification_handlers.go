package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Notification Handlers ---
//

// GetMyNotifications is the handler for GET /v1/notifications
// It retrieves up to 50 notifications for the logged-in user, unread and newest first.
func (h *Handlers) GetMyNotifications(c *gin.Context) {
	// 1. --- Get User ID ---
	uid, ok := userID(c)
	if !ok {
		return
	}

	// 2. --- Query Database ---
	notifications, err := h.Accounts.Notifications(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err, "Failed to get notifications")
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
	})
}

// MarkNotificationAsRead is the handler for PATCH /v1/notifications/:id/read
// Notifications that belong to another user are reported as not found.
func (h *Handlers) MarkNotificationAsRead(c *gin.Context) {
	// 1. --- Get IDs ---
	uid, ok := userID(c)
	if !ok {
		return
	}
	notificationID := c.Param("id")

	// 2. --- Execute Update ---
	if err := h.Accounts.MarkNotificationRead(c.Request.Context(), uid, notificationID); err != nil {
		h.respondError(c, err, "Failed to update notification")
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read",
	})
}
