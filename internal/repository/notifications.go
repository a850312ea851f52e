package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/google/uuid"
)

type NotificationsR struct {
	db QueryI
}

func NewNotificationsRepository(db QueryI) *NotificationsR {
	return &NotificationsR{
		db: db,
	}
}

// AddNotification stores a new unread notification. An empty link is stored as NULL.
func (n *NotificationsR) AddNotification(ctx context.Context, userID, message, link string) error {
	var nullLink sql.NullString
	if link != "" {
		nullLink = sql.NullString{String: link, Valid: true}
	}

	query := `
		INSERT INTO notifications
		(id, user_id, message, link, is_read, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`

	_, err := n.db.ExecContext(ctx, query, uuid.NewString(), userID, message, nullLink, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}

	return nil
}

// Notifications returns up to 50 notifications, unread and newest first.
func (n *NotificationsR) Notifications(ctx context.Context, userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, message, link, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY is_read ASC, created_at DESC
		LIMIT 50`

	notifications := []models.Notification{}
	if err := n.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead only touches the row when it belongs to userID.
func (n *NotificationsR) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	query := `
		UPDATE notifications
		SET is_read = 1
		WHERE id = ? AND user_id = ?`

	res, err := n.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	return affectedOne(res)
}
