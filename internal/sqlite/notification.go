package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devflowhq/devflow/internal/domain/notify"
)

// NotificationRepository implements repository.NotificationRepository
// for SQLite
type NotificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Add appends a notification and returns the generated id.
func (r *NotificationRepository) Add(ctx context.Context, n *notify.Notification) (int64, error) {
	query := `
		INSERT INTO notifications (title, message, type, created_at)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, n.Title, n.Message, n.Type, n.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to add notification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get notification id: %w", err)
	}
	return id, nil
}

// Unread returns unread notifications, newest first.
func (r *NotificationRepository) Unread(ctx context.Context) ([]notify.Notification, error) {
	query := `
		SELECT id, title, message, type, is_read, created_at
		FROM notifications
		WHERE is_read = 0
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// Recent returns the limit most recent notifications, read or not.
func (r *NotificationRepository) Recent(ctx context.Context, limit int) ([]notify.Notification, error) {
	query := `
		SELECT id, title, message, type, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// MarkRead flips the read flag. Returns false when the id does not
// exist.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func collectNotifications(rows *sql.Rows) ([]notify.Notification, error) {
	var notifications []notify.Notification
	for rows.Next() {
		var n notify.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}
