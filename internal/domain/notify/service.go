package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Repository provides persistence for notifications.
type Repository interface {
	Add(ctx context.Context, n *Notification) (int64, error)
	Unread(ctx context.Context) ([]Notification, error)
	Recent(ctx context.Context, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
}

// Service handles the notification log.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Add appends a notification. Unknown types fall back to info.
func (s *Service) Add(ctx context.Context, title, message string, typ Type) (int64, error) {
	if !typ.Valid() {
		typ = TypeInfo
	}
	n := &Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	id, err := s.repo.Add(ctx, n)
	if err != nil {
		return 0, fmt.Errorf("adding notification: %w", err)
	}
	return id, nil
}

// Unread returns unread notifications, newest first.
func (s *Service) Unread(ctx context.Context) ([]Notification, error) {
	return s.repo.Unread(ctx)
}

// Recent returns the most recent notifications, read or not.
func (s *Service) Recent(ctx context.Context, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

// MarkRead flips the read flag. Returns false when the id does not exist.
func (s *Service) MarkRead(ctx context.Context, id int64) (bool, error) {
	return s.repo.MarkRead(ctx, id)
}
