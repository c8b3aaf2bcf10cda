package repository

import (
	"context"
	"errors"
	"time"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindRecentUnactioned retrieves the newest notification of the same kind
	// and subjects created at or after the given instant that has not been
	// actioned yet. This is the deduplication lookup.
	FindRecentUnactioned(ctx context.Context, kind entity.NotificationKind, subjects entity.NotificationSubjects, since time.Time) (*entity.Notification, error)

	// ListByRecipient retrieves notifications addressed to an account,
	// newest first, with pagination.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a notification as seen by its recipient.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkActioned flags a notification's linked action as completed.
	MarkActioned(ctx context.Context, id uuid.UUID) error

	// Delete removes a notification owned by the given recipient.
	Delete(ctx context.Context, id, recipientID uuid.UUID) error
}
