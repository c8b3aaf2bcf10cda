package usecase

import (
	"context"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase creates, deduplicates and manages notifications.
type NotificationUsecase interface {
	// EmitOrMerge inserts a notification for the payload's kind unless an
	// unactioned notification with the same kind and subjects exists within
	// the dedup window, in which case the existing id is returned. Emission
	// failures never affect the ledger state the caller already committed.
	EmitOrMerge(ctx context.Context, recipientID uuid.UUID, subjects entity.NotificationSubjects, payload entity.NotificationPayload, requiresAction bool) (uuid.UUID, error)

	// ListNotifications retrieves notifications addressed to an account, newest first.
	ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a notification as seen by its recipient.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// DeleteNotification removes a notification owned by the recipient.
	DeleteNotification(ctx context.Context, id, recipientID uuid.UUID) error
}
