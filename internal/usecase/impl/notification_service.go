// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"perk/config"
	deliverycontext "perk/internal/delivery/context"
	"perk/internal/domain/entity"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	eventPublisher   service.EventPublisher
	dedupWindow      time.Duration
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	EventPublisher   service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	dedupWindow := 30 * time.Second
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.DedupWindow > 0 {
		dedupWindow = params.Config.Notification.DedupWindow
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		eventPublisher:   params.EventPublisher,
		dedupWindow:      dedupWindow,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EmitOrMerge inserts a notification unless an unactioned one of the same
// kind and subjects exists within the dedup window. Multiple internal code
// paths may report the same logical event; the window collapses them into a
// single stored row.
func (srv *notificationService) EmitOrMerge(
	ctx context.Context,
	recipientID uuid.UUID,
	subjects entity.NotificationSubjects,
	payload entity.NotificationPayload,
	requiresAction bool,
) (uuid.UUID, error) {
	since := time.Now().Add(-srv.dedupWindow)

	existing, err := srv.notificationRepo.FindRecentUnactioned(ctx, payload.Kind(), subjects, since)
	if err != nil && !errors.Is(err, repository.ErrNotificationNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to query recent notifications")
	}
	if existing != nil {
		srv.log(ctx).Debug("Merged duplicate notification",
			slog.String("kind", string(payload.Kind())),
			slog.Any("notificationID", existing.ID),
		)

		return existing.ID, nil
	}

	title, body := payload.Render()

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to marshal notification payload")
	}

	notification := &entity.Notification{
		ID:             uuid.New(),
		Kind:           payload.Kind(),
		RecipientID:    recipientID,
		Subjects:       subjects,
		Title:          title,
		Body:           body,
		Payload:        string(rawPayload),
		RequiresAction: requiresAction,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create notification")
	}

	srv.publishEvent(ctx, notification)

	return notification.ID, nil
}

// publishEvent hands the committed notification to the delivery worker.
// Publishing is best-effort: a failure is logged and never propagated, so it
// cannot undo the ledger mutation that produced the notification.
func (srv *notificationService) publishEvent(ctx context.Context, notification *entity.Notification) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		Kind:           string(notification.Kind),
		RecipientID:    notification.RecipientID.String(),
		Title:          notification.Title,
		Body:           notification.Body,
	}

	if err := srv.eventPublisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish notification event",
			slog.Any("notificationID", notification.ID),
			slog.Any("error", err),
		)
	}
}

// ListNotifications retrieves notifications addressed to an account.
func (srv *notificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by recipient")
	}

	return notifications, nil
}

// MarkRead flags a notification as seen, verifying ownership first.
func (srv *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}

	if notification.RecipientID != recipientID {
		return repository.ErrNotificationNotFound
	}

	if err := srv.notificationRepo.MarkRead(ctx, id); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// DeleteNotification removes a notification owned by the recipient.
func (srv *notificationService) DeleteNotification(ctx context.Context, id, recipientID uuid.UUID) error {
	if err := srv.notificationRepo.Delete(ctx, id, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}
