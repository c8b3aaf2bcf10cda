package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perk/config"
	"perk/internal/domain/entity"
	"perk/internal/domain/repository"
	mockRepo "perk/internal/mocks/repository"
	mockSvc "perk/internal/mocks/service"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		EventPublisher:   eventPublisher,
		Config: &config.Config{
			Notification: &config.NotificationConfig{DedupWindow: 30 * time.Second},
		},
		Logger: logger,
	})

	return service, notificationRepo, eventPublisher
}

func testSubjects() entity.NotificationSubjects {
	return entity.NotificationSubjects{
		CustomerID: uuid.New(),
		BusinessID: uuid.New(),
		ProgramID:  uuid.New(),
	}
}

func TestNotificationService_EmitOrMerge_CreatesAndPublishes(t *testing.T) {
	service, notificationRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	subjects := testSubjects()
	payload := entity.EnrollmentRequestPayload{
		ApprovalRequestID: uuid.New(),
		BusinessName:      "好味早餐店",
		ProgramName:       "早餐集點",
	}

	notificationRepo.EXPECT().
		FindRecentUnactioned(ctx, entity.KindEnrollmentRequest, subjects, mock.Anything).
		Return(nil, repository.ErrNotificationNotFound)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	id, err := service.EmitOrMerge(ctx, recipientID, subjects, payload, true)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestNotificationService_EmitOrMerge_MergesRecentDuplicate(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	subjects := testSubjects()
	existing := &entity.Notification{
		ID:             uuid.New(),
		Kind:           entity.KindEnrollmentRequest,
		Subjects:       subjects,
		RequiresAction: true,
	}

	notificationRepo.EXPECT().
		FindRecentUnactioned(ctx, entity.KindEnrollmentRequest, subjects, mock.Anything).
		Return(existing, nil)

	id, err := service.EmitOrMerge(ctx, uuid.New(), subjects, entity.EnrollmentRequestPayload{
		ApprovalRequestID: uuid.New(),
	}, true)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, id)
}

func TestNotificationService_EmitOrMerge_PublishFailureIsTolerated(t *testing.T) {
	service, notificationRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	subjects := testSubjects()

	notificationRepo.EXPECT().
		FindRecentUnactioned(ctx, entity.KindPointsAwarded, subjects, mock.Anything).
		Return(nil, repository.ErrNotificationNotFound)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).
		Return(errors.New("pubsub unavailable"))

	id, err := service.EmitOrMerge(ctx, uuid.New(), subjects, entity.PointsAwardedPayload{
		CardID:     uuid.New(),
		Points:     1,
		NewBalance: 11,
	}, false)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), RecipientID: recipientID}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkRead(ctx, notification.ID).Return(nil)

	err := service.MarkRead(ctx, notification.ID, recipientID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_WrongRecipient(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), RecipientID: uuid.New()}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)

	err := service.MarkRead(ctx, notification.ID, uuid.New())

	// Ownership failures look like a missing notification so the endpoint
	// does not reveal other accounts' notification ids.
	require.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationService_ListNotifications_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	stored := []*entity.Notification{
		{ID: uuid.New(), RecipientID: recipientID},
		{ID: uuid.New(), RecipientID: recipientID},
	}

	notificationRepo.EXPECT().ListByRecipient(ctx, recipientID, 20, 0).Return(stored, nil)

	notifications, err := service.ListNotifications(ctx, recipientID, 20, 0)

	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationService_DeleteNotification_NotFound(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	recipientID := uuid.New()

	notificationRepo.EXPECT().Delete(ctx, id, recipientID).Return(repository.ErrNotificationNotFound)

	err := service.DeleteNotification(ctx, id, recipientID)

	require.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
