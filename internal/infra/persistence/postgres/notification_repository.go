package postgres

import (
	"context"
	"time"

	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindRecentUnactioned retrieves the newest unactioned notification matching
// the kind and subjects at or after the given instant. This query backs the
// dedup window.
func (repo *notificationRepository) FindRecentUnactioned(ctx context.Context, kind entity.NotificationKind, subjects entity.NotificationSubjects, since time.Time) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND customer_id = ? AND business_id = ? AND program_id = ? AND is_actioned = false AND created_at >= ?",
			string(kind), subjects.CustomerID, subjects.BusinessID, subjects.ProgramID, since).
		Order("created_at DESC").
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find recent notification")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListByRecipient retrieves notifications addressed to an account with pagination.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flags a notification as seen.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkActioned flags a notification's linked action as completed.
func (repo *notificationRepository) MarkActioned(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_actioned": true,
			"is_read":     true,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification actioned")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// Delete removes a notification owned by the given recipient. The recipient
// guard in the WHERE clause doubles as the ownership check.
func (repo *notificationRepository) Delete(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		Kind:        entity.NotificationKind(data.Kind),
		RecipientID: data.RecipientID,
		Subjects: entity.NotificationSubjects{
			CustomerID: data.CustomerID,
			BusinessID: data.BusinessID,
			ProgramID:  data.ProgramID,
		},
		Title:          data.Title,
		Body:           data.Body,
		Payload:        data.Payload,
		RequiresAction: data.RequiresAction,
		IsRead:         data.IsRead,
		IsActioned:     data.IsActioned,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:             data.ID,
		Kind:           string(data.Kind),
		RecipientID:    data.RecipientID,
		CustomerID:     data.Subjects.CustomerID,
		BusinessID:     data.Subjects.BusinessID,
		ProgramID:      data.Subjects.ProgramID,
		Title:          data.Title,
		Body:           data.Body,
		Payload:        data.Payload,
		RequiresAction: data.RequiresAction,
		IsRead:         data.IsRead,
		IsActioned:     data.IsActioned,
	}
}
