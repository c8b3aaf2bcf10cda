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

// approvalRepository implements the repository.ApprovalRepository interface.
type approvalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository is the constructor for approvalRepository.
func NewApprovalRepository(db *gorm.DB) repository.ApprovalRepository {
	return &approvalRepository{
		db: db,
	}
}

// FindByID retrieves an approval request by its unique ID.
func (repo *approvalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ApprovalRequest, error) {
	var requestM model.ApprovalRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApprovalNotFound
		}

		return nil, errors.Wrap(err, "failed to find approval request by ID")
	}

	return toApprovalDomain(&requestM), nil
}

// FindPendingByParties retrieves the PENDING request for a
// (customer, business, program) triple.
func (repo *approvalRepository) FindPendingByParties(ctx context.Context, customerID, businessID, programID uuid.UUID) (*entity.ApprovalRequest, error) {
	var requestM model.ApprovalRequestModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ? AND program_id = ? AND status = ?",
			customerID, businessID, programID, string(entity.ApprovalStatusPending)).
		Order("requested_at DESC").
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApprovalNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending approval request")
	}

	return toApprovalDomain(&requestM), nil
}

// Create persists a new approval request in PENDING state.
func (repo *approvalRepository) Create(ctx context.Context, request *entity.ApprovalRequest) error {
	requestM := fromApprovalDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "approval request references unknown business or program")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create approval request")
	}

	request.ID = requestM.ID

	return nil
}

// TransitionFromPending atomically moves the request out of PENDING. The
// status guard in the WHERE clause means exactly one of any number of
// concurrent resolvers observes a row change; the rest read false and replay.
func (repo *approvalRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, to entity.ApprovalStatus, respondedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ApprovalRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.ApprovalStatusPending)).
		Updates(map[string]interface{}{
			"status":       string(to),
			"responded_at": respondedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to transition approval request")
	}

	return result.RowsAffected > 0, nil
}

// SetCardID records the provisioned card on an approved request.
func (repo *approvalRepository) SetCardID(ctx context.Context, id, cardID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApprovalRequestModel{}).
		Where("id = ?", id).
		Update("card_id", cardID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set card on approval request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrApprovalNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toApprovalDomain converts a GORM ApprovalRequestModel to a domain ApprovalRequest entity.
func toApprovalDomain(data *model.ApprovalRequestModel) *entity.ApprovalRequest {
	if data == nil {
		return nil
	}

	return &entity.ApprovalRequest{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		BusinessID:     data.BusinessID,
		ProgramID:      data.ProgramID,
		Status:         entity.ApprovalStatus(data.Status),
		NotificationID: data.NotificationID,
		CardID:         data.CardID,
		RequestedAt:    data.RequestedAt,
		RespondedAt:    data.RespondedAt,
	}
}

// fromApprovalDomain converts a domain ApprovalRequest entity to a GORM ApprovalRequestModel.
func fromApprovalDomain(data *entity.ApprovalRequest) *model.ApprovalRequestModel {
	if data == nil {
		return nil
	}

	return &model.ApprovalRequestModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		BusinessID:     data.BusinessID,
		ProgramID:      data.ProgramID,
		Status:         string(data.Status),
		NotificationID: data.NotificationID,
		CardID:         data.CardID,
		RequestedAt:    data.RequestedAt,
		RespondedAt:    data.RespondedAt,
	}
}
