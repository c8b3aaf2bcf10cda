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

// enrollmentRepository implements the repository.EnrollmentRepository interface.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository is the constructor for enrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// FindByCustomerAndProgram retrieves the single enrollment for a (customer, program) pair.
func (repo *enrollmentRepository) FindByCustomerAndProgram(ctx context.Context, customerID, programID uuid.UUID) (*entity.Enrollment, error) {
	var enrollmentM model.EnrollmentModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND program_id = ?", customerID, programID).
		First(&enrollmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnrollmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment by customer and program")
	}

	return toEnrollmentDomain(&enrollmentM), nil
}

// Create persists a new enrollment. Concurrent inserts for the same
// (customer, program) pair lose against the unique index and surface as
// ErrEnrollmentExists.
func (repo *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	enrollmentM := fromEnrollmentDomain(enrollment)

	if err := repo.db.WithContext(ctx).Create(enrollmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEnrollmentExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "enrollment references unknown customer or program")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create enrollment")
	}

	enrollment.ID = enrollmentM.ID
	enrollment.CreatedAt = enrollmentM.CreatedAt
	enrollment.UpdatedAt = enrollmentM.UpdatedAt

	return nil
}

// UpdateStatus transitions an enrollment to the given status.
func (repo *enrollmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnrollmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update enrollment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// MirrorPoints assigns the denormalized point counter from the card balance.
// Assignment only; the authoritative increment happened on the cards table in
// the same transaction.
func (repo *enrollmentRepository) MirrorPoints(ctx context.Context, id uuid.UUID, points int64, lastActivityAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"points":           points,
			"last_activity_at": lastActivityAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mirror enrollment points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEnrollmentDomain converts a GORM EnrollmentModel to a domain Enrollment entity.
func toEnrollmentDomain(data *model.EnrollmentModel) *entity.Enrollment {
	if data == nil {
		return nil
	}

	return &entity.Enrollment{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		ProgramID:      data.ProgramID,
		Status:         entity.EnrollmentStatus(data.Status),
		Points:         data.Points,
		EnrolledAt:     data.EnrolledAt,
		LastActivityAt: data.LastActivityAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromEnrollmentDomain converts a domain Enrollment entity to a GORM EnrollmentModel.
func fromEnrollmentDomain(data *entity.Enrollment) *model.EnrollmentModel {
	if data == nil {
		return nil
	}

	return &model.EnrollmentModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		ProgramID:      data.ProgramID,
		Status:         string(data.Status),
		Points:         data.Points,
		EnrolledAt:     data.EnrolledAt,
		LastActivityAt: data.LastActivityAt,
	}
}
