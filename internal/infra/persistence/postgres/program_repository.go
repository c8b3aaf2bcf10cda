package postgres

import (
	"context"

	"perk/internal/domain/entity"
	"perk/internal/domain/repository"
	"perk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// programRepository implements the repository.ProgramRepository interface.
type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository is the constructor for programRepository.
func NewProgramRepository(db *gorm.DB) repository.ProgramRepository {
	return &programRepository{
		db: db,
	}
}

// FindByID retrieves a program by its unique ID.
func (repo *programRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Program, error) {
	var programM model.ProgramModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&programM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program by ID")
	}

	return toProgramDomain(&programM), nil
}

// --- Mapper Functions ---

// toProgramDomain converts a GORM ProgramModel to a domain Program entity.
func toProgramDomain(data *model.ProgramModel) *entity.Program {
	if data == nil {
		return nil
	}

	return &entity.Program{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Name:          data.Name,
		Description:   data.Description,
		PointsPerScan: data.PointsPerScan,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
