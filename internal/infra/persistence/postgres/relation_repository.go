package postgres

import (
	"context"

	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// relationRepository implements the repository.RelationRepository interface.
type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository is the constructor for relationRepository.
func NewRelationRepository(db *gorm.DB) repository.RelationRepository {
	return &relationRepository{
		db: db,
	}
}

// FindByCustomerAndBusiness retrieves the relation for a (customer, business) pair.
func (repo *relationRepository) FindByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) (*entity.BusinessRelation, error) {
	var relationM model.BusinessRelationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		First(&relationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRelationNotFound
		}

		return nil, errors.Wrap(err, "failed to find business relation")
	}

	return toRelationDomain(&relationM), nil
}

// Upsert creates the relation or updates the status of the existing row,
// keyed on the unique (customer_id, business_id) index.
func (repo *relationRepository) Upsert(ctx context.Context, relation *entity.BusinessRelation) error {
	relationM := fromRelationDomain(relation)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "business_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(relationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "relation references unknown customer or business")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert business relation")
	}

	relation.ID = relationM.ID

	return nil
}

// --- Mapper Functions ---

// toRelationDomain converts a GORM BusinessRelationModel to a domain BusinessRelation entity.
func toRelationDomain(data *model.BusinessRelationModel) *entity.BusinessRelation {
	if data == nil {
		return nil
	}

	return &entity.BusinessRelation{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		BusinessID: data.BusinessID,
		Status:     entity.RelationStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromRelationDomain converts a domain BusinessRelation entity to a GORM BusinessRelationModel.
func fromRelationDomain(data *entity.BusinessRelation) *model.BusinessRelationModel {
	if data == nil {
		return nil
	}

	return &model.BusinessRelationModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		BusinessID: data.BusinessID,
		Status:     string(data.Status),
	}
}
