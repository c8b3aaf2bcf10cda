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
)

// cardRepository implements the repository.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// FindByID retrieves a card by its unique ID.
func (repo *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	var cardM model.CardModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by ID")
	}

	return toCardDomain(&cardM), nil
}

// FindByNumber retrieves a card by its unique card number.
func (repo *cardRepository) FindByNumber(ctx context.Context, number string) (*entity.Card, error) {
	var cardM model.CardModel

	if err := repo.db.WithContext(ctx).
		Where("number = ?", number).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by number")
	}

	return toCardDomain(&cardM), nil
}

// FindByCustomerAndProgram retrieves the single card for a (customer, program) pair.
func (repo *cardRepository) FindByCustomerAndProgram(ctx context.Context, customerID, programID uuid.UUID) (*entity.Card, error) {
	var cardM model.CardModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND program_id = ?", customerID, programID).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by customer and program")
	}

	return toCardDomain(&cardM), nil
}

// Create persists a new card. Concurrent inserts for the same
// (customer, program) pair lose against the unique index and surface as
// ErrCardExists.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCardExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "card references unknown customer or program")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// IncrementPoints atomically adds delta to the card balance and returns the
// new value. The UPDATE with RETURNING keeps read and write in one statement,
// so concurrent awards serialize on the row instead of clobbering each other.
func (repo *cardRepository) IncrementPoints(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	var newBalance int64

	result := repo.db.WithContext(ctx).Raw(
		"UPDATE cards SET points = points + ?, updated_at = NOW() WHERE id = ? RETURNING points",
		delta, id,
	).Scan(&newBalance)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment card points")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrCardNotFound
	}

	return newBalance, nil
}

// --- Mapper Functions ---

// toCardDomain converts a GORM CardModel to a domain Card entity.
func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	return &entity.Card{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		ProgramID:  data.ProgramID,
		Number:     data.Number,
		Points:     data.Points,
		Tier:       data.Tier,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCardDomain converts a domain Card entity to a GORM CardModel.
func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	return &model.CardModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		ProgramID:  data.ProgramID,
		Number:     data.Number,
		Points:     data.Points,
		Tier:       data.Tier,
		IsActive:   data.IsActive,
	}
}
