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

// ledgerRepository implements the repository.LedgerRepository interface over
// the append-only point_entries table.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Create appends a new audit entry. A replayed idempotency key violates the
// unique (card_id, reference_id) index and surfaces as ErrDuplicateReference.
func (repo *ledgerRepository) Create(ctx context.Context, entry *entity.PointEntry) error {
	entryM := fromPointEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReference
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "ledger entry references unknown card")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByCardAndReference retrieves the entry recorded for an idempotency key.
func (repo *ledgerRepository) FindByCardAndReference(ctx context.Context, cardID uuid.UUID, referenceID string) (*entity.PointEntry, error) {
	var entryM model.PointEntryModel

	if err := repo.db.WithContext(ctx).
		Where("card_id = ? AND reference_id = ?", cardID, referenceID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPointEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find ledger entry by reference")
	}

	return toPointEntryDomain(&entryM), nil
}

// ListByCard retrieves audit entries for a card, newest first, with pagination.
func (repo *ledgerRepository) ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*entity.PointEntry, error) {
	var entryModels []*model.PointEntryModel

	query := repo.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries by card")
	}

	entries := make([]*entity.PointEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toPointEntryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toPointEntryDomain converts a GORM PointEntryModel to a domain PointEntry entity.
func toPointEntryDomain(data *model.PointEntryModel) *entity.PointEntry {
	if data == nil {
		return nil
	}

	return &entity.PointEntry{
		ID:          data.ID,
		CardID:      data.CardID,
		Type:        entity.PointEntryType(data.Type),
		Delta:       data.Delta,
		Description: data.Description,
		Source:      data.Source,
		ReferenceID: data.ReferenceID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPointEntryDomain converts a domain PointEntry entity to a GORM PointEntryModel.
func fromPointEntryDomain(data *entity.PointEntry) *model.PointEntryModel {
	if data == nil {
		return nil
	}

	return &model.PointEntryModel{
		ID:          data.ID,
		CardID:      data.CardID,
		Type:        string(data.Type),
		Delta:       data.Delta,
		Description: data.Description,
		Source:      data.Source,
		ReferenceID: data.ReferenceID,
	}
}
