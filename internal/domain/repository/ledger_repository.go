package repository

import (
	"context"
	"errors"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the point audit ledger.
var (
	// ErrPointEntryNotFound is returned when no matching audit entry exists.
	ErrPointEntryNotFound = errors.New("point entry not found")
	// ErrDuplicateReference is returned when the unique (card_id, reference_id)
	// constraint rejects an insert, i.e. the idempotency key was already applied.
	ErrDuplicateReference = errors.New("reference already applied")
)

// LedgerRepository defines operations on the append-only point audit ledger.
// Entries are never updated or deleted.
type LedgerRepository interface {
	// Create appends a new audit entry. Replays of an already-applied
	// idempotency key are reported as ErrDuplicateReference.
	Create(ctx context.Context, entry *entity.PointEntry) error

	// FindByCardAndReference retrieves the audit entry recorded for an
	// idempotency key on a card, used to detect replayed awards.
	FindByCardAndReference(ctx context.Context, cardID uuid.UUID, referenceID string) (*entity.PointEntry, error)

	// ListByCard retrieves audit entries for a card, newest first.
	ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*entity.PointEntry, error)
}
