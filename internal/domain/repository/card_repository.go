package repository

import (
	"context"
	"errors"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for card persistence.
var (
	// ErrCardNotFound is returned when a card does not exist.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardExists is returned when the (customer, program) uniqueness
	// constraint rejects an insert.
	ErrCardExists = errors.New("card already exists")
)

// CardRepository defines the standard operations for card persistence.
type CardRepository interface {
	// FindByID retrieves a single card by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)

	// FindByNumber retrieves a single card by its unique card number.
	FindByNumber(ctx context.Context, number string) (*entity.Card, error)

	// FindByCustomerAndProgram retrieves the single card for a
	// (customer, program) pair regardless of its active flag.
	FindByCustomerAndProgram(ctx context.Context, customerID, programID uuid.UUID) (*entity.Card, error)

	// Create persists a new card. The unique (customer_id, program_id)
	// constraint is the backstop against concurrent inserts; violations are
	// reported as ErrCardExists.
	Create(ctx context.Context, card *entity.Card) error

	// IncrementPoints atomically adds delta to the card's authoritative
	// balance and returns the new balance. This is the only write path that
	// changes a point balance.
	IncrementPoints(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
}
