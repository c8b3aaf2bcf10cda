package repository

import (
	"context"
	"errors"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for customer and business persistence.
var (
	// ErrCustomerNotFound is returned when a customer row does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrBusinessNotFound is returned when a business row does not exist.
	ErrBusinessNotFound = errors.New("business not found")
)

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Create persists a new customer entity. The id is the shared account id.
	Create(ctx context.Context, customer *entity.Customer) error
}

// BusinessRepository defines read operations for businesses. Businesses are
// managed outside the loyalty core.
type BusinessRepository interface {
	// FindByID retrieves a single business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
}
