package repository

import (
	"context"
	"errors"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRelationNotFound is returned when a customer-business relation does not exist.
var ErrRelationNotFound = errors.New("business relation not found")

// RelationRepository defines operations on customer-business relations.
type RelationRepository interface {
	// FindByCustomerAndBusiness retrieves the single relation for a
	// (customer, business) pair.
	FindByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) (*entity.BusinessRelation, error)

	// Upsert creates the relation or updates the status of the existing row
	// for the same (customer, business) pair.
	Upsert(ctx context.Context, relation *entity.BusinessRelation) error
}
