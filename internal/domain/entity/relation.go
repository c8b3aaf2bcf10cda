package entity

import (
	"time"

	"github.com/google/uuid"
)

// RelationStatus is the state of a customer-business relationship.
type RelationStatus string

const (
	// RelationStatusActive marks a customer who accepted at least one program.
	RelationStatusActive RelationStatus = "ACTIVE"
	// RelationStatusDeclined marks a customer who declined enrollment.
	RelationStatusDeclined RelationStatus = "DECLINED"
)

// BusinessRelation records the standing between a customer identity and a
// business, independent of individual program enrollments. At most one row
// exists per (customer, business).
type BusinessRelation struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the relation.
	CustomerID uuid.UUID      `json:"customer_id"` // The customer side of the relation.
	BusinessID uuid.UUID      `json:"business_id"` // The business side of the relation.
	Status     RelationStatus `json:"status"`      // Current standing.
	CreatedAt  time.Time      `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt  time.Time      `json:"updated_at"`  // Timestamp of the last modification.
}
