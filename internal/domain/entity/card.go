package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card tier names, ordered from entry level upward.
const (
	CardTierStandard = "standard"
	CardTierSilver   = "silver"
	CardTierGold     = "gold"
)

// Card is the customer-facing representation of an active enrollment.
// An ACTIVE enrollment has exactly one active card for the same
// (customer, program); a DECLINED enrollment has none.
//
// Points is the single authoritative balance. Every award increments this
// field exactly once; all other point columns in the system are derived
// copies that are assigned, never incremented.
type Card struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the card.
	CustomerID uuid.UUID `json:"customer_id"` // The customer who holds this card.
	ProgramID  uuid.UUID `json:"program_id"`  // The program this card belongs to.
	Number     string    `json:"number"`      // Unique, human-readable card number.
	Points     int64     `json:"points"`      // Authoritative point balance.
	Tier       string    `json:"tier"`        // Current tier of this card.
	IsActive   bool      `json:"is_active"`   // Indicates whether the card accepts awards.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
