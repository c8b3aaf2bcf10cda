package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the loyalty-domain record of a person who can enroll in
// programs. It shares its id with the underlying account (profile-style
// shared primary key) and may be lazily materialized the first time
// provisioning needs it, so enrollment never races a missing customer row.
type Customer struct {
	ID        uuid.UUID `json:"id"`         // Shared primary key: equals the underlying account's id.
	Name      string    `json:"name"`       // Display name, copied from the account at materialization time.
	Email     string    `json:"email"`      // Contact email, copied from the account at materialization time.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Business is the identity record for a program owner. Read-only from the
// loyalty core's perspective.
type Business struct {
	ID        uuid.UUID `json:"id"`         // Shared primary key: equals the underlying account's id.
	Name      string    `json:"name"`       // The business's official name.
	Email     string    `json:"email"`      // The business's contact email.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
