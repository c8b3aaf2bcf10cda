// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record owned by the account system. The loyalty
// core reads it when materializing a Customer row and during login, but
// never creates or mutates accounts.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Name         string    // The account holder's display name.
	Email        string    // The account's primary contact email, used as the login identifier.
	PasswordHash string    // The bcrypt hash of the account password.
	Roles        []string  // Role names granted to this account (customer, business).
	CreatedAt    time.Time // Timestamp of when this account was created.
}
