package entity

import (
	"time"

	"github.com/google/uuid"
)

// Program is a named point-earning scheme owned by exactly one business.
// Programs are immutable for the duration of any provisioning or award
// transaction.
type Program struct {
	ID            uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the program.
	BusinessID    uuid.UUID `json:"business_id"`     // The business that owns this program.
	Name          string    `json:"name"`            // The customer-facing program name.
	Description   string    `json:"description"`     // Optional description shown on enrollment requests.
	PointsPerScan int64     `json:"points_per_scan"` // Points awarded for a single QR scan of this program.
	IsActive      bool      `json:"is_active"`       // Indicates whether the program accepts new activity.
	CreatedAt     time.Time `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt     time.Time `json:"updated_at"`      // Timestamp of the last modification.
}
