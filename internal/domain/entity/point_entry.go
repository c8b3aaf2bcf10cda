package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointEntryType classifies a point-balance change.
type PointEntryType string

const (
	// PointEntryTypeEarn records points earned from a scan or manual award.
	PointEntryTypeEarn PointEntryType = "EARN"
	// PointEntryTypeAdjust records a manual correction by the business.
	PointEntryTypeAdjust PointEntryType = "ADJUST"
)

// PointEntry is the append-only audit record of one point-balance change on
// a card. Entries are never mutated or deleted.
//
// ReferenceID carries the caller-supplied idempotency key; it is unique per
// card, which is what makes award replays no-ops.
type PointEntry struct {
	ID          uuid.UUID      `json:"id"`           // The Global Unique Identifier (GUID) for the entry.
	CardID      uuid.UUID      `json:"card_id"`      // The card whose balance changed.
	Type        PointEntryType `json:"type"`         // Classification of the change.
	Delta       int64          `json:"delta"`        // Signed point change applied to the card balance.
	Description string         `json:"description"`  // Human-readable description of the change.
	Source      string         `json:"source"`       // Origin of the change (qr_scan, manual).
	ReferenceID string         `json:"reference_id"` // Caller-supplied idempotency key.
	CreatedAt   time.Time      `json:"created_at"`   // Timestamp of when the change was recorded.
}
