package usecase

import (
	"context"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// Award sources recorded on audit entries.
const (
	AwardSourceQRScan = "qr_scan"
	AwardSourceManual = "manual"
)

// AwardPointsInput carries one point award. Exactly one of CardNumber or
// CardID identifies the target card.
type AwardPointsInput struct {
	CardNumber     string
	CardID         uuid.UUID
	Points         int64
	Source         string
	ActorID        uuid.UUID // the scanning actor, rate-limited per actor
	IdempotencyKey string
}

// AwardPointsOutput reports the balance after an award. Applied is false when
// the idempotency key had already been applied and the call was a no-op.
type AwardPointsOutput struct {
	CardID     uuid.UUID `json:"card_id"`
	NewBalance int64     `json:"new_balance"`
	Applied    bool      `json:"applied"`
}

// PointsUsecase validates and applies point changes from QR scans and manual awards.
type PointsUsecase interface {
	// AwardPoints applies a positive point change to a card atomically, with
	// per-actor rate limiting and audit logging. Replays with the same
	// idempotency key are no-ops returning the prior balance.
	AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error)

	// AwardFromScan verifies a signed QR token and awards the program's
	// per-scan points to the card named in the payload.
	AwardFromScan(ctx context.Context, token string, actorID uuid.UUID, idempotencyKey string) (*AwardPointsOutput, error)

	// ListCardLedger retrieves a card's audit entries, newest first. Only the
	// card holder may read them; anyone else sees the card as not found.
	ListCardLedger(ctx context.Context, cardID, requesterID uuid.UUID, limit, offset int) ([]*entity.PointEntry, error)
}
