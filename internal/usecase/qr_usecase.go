package usecase

import (
	"context"

	"perk/internal/domain/service"

	"github.com/google/uuid"
)

// QRUsecase issues and validates the signed tokens embedded in card QR codes.
type QRUsecase interface {
	// IssueCardToken signs a fresh scan token for an active card.
	IssueCardToken(ctx context.Context, cardID uuid.UUID) (string, error)

	// GenerateCardQR renders a freshly signed scan token into a PNG QR code.
	GenerateCardQR(ctx context.Context, cardID uuid.UUID) ([]byte, error)

	// ValidateToken verifies a scan token's integrity and freshness and
	// returns the embedded payload.
	ValidateToken(ctx context.Context, token string) (*service.ScanPayload, error)
}
