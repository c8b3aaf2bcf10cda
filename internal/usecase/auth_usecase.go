package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LoginInput carries account credentials.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries a previously issued refresh token.
type RefreshInput struct {
	RefreshToken string
}

// LoginOutput carries the token pair issued for a verified account.
type LoginOutput struct {
	AccountID        uuid.UUID `json:"account_id"`
	Roles            []string  `json:"roles"`
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// AuthUsecase verifies account credentials at the account-system boundary and
// issues API tokens. Account management itself lives outside this service.
type AuthUsecase interface {
	// Login checks the credentials against the account record and returns a
	// fresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair. Roles
	// are re-derived from the account record, not carried over from the
	// token, so role changes take effect on the next refresh.
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)
}
