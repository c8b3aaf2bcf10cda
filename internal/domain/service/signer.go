// Package service defines interfaces for infrastructure-backed domain services.
package service

import (
	"errors"

	"github.com/google/uuid"
)

// Signature verification errors. Callers treat these differently: an expired
// token means "ask for a rescan", a tampered token means "reject and alert".
var (
	// ErrSignatureInvalid is returned when the token hash does not match the payload.
	ErrSignatureInvalid = errors.New("signature invalid")
	// ErrSignatureExpired is returned when the token is older than the validity window.
	ErrSignatureExpired = errors.New("signature expired")
)

// ScanPayload is the data embedded in a card's QR code. CustomerID names the
// card holder so a scan can repair a card row that went missing after the
// token was issued.
type ScanPayload struct {
	CardID     uuid.UUID `json:"card_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ProgramID  uuid.UUID `json:"program_id"`
}

// QRTokenSigner generates and verifies the signed tokens embedded in QR codes.
// Verification never mutates state.
type QRTokenSigner interface {
	// Sign produces a token of the form "payload.hash.timestamp" binding the
	// payload to the server secret and the current time.
	Sign(payload ScanPayload) (string, error)

	// Verify recomputes the hash from the token's payload and checks it in
	// constant time, then checks the timestamp against the validity window.
	// It returns ErrSignatureInvalid for tampered tokens and
	// ErrSignatureExpired for stale ones.
	Verify(token string) (*ScanPayload, error)
}
