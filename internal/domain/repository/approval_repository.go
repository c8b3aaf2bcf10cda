package repository

import (
	"context"
	"errors"
	"time"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApprovalNotFound is returned when an approval request does not exist.
var ErrApprovalNotFound = errors.New("approval request not found")

// ApprovalRepository defines the standard operations for approval-request persistence.
type ApprovalRepository interface {
	// FindByID retrieves a single approval request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ApprovalRequest, error)

	// FindPendingByParties retrieves the PENDING request for a
	// (customer, business, program) triple, so repeated invitations reuse
	// the open request instead of stacking new ones.
	FindPendingByParties(ctx context.Context, customerID, businessID, programID uuid.UUID) (*entity.ApprovalRequest, error)

	// Create persists a new approval request in PENDING state.
	Create(ctx context.Context, request *entity.ApprovalRequest) error

	// TransitionFromPending atomically moves the request from PENDING to the
	// given terminal status. It returns false when the row was not in
	// PENDING state, which is how concurrent resolvers lose the race without
	// erroring.
	TransitionFromPending(ctx context.Context, id uuid.UUID, to entity.ApprovalStatus, respondedAt time.Time) (bool, error)

	// SetCardID records the card produced by an approved request so replays
	// can return the original outcome.
	SetCardID(ctx context.Context, id, cardID uuid.UUID) error
}
