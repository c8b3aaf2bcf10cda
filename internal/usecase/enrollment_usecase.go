// Package usecase defines the application's use-case interfaces and DTOs.
package usecase

import (
	"context"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestEnrollmentInput carries a business's invitation of a customer into a program.
type RequestEnrollmentInput struct {
	BusinessID uuid.UUID
	CustomerID uuid.UUID
	ProgramID  uuid.UUID
}

// ResolveApprovalOutput is the outcome of an approval resolution. CardID is
// set for approved requests, including replayed ones.
type ResolveApprovalOutput struct {
	Status entity.ApprovalStatus `json:"status"`
	CardID *uuid.UUID            `json:"card_id,omitempty"`
}

// EnrollmentUsecase drives the enrollment approval and card-provisioning flow.
type EnrollmentUsecase interface {
	// RequestEnrollment creates a PENDING approval request and notifies the
	// customer. Repeated requests within the dedup window reuse the pending
	// request instead of stacking notifications.
	RequestEnrollment(ctx context.Context, input *RequestEnrollmentInput) (*entity.ApprovalRequest, error)

	// ResolveApproval processes the customer's decision into enrollment and
	// card state atomically. Re-invoking on an already-terminal request
	// returns the previously produced result instead of re-creating state.
	ResolveApproval(ctx context.Context, requestID uuid.UUID, decision entity.ApprovalDecision) (*ResolveApprovalOutput, error)
}
