package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the lifecycle state of an approval request. A request
// transitions exactly once from PENDING to a terminal state; re-processing a
// terminal request is a no-op, not an error.
type ApprovalStatus string

const (
	// ApprovalStatusPending marks a request awaiting the customer's decision.
	ApprovalStatusPending ApprovalStatus = "PENDING"
	// ApprovalStatusApproved marks a request the customer accepted.
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	// ApprovalStatusRejected marks a request the customer declined.
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// ApprovalDecision is the customer's answer to an approval request.
type ApprovalDecision string

const (
	// DecisionApprove accepts the enrollment.
	DecisionApprove ApprovalDecision = "APPROVE"
	// DecisionDecline rejects the enrollment.
	DecisionDecline ApprovalDecision = "DECLINE"
)

// TerminalStatus maps a decision to the terminal approval status it produces.
func (d ApprovalDecision) TerminalStatus() ApprovalStatus {
	if d == DecisionApprove {
		return ApprovalStatusApproved
	}

	return ApprovalStatusRejected
}

// ApprovalRequest represents a pending decision a customer must make, such
// as joining a program. CardID stores the provisioning outcome so a replayed
// resolution can return the original result.
type ApprovalRequest struct {
	ID             uuid.UUID      `json:"id"`                        // The Global Unique Identifier (GUID) for the request.
	CustomerID     uuid.UUID      `json:"customer_id"`               // The customer who must decide; the customer row may not be materialized yet.
	BusinessID     uuid.UUID      `json:"business_id"`               // The business that initiated the request.
	ProgramID      uuid.UUID      `json:"program_id"`                // The program the customer is invited to join.
	Status         ApprovalStatus `json:"status"`                    // Current lifecycle state.
	NotificationID *uuid.UUID     `json:"notification_id,omitempty"` // The enrollment-request notification linked to this request.
	CardID         *uuid.UUID     `json:"card_id,omitempty"`         // The card produced by an approved request, nil otherwise.
	RequestedAt    time.Time      `json:"requested_at"`              // Timestamp of when the request was created.
	RespondedAt    *time.Time     `json:"responded_at,omitempty"`    // Timestamp of the customer's decision, nil while pending.
}

// IsTerminal reports whether the request has already been decided.
func (r *ApprovalRequest) IsTerminal() bool {
	return r.Status != ApprovalStatusPending
}
