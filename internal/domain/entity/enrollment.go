package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	// EnrollmentStatusPending marks an enrollment awaiting the customer's decision.
	EnrollmentStatusPending EnrollmentStatus = "PENDING"
	// EnrollmentStatusActive marks an enrollment the customer accepted.
	EnrollmentStatusActive EnrollmentStatus = "ACTIVE"
	// EnrollmentStatusDeclined marks an enrollment the customer declined.
	EnrollmentStatusDeclined EnrollmentStatus = "DECLINED"
)

// Enrollment links one customer to one program. At most one enrollment row
// exists per (customer, program).
//
// Points is a denormalized read path mirroring Card.Points. It is always
// assigned the card balance inside the same transaction that changed it and
// is never incremented on its own.
type Enrollment struct {
	ID             uuid.UUID        `json:"id"`               // The Global Unique Identifier (GUID) for the enrollment.
	CustomerID     uuid.UUID        `json:"customer_id"`      // The enrolled customer.
	ProgramID      uuid.UUID        `json:"program_id"`       // The program the customer is enrolled in.
	Status         EnrollmentStatus `json:"status"`           // Current lifecycle state.
	Points         int64            `json:"points"`           // Mirrored point balance (read-only copy of the card balance).
	EnrolledAt     time.Time        `json:"enrolled_at"`      // Timestamp of when the enrollment was created.
	LastActivityAt time.Time        `json:"last_activity_at"` // Timestamp of the most recent point activity.
	CreatedAt      time.Time        `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt      time.Time        `json:"updated_at"`       // Timestamp of the last modification.
}
