package repository

import (
	"context"
	"errors"
	"time"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for enrollment persistence.
var (
	// ErrEnrollmentNotFound is returned when an enrollment does not exist.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrEnrollmentExists is returned when the (customer, program) uniqueness
	// constraint rejects an insert.
	ErrEnrollmentExists = errors.New("enrollment already exists")
)

// EnrollmentRepository defines the standard operations for enrollment persistence.
type EnrollmentRepository interface {
	// FindByCustomerAndProgram retrieves the single enrollment for a
	// (customer, program) pair.
	FindByCustomerAndProgram(ctx context.Context, customerID, programID uuid.UUID) (*entity.Enrollment, error)

	// Create persists a new enrollment. The unique (customer_id, program_id)
	// constraint is the backstop against concurrent inserts; violations are
	// reported as ErrEnrollmentExists.
	Create(ctx context.Context, enrollment *entity.Enrollment) error

	// UpdateStatus transitions an enrollment to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnrollmentStatus) error

	// MirrorPoints assigns the enrollment's denormalized point counter and
	// last-activity timestamp. The value is always a copy of the card
	// balance; this method never increments.
	MirrorPoints(ctx context.Context, id uuid.UUID, points int64, lastActivityAt time.Time) error
}
