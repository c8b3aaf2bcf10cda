package repository

import (
	"context"
	"errors"

	"perk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProgramNotFound is returned when a program does not exist.
var ErrProgramNotFound = errors.New("program not found")

// ProgramRepository defines read operations for point-earning programs.
// Programs are immutable during provisioning and award transactions.
type ProgramRepository interface {
	// FindByID retrieves a single program by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Program, error)
}
