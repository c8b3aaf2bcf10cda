package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentModel mirrors the 'enrollments' table. The composite unique index
// guarantees at most one enrollment per (customer, program) even under
// concurrent inserts.
//
// Points is a denormalized mirror of the card balance; it is written with
// assignments only.
type EnrollmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_customer_program"`
	ProgramID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_customer_program"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	Points         int64     `gorm:"not null;default:0"`
	EnrolledAt     time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}
