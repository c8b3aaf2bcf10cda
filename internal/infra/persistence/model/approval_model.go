package model

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalRequestModel mirrors the 'approval_requests' table. CardID stores
// the provisioning outcome so replayed resolutions can return it.
type ApprovalRequestModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProgramID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status         string     `gorm:"type:varchar(20);not null;index"`
	NotificationID *uuid.UUID `gorm:"type:uuid"`
	CardID         *uuid.UUID `gorm:"type:uuid"`
	RequestedAt    time.Time
	RespondedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApprovalRequestModel) TableName() string {
	return "approval_requests"
}
