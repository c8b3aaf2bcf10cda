package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. The composite index on
// (kind, customer_id, business_id, program_id, created_at) serves the
// dedup-window lookup.
type NotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind           string    `gorm:"type:varchar(40);not null;index:idx_notifications_dedup,priority:1"`
	RecipientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_dedup,priority:2"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_dedup,priority:3"`
	ProgramID      uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_dedup,priority:4"`
	Title          string    `gorm:"type:text;not null"`
	Body           string    `gorm:"type:text;not null"`
	Payload        string    `gorm:"type:jsonb"`
	RequiresAction bool      `gorm:"not null;default:false"`
	IsRead         bool      `gorm:"not null;default:false"`
	IsActioned     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index:idx_notifications_dedup,priority:5"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
