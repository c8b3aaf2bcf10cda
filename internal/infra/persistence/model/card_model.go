package model

import (
	"time"

	"github.com/google/uuid"
)

// CardModel mirrors the 'cards' table. Points is the single authoritative
// balance; every award increments this column exactly once. The composite
// unique index guarantees one card per (customer, program).
type CardModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cards_customer_program"`
	ProgramID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cards_customer_program"`
	Number     string    `gorm:"type:varchar(30);unique;not null"`
	Points     int64     `gorm:"not null;default:0"`
	Tier       string    `gorm:"type:varchar(20);not null;default:'standard'"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Entries []PointEntryModel `gorm:"foreignKey:CardID"`
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "cards"
}
