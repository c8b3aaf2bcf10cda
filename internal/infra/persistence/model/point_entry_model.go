package model

import (
	"time"

	"github.com/google/uuid"
)

// PointEntryModel mirrors the append-only 'point_entries' table. The unique
// (card_id, reference_id) index is what turns award replays into no-ops.
type PointEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CardID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_point_entries_card_reference"`
	Type        string    `gorm:"type:varchar(10);not null"`
	Delta       int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Source      string    `gorm:"type:varchar(20);not null"`
	ReferenceID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_point_entries_card_reference"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointEntryModel) TableName() string {
	return "point_entries"
}
