package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgramModel mirrors the 'programs' table.
type ProgramModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	PointsPerScan int64     `gorm:"not null;default:1"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgramModel) TableName() string {
	return "programs"
}
