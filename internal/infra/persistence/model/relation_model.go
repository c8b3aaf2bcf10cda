package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessRelationModel mirrors the 'business_relations' table. The composite
// unique index makes Upsert safe under concurrent resolutions.
type BusinessRelationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_relations_customer_business"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_relations_customer_business"`
	Status     string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessRelationModel) TableName() string {
	return "business_relations"
}
