package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Package is a purchasable golf/sponsorship offering. Packages are
// immutable after creation; there is no update path.
type Package struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
