package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Discount    float64   `gorm:"default:0" json:"discount"` // percent, 0-100
	Stock       int       `gorm:"not null;default:1" json:"stock"`
	Image       string    `json:"image"`
	OwnerID     string    `gorm:"index;not null" json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// DiscountedPrice is the unit price after applying the percentage discount.
func (p *Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.Discount/100)
}
