package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	UserID     string     `gorm:"uniqueIndex;not null" json:"user"` // one cart per user
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice float64    `gorm:"default:0" json:"totalPrice"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    string    `gorm:"index;not null" json:"-"`
	ProductID string    `gorm:"not null" json:"-"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// RecomputeTotal derives TotalPrice from the current product price and
// discount of every line item. Items must be loaded with their Product
// association before calling.
func (c *Cart) RecomputeTotal() {
	var total float64
	for _, item := range c.Items {
		total += item.Product.DiscountedPrice() * float64(item.Quantity)
	}
	c.TotalPrice = math.Round(total*100) / 100
}
