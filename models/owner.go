package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner is a seller account. Owners never hold carts; they are referenced by
// the products they list and by denormalized order line items.
type Owner struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"not null" json:"fullname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	ShopName  string    `json:"shop_name"`
	Products  []Product `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
