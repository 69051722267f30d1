package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// statusTransitions is the full transition table. Delivered is terminal and
// Shipped cannot be skipped.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
}

// CanTransitionTo reports whether a single-step move from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus maps a request string onto a known status, ignoring case.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending":
		return OrderStatusPending, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"index;not null" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice      float64     `gorm:"not null" json:"totalPrice"` // copied from the cart, never recomputed
	Status          OrderStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	ShippingAddress string      `gorm:"not null" json:"shippingAddress"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index;not null" json:"-"`
	ProductID string  `gorm:"not null" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	OwnerID   string  `gorm:"index;not null" json:"owner"` // denormalized at creation time
	Quantity  int     `gorm:"not null" json:"quantity"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
