// Package orderControllers implements the order engine: checkout snapshots a
// cart into an immutable order, and a one-directional status machine tracks
// fulfilment.
package orderControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/models"
)

const productSelect = "id, name, price, discount, image, owner_id"

// CreateOrder snapshots the user's cart into a new Pending order and empties
// the cart, all in one transaction. The order total is copied verbatim from
// the cart, so later price changes never touch an in-flight order. Stock is
// not restored: checkout finalizes the add-time decrements.
func CreateOrder(db *gorm.DB, userID, shippingAddress string) (*models.Order, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, apperr.InvalidInput("shipping address is required")
	}

	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.CartNotFound()
			}
			return err
		}
		if len(cart.Items) == 0 {
			return apperr.InvalidInput("cart is empty")
		}

		// Re-fetch every product to denormalize its current owner onto the
		// line item. Any missing product aborts the whole order.
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Select("id, owner_id").First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ProductNotFound()
				}
				return err
			}
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				OwnerID:   product.OwnerID,
				Quantity:  item.Quantity,
			})
		}

		created := models.Order{
			UserID:          userID,
			Items:           items,
			TotalPrice:      cart.TotalPrice,
			Status:          models.OrderStatusPending,
			ShippingAddress: shippingAddress,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		// Reset the source cart; the cart row itself survives.
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			UpdateColumn("total_price", 0).Error; err != nil {
			return err
		}

		order = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func GetOrderByID(db *gorm.DB, orderID string) (*models.Order, error) {
	if uuid.Validate(orderID) != nil {
		return nil, apperr.InvalidInput("invalid order id")
	}
	var order models.Order
	err := db.
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Select(productSelect) }).
		First(&order, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.OrderNotFound()
		}
		return nil, err
	}
	return &order, nil
}

func GetOrdersByUser(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Select(productSelect) }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperr.NotFound("no orders found")
	}
	return orders, nil
}

// GetOrdersByOwner returns every order containing at least one line item owned
// by the given owner. Whole orders are returned, sibling owners' line items
// included, because the dashboard renders complete orders.
func GetOrdersByOwner(db *gorm.DB, ownerID string) ([]models.Order, error) {
	ownedOrders := db.Model(&models.OrderItem{}).
		Select("order_id").
		Where("owner_id = ?", ownerID)

	var orders []models.Order
	err := db.
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Select(productSelect) }).
		Where("id IN (?)", ownedOrders).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperr.NotFound("no orders found")
	}
	return orders, nil
}

// UpdateOrderStatus advances an order one step along
// Pending → Shipped → Delivered. The order must contain a line item owned by
// the requesting owner; otherwise it is reported as not found rather than
// forbidden, so owners cannot probe for foreign order ids.
func UpdateOrderStatus(db *gorm.DB, orderID, ownerID string, status string) (*models.Order, error) {
	if uuid.Validate(orderID) != nil {
		return nil, apperr.InvalidInput("invalid order id")
	}
	next, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, apperr.InvalidInput("invalid order status")
	}

	var order models.Order
	txErr := db.Transaction(func(tx *gorm.DB) error {
		ownedOrders := tx.Model(&models.OrderItem{}).
			Select("order_id").
			Where("owner_id = ?", ownerID)

		if err := tx.Where("id = ? AND id IN (?)", orderID, ownedOrders).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.OrderNotFound()
			}
			return err
		}

		if !order.Status.CanTransitionTo(next) {
			return apperr.InvalidStatusTransition(string(order.Status), string(next))
		}

		if err := tx.Model(&models.Order{}).
			Where("id = ?", orderID).
			UpdateColumn("status", next).Error; err != nil {
			return err
		}
		order.Status = next
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &order, nil
}

// DeleteOrder removes the order and its line items. Deleting the row also
// detaches it from the user's order history; stock and carts are untouched.
func DeleteOrder(db *gorm.DB, orderID string) (*models.Order, error) {
	if uuid.Validate(orderID) != nil {
		return nil, apperr.InvalidInput("invalid order id")
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.OrderNotFound()
			}
			return err
		}
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
