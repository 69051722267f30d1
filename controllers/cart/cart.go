// Package cartControllers implements the cart engine: line-item mutations
// coupled to product stock, with the discounted total recomputed inside the
// same transaction as every write.
package cartControllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/models"
)

// productSelect limits the fields exposed when line items are expanded.
const productSelect = "id, name, description, price, discount, stock, image, owner_id"

// AddItem decrements product stock and adds (or merges) a cart line item.
// The stock decrement is a single conditional UPDATE, so two concurrent adds
// can never drive stock negative.
func AddItem(db *gorm.DB, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidInput("quantity must be greater than 0")
	}
	if uuid.Validate(productID) != nil {
		return nil, apperr.InvalidInput("invalid product id")
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ProductNotFound()
			}
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", productID, quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.InsufficientStock("not enough stock")
		}

		var existing models.Cart
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = models.Cart{
				UserID: userID,
				Items: []models.CartItem{{
					ProductID: productID,
					Quantity:  quantity,
					AddedAt:   time.Now(),
				}},
			}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			var item models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", existing.ID, productID).First(&item).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				item = models.CartItem{
					CartID:    existing.ID,
					ProductID: productID,
					Quantity:  quantity,
					AddedAt:   time.Now(),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				// Same product again: merge into the existing line.
				item.Quantity += quantity
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			}
		}

		refreshed, err := recomputeTotal(tx, existing.ID)
		if err != nil {
			return err
		}
		cart = refreshed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the user's cart with line items expanded. A missing cart is
// an error; a cart with no items is not.
func GetCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.added_at") }).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Select(productSelect) }).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.CartNotFound()
		}
		return nil, err
	}
	return &cart, nil
}

// RemoveItem drops a line item and compensates the add-time stock decrement.
func RemoveItem(db *gorm.DB, userID, productID string) (*models.Cart, error) {
	if uuid.Validate(productID) != nil {
		return nil, apperr.InvalidInput("invalid product id")
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, item, err := findCartItem(tx, userID, productID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", productID).
			UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.CartItem{}, "id = ?", item.ID).Error; err != nil {
			return err
		}

		refreshed, err := recomputeTotal(tx, existing.ID)
		if err != nil {
			return err
		}
		cart = refreshed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets a line item to an absolute quantity, adjusting stock by
// the delta. Setting the current quantity is a successful no-op.
func UpdateQuantity(db *gorm.DB, userID, productID string, quantity int) (*models.Cart, bool, error) {
	if quantity <= 0 {
		return nil, false, apperr.InvalidInput("quantity must be greater than 0")
	}
	if uuid.Validate(productID) != nil {
		return nil, false, apperr.InvalidInput("invalid product id")
	}

	var cart *models.Cart
	changed := false
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, item, err := findCartItem(tx, userID, productID)
		if err != nil {
			return err
		}

		if item.Quantity == quantity {
			refreshed, err := loadCart(tx, existing.ID)
			if err != nil {
				return err
			}
			cart = refreshed
			return nil
		}

		delta := quantity - item.Quantity
		if delta > 0 {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", productID, delta).
				UpdateColumn("stock", gorm.Expr("stock - ?", delta))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.InsufficientStock("quantity exceeds stock")
			}
		} else {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", productID).
				UpdateColumn("stock", gorm.Expr("stock + ?", -delta)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.CartItem{}).
			Where("id = ?", item.ID).
			UpdateColumn("quantity", quantity).Error; err != nil {
			return err
		}

		refreshed, err := recomputeTotal(tx, existing.ID)
		if err != nil {
			return err
		}
		cart = refreshed
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return cart, changed, nil
}

// ClearCart restores stock for every line item in one batched UPDATE and
// empties the cart. An already-empty cart is a successful no-op.
func ClearCart(db *gorm.DB, userID string) (*models.Cart, bool, error) {
	var cart *models.Cart
	cleared := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.CartNotFound()
			}
			return err
		}

		if len(existing.Items) == 0 {
			cart = &existing
			return nil
		}

		if err := tx.Exec(`
			UPDATE products
			SET stock = stock + (
				SELECT cart_items.quantity FROM cart_items
				WHERE cart_items.cart_id = ? AND cart_items.product_id = products.id
			)
			WHERE id IN (SELECT product_id FROM cart_items WHERE cart_id = ?)`,
			existing.ID, existing.ID,
		).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", existing.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Cart{}).
			Where("id = ?", existing.ID).
			UpdateColumn("total_price", 0).Error; err != nil {
			return err
		}

		existing.Items = nil
		existing.TotalPrice = 0
		cart = &existing
		cleared = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return cart, cleared, nil
}

// DeleteCart removes the cart row outright. Unlike ClearCart it does NOT
// restore stock: the reserved units stay decremented.
func DeleteCart(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Cart
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.CartNotFound()
			}
			return err
		}
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", existing.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "id = ?", existing.ID).Error
	})
}

// EnsureCart creates the user's cart if none exists yet. Called on first
// successful login.
func EnsureCart(db *gorm.DB, userID string) error {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.Cart{UserID: userID}).Error
	}
	return err
}

func findCartItem(tx *gorm.DB, userID, productID string) (*models.Cart, *models.CartItem, error) {
	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.CartNotFound()
		}
		return nil, nil, err
	}
	var item models.CartItem
	if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.New(apperr.CodeNotFound, "product not found in cart")
		}
		return nil, nil, err
	}
	return &cart, &item, nil
}

func loadCart(tx *gorm.DB, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.added_at") }).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Select(productSelect) }).
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// recomputeTotal reloads the cart with live product prices, derives the
// discounted total and persists it. Must run inside the mutation's
// transaction so a stale total is never observable.
func recomputeTotal(tx *gorm.DB, cartID string) (*models.Cart, error) {
	cart, err := loadCart(tx, cartID)
	if err != nil {
		return nil, err
	}
	cart.RecomputeTotal()
	if err := tx.Model(&models.Cart{}).
		Where("id = ?", cartID).
		UpdateColumn("total_price", cart.TotalPrice).Error; err != nil {
		return nil, err
	}
	return cart, nil
}
