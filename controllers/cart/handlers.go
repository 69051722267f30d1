package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/logger"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/response"
)

type quantityInput struct {
	Quantity int `json:"quantity"`
}

// POST /cart/add/:productId
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		var input quantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("invalid or missing quantity"))
			return
		}

		cart, err := AddItem(db, identity.ID, c.Param("productId"), input.Quantity)
		if err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("product added to cart",
			zap.String("user_id", identity.ID),
			zap.String("product_id", c.Param("productId")),
			zap.Int("quantity", input.Quantity))
		response.OK(c, http.StatusOK, cart, "Product(s) added to cart")
	}
}

// GET /cart/getCart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		cart, err := GetCart(db, identity.ID)
		if err != nil {
			response.Error(c, err)
			return
		}

		if len(cart.Items) == 0 {
			response.OK(c, http.StatusOK, cart, "Your cart is empty right now")
			return
		}
		response.OK(c, http.StatusOK, cart, "Cart found")
	}
}

// DELETE /cart/remove/:productId
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		cart, err := RemoveItem(db, identity.ID, c.Param("productId"))
		if err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("product removed from cart",
			zap.String("user_id", identity.ID),
			zap.String("product_id", c.Param("productId")))
		response.OK(c, http.StatusOK, cart, "Product removed from cart")
	}
}

// PUT /cart/update/:productId
func UpdateQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		var input quantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("invalid or missing quantity"))
			return
		}

		cart, changed, err := UpdateQuantity(db, identity.ID, c.Param("productId"), input.Quantity)
		if err != nil {
			response.Error(c, err)
			return
		}

		if !changed {
			response.OK(c, http.StatusOK, cart, "No changes made")
			return
		}
		response.OK(c, http.StatusOK, cart, "Product quantity updated")
	}
}

// POST /cart/clearCart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		cart, cleared, err := ClearCart(db, identity.ID)
		if err != nil {
			response.Error(c, err)
			return
		}

		if !cleared {
			response.OK(c, http.StatusOK, nil, "Cart is already empty")
			return
		}
		logger.Info("cart cleared", zap.String("user_id", identity.ID))
		response.OK(c, http.StatusOK, cart, "Cart cleared successfully")
	}
}

// DELETE /cart/deleteCart
func DeleteCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		if err := DeleteCart(db, identity.ID); err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("cart deleted", zap.String("user_id", identity.ID))
		response.OK(c, http.StatusOK, nil, "Cart deleted")
	}
}
