package orderControllers

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

type createOrderInput struct {
	ShippingAddress string `json:"shippingAddress"`
}

type updateStatusInput struct {
	Status string `json:"status"`
}

// POST /orders/create
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		var input createOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("shipping address is required"))
			return
		}

		order, err := CreateOrder(db, identity.ID, input.ShippingAddress)
		if err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("order created",
			zap.String("order_id", order.ID),
			zap.String("user_id", identity.ID),
			zap.Float64("total_price", order.TotalPrice))
		broadcastOrderEvent("order_created", order)
		response.OK(c, http.StatusCreated, order, "Order created")
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := GetOrderByID(db, c.Param("id"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, order, "Order found")
	}
}

// GET /orders/my-orders
func GetOrdersByUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		orders, err := GetOrdersByUser(db, identity.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, orders, "Orders retrieved successfully")
	}
}

// GET /orders/owner-orders
func GetOrdersByOwnerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		orders, err := GetOrdersByOwner(db, identity.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, orders, "Orders retrieved successfully")
	}
}

// PATCH /orders/status/:id
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		var input updateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("status is required"))
			return
		}

		order, err := UpdateOrderStatus(db, c.Param("id"), identity.ID, input.Status)
		if err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("order status updated",
			zap.String("order_id", order.ID),
			zap.String("owner_id", identity.ID),
			zap.String("status", string(order.Status)))
		broadcastOrderEvent("order_status_updated", order)
		response.OK(c, http.StatusOK, order, "Order status updated")
	}
}

// DELETE /orders/delete/:id
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := DeleteOrder(db, c.Param("id"))
		if err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("order deleted", zap.String("order_id", order.ID))
		response.OK(c, http.StatusOK, order, "Order deleted")
	}
}
