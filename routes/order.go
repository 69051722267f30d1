package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/config"
	orderControllers "github.com/Aleee071/novashop-app/controllers/order"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWT))
	{
		userOrders := orders.Group("", middleware.RequireRole(models.RoleUser))
		{
			userOrders.POST("/create", orderControllers.CreateOrderHandler(db))
			userOrders.GET("/my-orders", orderControllers.GetOrdersByUserHandler(db))
			userOrders.DELETE("/delete/:id", orderControllers.DeleteOrderHandler(db))
		}

		ownerOrders := orders.Group("", middleware.RequireRole(models.RoleOwner))
		{
			ownerOrders.GET("/owner-orders", orderControllers.GetOrdersByOwnerHandler(db))
			ownerOrders.PATCH("/status/:id", orderControllers.UpdateOrderStatusHandler(db))
			ownerOrders.GET("/ws", orderControllers.OrderFeedHandler)
		}

		// Fetch by id is shared: users review their purchases, owners their sales.
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
	}
}
