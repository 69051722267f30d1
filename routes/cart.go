package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/config"
	cartControllers "github.com/Aleee071/novashop-app/controllers/cart"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Shopper role required.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken(cfg.JWT), middleware.RequireRole(models.RoleUser))
	{
		cart.GET("/getCart", cartControllers.GetCartHandler(db))
		cart.POST("/add/:productId", cartControllers.AddItemHandler(db))
		cart.DELETE("/remove/:productId", cartControllers.RemoveItemHandler(db))
		cart.PUT("/update/:productId", cartControllers.UpdateQuantityHandler(db))
		cart.POST("/clearCart", cartControllers.ClearCartHandler(db))
		cart.DELETE("/deleteCart", cartControllers.DeleteCartHandler(db))
	}
}
