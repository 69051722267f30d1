package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/config"
	productcontroller "github.com/Aleee071/novashop-app/controllers/product"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
)

// SetupProductRoutes registers the public catalog and the owner-only writes.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))

		ownerProducts := products.Group("",
			middleware.ValidateToken(cfg.JWT),
			middleware.RequireRole(models.RoleOwner))
		{
			ownerProducts.POST("", productcontroller.CreateProduct(db))
			ownerProducts.GET("/my-products", productcontroller.GetOwnerProducts(db))
			ownerProducts.GET("/export", productcontroller.ExportProductsToExcel(db))
			ownerProducts.PUT("/:id", productcontroller.UpdateProduct(db))
			ownerProducts.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		products.GET("/:id", productcontroller.GetProductByID(db))
	}
}
