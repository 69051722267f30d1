package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, products, "Products retrieved successfully")
	}
}

// GET /products/my-products: the authenticated owner's catalog.
func GetOwnerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		var products []models.Product
		if err := db.Where("owner_id = ?", identity.ID).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, products, "Products retrieved successfully")
	}
}
