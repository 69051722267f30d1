package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/logger"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		id := c.Param("id")
		if uuid.Validate(id) != nil {
			response.Error(c, apperr.InvalidInput("invalid product id"))
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, apperr.ProductNotFound())
				return
			}
			response.Error(c, err)
			return
		}
		if product.OwnerID != identity.ID {
			response.Error(c, apperr.Forbidden("you do not own this product"))
			return
		}

		if err := db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("product deleted",
			zap.String("product_id", id),
			zap.String("owner_id", identity.ID))
		response.OK(c, http.StatusOK, nil, "Product deleted")
	}
}
