package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

// PUT /products/:id: owners may only update their own products.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("invalid product payload"))
			return
		}
		if err := input.validate(); err != nil {
			response.Error(c, err)
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

		product.Name = strings.TrimSpace(input.Name)
		product.Description = input.Description
		product.Price = input.Price
		product.Discount = input.Discount
		product.Stock = input.Stock
		product.Image = input.Image

		if err := db.Save(&product).Error; err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, http.StatusOK, product, "Product updated")
	}
}
