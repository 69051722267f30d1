// Package productcontroller implements the owner-managed catalog.
package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/logger"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

type productInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

func (in *productInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.InvalidInput("name is required")
	}
	if in.Price < 0 {
		return apperr.InvalidInput("price cannot be negative")
	}
	if in.Discount < 0 || in.Discount > 100 {
		return apperr.InvalidInput("discount must be between 0 and 100")
	}
	if in.Stock < 0 {
		return apperr.InvalidInput("stock cannot be negative")
	}
	return nil
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
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

		product := models.Product{
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			Price:       input.Price,
			Discount:    input.Discount,
			Stock:       input.Stock,
			Image:       input.Image,
			OwnerID:     identity.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
				response.Error(c, apperr.Conflict("a product with this name already exists"))
				return
			}
			response.Error(c, err)
			return
		}

		logger.Info("product created",
			zap.String("product_id", product.ID),
			zap.String("owner_id", identity.ID))
		response.OK(c, http.StatusCreated, product, "Product created")
	}
}
