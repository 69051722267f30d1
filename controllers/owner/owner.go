// Package ownerControllers handles seller registration and login. Owners share
// the token flow with users but carry the "owner" role claim.
package ownerControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/auth"
	"github.com/Aleee071/novashop-app/config"
	"github.com/Aleee071/novashop-app/logger"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

type registerInput struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ShopName string `json:"shop_name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /owners/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("invalid registration payload"))
			return
		}
		if strings.TrimSpace(input.FullName) == "" {
			response.Error(c, apperr.InvalidInput("fullname is required"))
			return
		}
		if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
			response.Error(c, apperr.InvalidInput("a valid email is required"))
			return
		}
		if len(input.Password) < 8 {
			response.Error(c, apperr.InvalidInput("password must be at least 8 characters"))
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			response.Error(c, err)
			return
		}

		owner := models.Owner{
			FullName: strings.TrimSpace(input.FullName),
			Email:    strings.ToLower(strings.TrimSpace(input.Email)),
			Password: hash,
			ShopName: strings.TrimSpace(input.ShopName),
		}
		if err := db.Create(&owner).Error; err != nil {
			if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
				response.Error(c, apperr.Conflict("email already registered"))
				return
			}
			response.Error(c, err)
			return
		}

		logger.Info("owner registered", zap.String("owner_id", owner.ID))
		response.OK(c, http.StatusCreated, owner, "Owner registered")
	}
}

// POST /owners/login
func Login(db *gorm.DB, cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("email and password are required"))
			return
		}

		var owner models.Owner
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&owner).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !auth.CheckPassword(owner.Password, input.Password)) {
			response.Error(c, apperr.Unauthorized("invalid email or password"))
			return
		}
		if err != nil {
			response.Error(c, err)
			return
		}

		accessToken, err := auth.GenerateAccessToken(cfg, owner.ID, models.RoleOwner)
		if err != nil {
			response.Error(c, err)
			return
		}
		refreshToken, err := auth.GenerateRefreshToken(cfg, owner.ID, models.RoleOwner)
		if err != nil {
			response.Error(c, err)
			return
		}
		auth.SetSessionCookies(c, cfg, accessToken, refreshToken)

		logger.Info("owner logged in", zap.String("owner_id", owner.ID))
		response.OK(c, http.StatusOK, owner, "Login successful")
	}
}
