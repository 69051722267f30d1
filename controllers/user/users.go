// Package userControllers handles shopper registration and the cookie session.
package userControllers

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
	cartControllers "github.com/Aleee071/novashop-app/controllers/cart"
	"github.com/Aleee071/novashop-app/logger"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

type registerInput struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *registerInput) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return apperr.InvalidInput("fullname is required")
	}
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		return apperr.InvalidInput("a valid email is required")
	}
	if len(in.Password) < 8 {
		return apperr.InvalidInput("password must be at least 8 characters")
	}
	return nil
}

// POST /users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("invalid registration payload"))
			return
		}
		if err := input.validate(); err != nil {
			response.Error(c, err)
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			response.Error(c, err)
			return
		}

		user := models.User{
			FullName: strings.TrimSpace(input.FullName),
			Email:    strings.ToLower(strings.TrimSpace(input.Email)),
			Password: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
				response.Error(c, apperr.Conflict("email already registered"))
				return
			}
			response.Error(c, err)
			return
		}

		logger.Info("user registered", zap.String("user_id", user.ID))
		response.OK(c, http.StatusCreated, user, "User registered")
	}
}

// POST /users/login: issues the cookie session and lazily creates the cart.
func Login(db *gorm.DB, cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, apperr.InvalidInput("email and password are required"))
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !auth.CheckPassword(user.Password, input.Password)) {
			response.Error(c, apperr.Unauthorized("invalid email or password"))
			return
		}
		if err != nil {
			response.Error(c, err)
			return
		}

		accessToken, err := auth.GenerateAccessToken(cfg, user.ID, models.RoleUser)
		if err != nil {
			response.Error(c, err)
			return
		}
		refreshToken, err := auth.GenerateRefreshToken(cfg, user.ID, models.RoleUser)
		if err != nil {
			response.Error(c, err)
			return
		}
		auth.SetSessionCookies(c, cfg, accessToken, refreshToken)

		if err := cartControllers.EnsureCart(db, user.ID); err != nil {
			response.Error(c, err)
			return
		}

		logger.Info("user logged in", zap.String("user_id", user.ID))
		response.OK(c, http.StatusOK, user, "Login successful")
	}
}

// POST /users/refresh: rotates the access token from the refresh cookie.
func Refresh(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie(auth.RefreshCookie)
		if err != nil || refreshToken == "" {
			response.Error(c, apperr.Unauthorized("refresh token missing"))
			return
		}

		claims, err := auth.ParseRefreshToken(cfg, refreshToken)
		if err != nil {
			response.Error(c, apperr.Unauthorized("invalid or expired refresh token"))
			return
		}

		accessToken, err := auth.GenerateAccessToken(cfg, claims.Subject, claims.Role)
		if err != nil {
			response.Error(c, err)
			return
		}
		newRefresh, err := auth.GenerateRefreshToken(cfg, claims.Subject, claims.Role)
		if err != nil {
			response.Error(c, err)
			return
		}
		auth.SetSessionCookies(c, cfg, accessToken, newRefresh)

		response.OK(c, http.StatusOK, nil, "Session refreshed")
	}
}

// POST /users/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookies(c)
		response.OK(c, http.StatusOK, nil, "Logged out")
	}
}

// GET /users/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", identity.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, apperr.NotFound("user not found"))
				return
			}
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, user, "User found")
	}
}
