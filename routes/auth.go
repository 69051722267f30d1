package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aleee071/novashop-app/config"
	ownerControllers "github.com/Aleee071/novashop-app/controllers/owner"
	userControllers "github.com/Aleee071/novashop-app/controllers/user"
	"github.com/Aleee071/novashop-app/middleware"
	"github.com/Aleee071/novashop-app/models"
)

// SetupAuthRoutes registers user and owner identity endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	users := r.Group("/users")
	{
		users.POST("/register", userControllers.Register(db))
		users.POST("/login", userControllers.Login(db, cfg.JWT))
		users.POST("/refresh", userControllers.Refresh(cfg.JWT))
		users.POST("/logout", userControllers.Logout())

		users.GET("/me",
			middleware.ValidateToken(cfg.JWT),
			middleware.RequireRole(models.RoleUser),
			userControllers.Me(db))
	}

	owners := r.Group("/owners")
	{
		owners.POST("/register", ownerControllers.Register(db))
		owners.POST("/login", ownerControllers.Login(db, cfg.JWT))
	}
}
