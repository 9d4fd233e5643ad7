// internal/app/router.go
package app

import (
	authHandler "impactlink-service/internal/handlers/auth"
	campaignHandler "impactlink-service/internal/handlers/campaign"
	customerHandler "impactlink-service/internal/handlers/customer"
	mediaHandler "impactlink-service/internal/handlers/media"
	profileHandler "impactlink-service/internal/handlers/profile"
	"impactlink-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	CampaignHandler *campaignHandler.CampaignHandler
	ProfileHandler  *profileHandler.ProfileHandler
	CustomerHandler *customerHandler.CustomerHandler
	MediaHandler    *mediaHandler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.GetMe)
	}

	// ==================== Campaign Dashboard ====================
	campaign := api.Group("/campaign")
	campaign.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireResource("analytics"))
	{
		campaign.GET("", h.CampaignHandler.GetDashboard)
	}

	// ==================== Customer Profiles ====================
	profile := api.Group("/profile")
	profile.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireResource("users"))
	{
		profile.GET("", h.ProfileHandler.GetUserDetail) // ?guid=xxx&limit=500
	}

	// ==================== App Users ====================
	customers := api.Group("/customers")
	customers.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireResource("users"))
	{
		customers.GET("", h.CustomerHandler.ListCustomers) // ?companyId=xxx or ?referralCode=xxx
	}

	// ==================== Media ====================
	media := api.Group("/media")
	media.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireResource("analytics"))
	{
		media.GET("/deliverables", h.MediaHandler.GetDeliverables) // ?guid=xxx
		media.GET("/image", h.MediaHandler.GetImage)               // ?url=xxx
	}
}
