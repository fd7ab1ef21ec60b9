package routes

import (
	"time"

	"artstore-backend/config"
	adminapi "artstore-backend/internal/api/admin"
	artistsapi "artstore-backend/internal/api/artists"
	artworksapi "artstore-backend/internal/api/artworks"
	categoriesapi "artstore-backend/internal/api/categories"
	feedbackapi "artstore-backend/internal/api/feedback"
	ordersapi "artstore-backend/internal/api/orders"
	"artstore-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/config", func(c *gin.Context) {
		c.JSON(200, gin.H{"whatsapp_number": config.WHATSAPP_NUMBER})
	})

	// Public catalog reads
	api.GET("/categories", categoriesapi.ListCategories)
	api.GET("/categories/:id", categoriesapi.GetCategory)
	api.GET("/artists", artistsapi.ListArtists)
	api.GET("/artists/:id", artistsapi.GetArtist)
	api.GET("/artworks", artworksapi.ListArtworks)
	api.GET("/artworks/:id", artworksapi.GetArtwork)

	// Public intake: sanitized and rate limited per IP
	intake := api.Group("", middleware.SanitizeAndCleanInputMiddleware(), middleware.RateLimit(100, time.Minute))
	intake.POST("/orders", ordersapi.CreateOrder)
	intake.POST("/feedback", feedbackapi.CreateFeedback)

	// Admin login paths (both converge on the same JWT shape)
	login := api.Group("/admin", middleware.SanitizeAndCleanInputMiddleware())
	login.POST("/login", adminapi.Login)
	login.POST("/google-login", adminapi.GoogleLogin)
	api.GET("/admin/google", adminapi.GoogleStart)
	api.GET("/admin/google/callback", adminapi.GoogleCallback)

	// Authenticated admin surface
	auth := api.Group("", middleware.AuthMiddleware())

	auth.GET("/admin/verify", adminapi.Verify)
	auth.GET("/admin/stats", adminapi.GetDashboardStats)

	auth.GET("/admin/export/orders", adminapi.ExportOrders)
	auth.GET("/admin/export/artworks", adminapi.ExportArtworks)
	auth.GET("/admin/export/artists", adminapi.ExportArtists)
	auth.GET("/admin/export/feedback", adminapi.ExportFeedback)

	auth.POST("/categories", categoriesapi.CreateCategory)
	auth.PUT("/categories/:id", categoriesapi.UpdateCategory)
	auth.DELETE("/categories/:id", categoriesapi.DeleteCategory)

	auth.POST("/artists", artistsapi.CreateArtist)
	auth.PUT("/artists/:id", artistsapi.UpdateArtist)
	auth.DELETE("/artists/:id", artistsapi.DeleteArtist)

	auth.POST("/artworks", artworksapi.CreateArtwork)
	auth.PUT("/artworks/:id", artworksapi.UpdateArtwork)
	auth.DELETE("/artworks/:id", artworksapi.DeleteArtwork)

	auth.GET("/orders", ordersapi.ListOrders)
	auth.GET("/orders/stats", ordersapi.GetOrderStats)
	auth.GET("/orders/:id", ordersapi.GetOrder)
	auth.PATCH("/orders/:id/status", ordersapi.UpdateOrderStatus)
	auth.DELETE("/orders/:id", ordersapi.DeleteOrder)

	auth.GET("/feedback", feedbackapi.ListFeedback)
	auth.PATCH("/feedback/:id/status", feedbackapi.UpdateFeedbackStatus)
	auth.DELETE("/feedback/:id", feedbackapi.DeleteFeedback)
}
