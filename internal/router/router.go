// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shahalmix/shahalmix-backend/internal/config"
	"github.com/shahalmix/shahalmix-backend/internal/handlers"
	"github.com/shahalmix/shahalmix-backend/internal/middleware"
	"github.com/shahalmix/shahalmix-backend/internal/services"
	"github.com/shahalmix/shahalmix-backend/internal/store"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(time.Duration(cfg.Notify.TTL) * time.Second)
	cartService := services.NewCartService(st, notificationService)
	productService := services.NewProductService(st, notificationService)
	aiService := services.NewAIService(cfg.AI)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(st, productService, aiService)
	cartHandler := handlers.NewCartHandler(st, cartService)
	dashboardHandler := handlers.NewDashboardHandler(productService, aiService, notificationService)
	categoryHandler := handlers.NewCategoryHandler()
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/listings", productHandler.GetListings)
			products.POST("", productHandler.CreateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/describe", middleware.AIRateLimit(), productHandler.DescribeProduct)
		}

		// Category routes
		v1.GET("/categories", categoryHandler.GetCategories)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items/:index", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/checkout", cartHandler.Checkout)
		}

		// Order routes
		v1.GET("/orders", dashboardHandler.GetOrders)

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.POST("/advice", middleware.AIRateLimit(), dashboardHandler.GetAdvice)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.DELETE("/:id", notificationHandler.DismissNotification)
		}
	}

	// 404 handler
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

	return r
}
