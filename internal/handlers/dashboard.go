// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shahalmix/shahalmix-backend/internal/i18n"
	"github.com/shahalmix/shahalmix-backend/internal/models"
	"github.com/shahalmix/shahalmix-backend/internal/services"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

type DashboardHandler struct {
	productService *services.ProductService
	aiService      *services.AIService
	notifications  *services.NotificationService
}

func NewDashboardHandler(productService *services.ProductService, aiService *services.AIService, notifications *services.NotificationService) *DashboardHandler {
	return &DashboardHandler{
		productService: productService,
		aiService:      aiService,
		notifications:  notifications,
	}
}

// GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.productService.DashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load stats")
		return
	}
	utils.SuccessResponse(c, stats)
}

// POST /dashboard/advice
func (h *DashboardHandler) GetAdvice(c *gin.Context) {
	stats, err := h.productService.DashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load stats")
		return
	}

	lang := utils.GetLangFromContext(c)
	h.notifications.Notify(i18n.T(lang, i18n.KeyAIAnalyzing), models.NotificationTypeInfo)

	advice := h.aiService.GetBusinessAdvice(c.Request.Context(), stats)

	h.notifications.Notify(i18n.T(lang, i18n.KeyAIReportReady), models.NotificationTypeSuccess)
	utils.SuccessResponse(c, gin.H{"advice": advice})
}

// GET /orders
func (h *DashboardHandler) GetOrders(c *gin.Context) {
	orders, err := h.productService.Orders()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load orders")
		return
	}
	utils.SuccessResponse(c, orders)
}
