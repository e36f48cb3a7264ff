// internal/handlers/cart.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shahalmix/shahalmix-backend/internal/catalog"
	"github.com/shahalmix/shahalmix-backend/internal/i18n"
	"github.com/shahalmix/shahalmix-backend/internal/services"
	"github.com/shahalmix/shahalmix-backend/internal/store"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

type CartHandler struct {
	store       *store.Store
	cartService *services.CartService
}

func NewCartHandler(store *store.Store, cartService *services.CartService) *CartHandler {
	return &CartHandler{
		store:       store,
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items, total, err := h.cartService.Items()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load cart")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"items": items,
		"total": total,
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	products, err := catalog.Aggregate(h.store)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load catalog")
		return
	}

	// First match wins when an id appears more than once in the feed
	for _, product := range products {
		if product.ID == req.ProductID {
			lang := utils.GetLangFromContext(c)
			if err := h.cartService.AddToCart(lang, product); err != nil {
				utils.InternalErrorResponse(c, "Failed to update cart")
				return
			}
			utils.SuccessResponse(c, product)
			return
		}
	}

	utils.NotFoundResponse(c, "product")
}

// DELETE /cart/items/:index
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart index", nil)
		return
	}

	lang := utils.GetLangFromContext(c)
	if err := h.cartService.RemoveFromCart(lang, index); err != nil {
		utils.InternalErrorResponse(c, "Failed to update cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	if err := h.cartService.ClearCart(lang); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"cleared": true})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	order, err := h.cartService.PlaceOrder(lang)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to place order")
		return
	}

	utils.CreatedResponse(c, order)
}
