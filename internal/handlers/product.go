// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shahalmix/shahalmix-backend/internal/catalog"
	"github.com/shahalmix/shahalmix-backend/internal/services"
	"github.com/shahalmix/shahalmix-backend/internal/store"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

type ProductHandler struct {
	store          *store.Store
	productService *services.ProductService
	aiService      *services.AIService
}

func NewProductHandler(store *store.Store, productService *services.ProductService, aiService *services.AIService) *ProductHandler {
	return &ProductHandler{
		store:          store,
		productService: productService,
		aiService:      aiService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := catalog.Aggregate(h.store)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load catalog")
		return
	}

	query := catalog.Query{
		SearchText:   c.Query("search"),
		Seller:       c.Query("seller"),
		MarketType:   parseMarketType(c.Query("market")),
		MinPrice:     parsePriceBound(c.Query("min_price")),
		MaxPrice:     parsePriceBound(c.Query("max_price")),
		VerifiedOnly: c.Query("verified") == "true",
		SortBy:       parseSortOrder(c.Query("sort")),
	}
	if rating, err := strconv.ParseFloat(c.Query("min_rating"), 64); err == nil {
		query.MinRating = rating
	}

	filtered := catalog.FilterAndSort(products, query)

	params := utils.GetPaginationParams(c)
	page := utils.PaginateProducts(filtered, params)
	result := utils.CreatePaginationResult(page, int64(len(filtered)), params)
	utils.PaginatedResponse(c, result)
}

// GET /products/listings
func (h *ProductHandler) GetListings(c *gin.Context) {
	listings, err := h.productService.Listings()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load listings")
		return
	}
	utils.SuccessResponse(c, listings)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	lang := utils.GetLangFromContext(c)
	product, err := h.productService.CreateProduct(lang, &req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create product")
		return
	}

	utils.CreatedResponse(c, product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	if err := h.productService.DeleteProduct(lang, c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// POST /products/describe
func (h *ProductHandler) DescribeProduct(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	description := h.aiService.GenerateProductDescription(c.Request.Context(), req.Name)
	utils.SuccessResponse(c, description)
}

// Non-numeric or empty bounds are treated as unset, matching how the
// storefront price inputs behave.
func parsePriceBound(raw string) *int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseMarketType(raw string) catalog.MarketType {
	switch catalog.MarketType(raw) {
	case catalog.MarketWholesale:
		return catalog.MarketWholesale
	case catalog.MarketThrift:
		return catalog.MarketThrift
	default:
		return catalog.MarketAll
	}
}

func parseSortOrder(raw string) catalog.SortOrder {
	switch catalog.SortOrder(raw) {
	case catalog.SortPriceLow:
		return catalog.SortPriceLow
	case catalog.SortPriceHigh:
		return catalog.SortPriceHigh
	case catalog.SortNewest:
		return catalog.SortNewest
	default:
		return catalog.SortBest
	}
}
