// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shahalmix/shahalmix-backend/internal/catalog"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, catalog.Categories)
}
