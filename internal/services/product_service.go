// internal/services/product_service.go
package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shahalmix/shahalmix-backend/internal/i18n"
	"github.com/shahalmix/shahalmix-backend/internal/models"
	"github.com/shahalmix/shahalmix-backend/internal/store"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

// ProductService handles the wholesaler's own listings and dashboard
// figures. Buyer-side browsing goes through the catalog pipeline, not
// through here.
type ProductService struct {
	store         *store.Store
	notifications *NotificationService
}

type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	NameUrdu string `json:"name_urdu,omitempty"`
	Price    int64  `json:"price" validate:"required,min=1"`
	Category string `json:"category" validate:"required"`
	Image    string `json:"image,omitempty"`
}

type DashboardStats struct {
	TotalSales   int64 `json:"total_sales"`
	OrderCount   int   `json:"order_count"`
	ProductCount int   `json:"product_count"`
}

func NewProductService(store *store.Store, notifications *NotificationService) *ProductService {
	return &ProductService{
		store:         store,
		notifications: notifications,
	}
}

// CreateProduct lists a new wholesaler product. New listings go to the
// front of the persisted collection so they surface first in the feed.
func (s *ProductService) CreateProduct(lang string, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	image := req.Image
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/seed/%s/400/400", url.PathEscape(req.Name))
	}

	product := models.Product{
		ID:            utils.NewProductID(),
		Name:          req.Name,
		NameUrdu:      req.NameUrdu,
		Price:         req.Price,
		Image:         image,
		Category:      req.Category,
		Seller:        "Zafar Bhai Wholesale",
		Rating:        5.0,
		IsVerified:    true,
		BulkAvailable: true,
		Origin:        models.MarketOriginStandard,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.AddProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.notifications.Notify(i18n.T(lang, i18n.KeyProductListed, product.Name), models.NotificationTypeSuccess)
	return &product, nil
}

// DeleteProduct removes every persisted listing with the given id.
// Unknown ids are a no-op.
func (s *ProductService) DeleteProduct(lang string, id string) error {
	if err := s.store.DeleteProduct(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.notifications.Notify(i18n.T(lang, i18n.KeyProductDeleted), models.NotificationTypeInfo)
	return nil
}

// Listings returns only the persisted wholesaler products, newest first.
func (s *ProductService) Listings() ([]models.Product, error) {
	return s.store.Products()
}

func (s *ProductService) Orders() ([]models.Order, error) {
	return s.store.Orders()
}

// DashboardStats aggregates the figures shown on the wholesaler home
// screen and fed to the AI advisor.
func (s *ProductService) DashboardStats() (*DashboardStats, error) {
	orders, err := s.store.Orders()
	if err != nil {
		return nil, err
	}
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		OrderCount:   len(orders),
		ProductCount: len(products),
	}
	for _, order := range orders {
		stats.TotalSales += order.Amount
	}
	return stats, nil
}
