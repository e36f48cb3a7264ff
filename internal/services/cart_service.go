// internal/services/cart_service.go
package services

import (
	"errors"
	"time"

	"github.com/shahalmix/shahalmix-backend/internal/i18n"
	"github.com/shahalmix/shahalmix-backend/internal/models"
	"github.com/shahalmix/shahalmix-backend/internal/store"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartService mutates the cart collection and synthesizes orders at
// checkout. Cart entries are full product snapshots: a listing edited
// after being added does not change what is already in the cart.
type CartService struct {
	store         *store.Store
	notifications *NotificationService
}

func NewCartService(store *store.Store, notifications *NotificationService) *CartService {
	return &CartService{
		store:         store,
		notifications: notifications,
	}
}

// Items returns the current cart and its total. The total is recomputed
// from the snapshots on every call, never cached.
func (s *CartService) Items() ([]models.Product, int64, error) {
	items, err := s.store.Cart()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return items, total, nil
}

// AddToCart appends a snapshot of the product. Duplicates are allowed;
// the same id may appear any number of times as independent entries.
func (s *CartService) AddToCart(lang string, product models.Product) error {
	items, err := s.store.Cart()
	if err != nil {
		return err
	}
	items = append(items, product)
	if err := s.store.SetCart(items); err != nil {
		return err
	}

	s.notifications.Notify(i18n.T(lang, i18n.KeyCartItemAdded, product.Name), models.NotificationTypeSuccess)
	return nil
}

// RemoveFromCart drops the entry at the given position. An out-of-range
// index leaves the cart unchanged.
func (s *CartService) RemoveFromCart(lang string, index int) error {
	items, err := s.store.Cart()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return nil
	}

	items = append(items[:index], items[index+1:]...)
	if err := s.store.SetCart(items); err != nil {
		return err
	}

	s.notifications.Notify(i18n.T(lang, i18n.KeyCartItemRemoved), models.NotificationTypeInfo)
	return nil
}

func (s *CartService) ClearCart(lang string) error {
	if err := s.store.ClearCart(); err != nil {
		return err
	}
	s.notifications.Notify(i18n.T(lang, i18n.KeyCartCleared), models.NotificationTypeInfo)
	return nil
}

// PlaceOrder freezes the cart total into a new pending order and empties
// the cart in a single atomic commit. An empty cart aborts with no state
// change.
func (s *CartService) PlaceOrder(lang string) (*models.Order, error) {
	items, total, err := s.Items()
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		s.notifications.Notify(i18n.T(lang, i18n.KeyCartEmpty), models.NotificationTypeError)
		return nil, ErrEmptyCart
	}

	orderType := models.OrderTypeRetail
	for _, item := range items {
		if item.BulkAvailable {
			orderType = models.OrderTypeWholesale
			break
		}
	}

	order := models.Order{
		ID:           utils.NewOrderReference(),
		CustomerName: "Guest User",
		Amount:       total,
		Status:       models.OrderStatusPending,
		Date:         time.Now().UTC(),
		Type:         orderType,
	}

	if err := s.store.CommitOrder(order); err != nil {
		return nil, err
	}

	s.notifications.Notify(i18n.T(lang, i18n.KeyOrderPlaced), models.NotificationTypeSuccess)
	return &order, nil
}
