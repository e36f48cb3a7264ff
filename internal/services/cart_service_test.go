// internal/services/cart_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahalmix/shahalmix-backend/internal/models"
	"github.com/shahalmix/shahalmix-backend/internal/store"
)

func newTestCartService(t *testing.T) (*CartService, *store.Store, *NotificationService) {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	t.Cleanup(func() { st.Close() })

	notifications := NewNotificationService(time.Minute)
	t.Cleanup(notifications.Close)

	return NewCartService(st, notifications), st, notifications
}

func cartProduct(id string, price int64, bulk bool) models.Product {
	return models.Product{
		ID:            id,
		Name:          "Product " + id,
		Price:         price,
		BulkAvailable: bulk,
		Origin:        models.MarketOriginStandard,
	}
}

func TestCartService_AddAndRemove(t *testing.T) {
	svc, _, notifications := newTestCartService(t)

	require.NoError(t, svc.AddToCart("en", cartProduct("p-1", 1000, false)))
	require.NoError(t, svc.AddToCart("en", cartProduct("p-1", 1000, false)))
	require.NoError(t, svc.AddToCart("en", cartProduct("p-2", 2500, true)))

	items, total, err := svc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(4500), total)
	assert.Len(t, notifications.Active(), 3)

	require.NoError(t, svc.RemoveFromCart("en", 1))
	items, total, err = svc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(3500), total)
	assert.Equal(t, "p-1", items[0].ID)
	assert.Equal(t, "p-2", items[1].ID)
}

func TestCartService_RemoveOutOfRangeIsNoOp(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	require.NoError(t, svc.AddToCart("en", cartProduct("p-1", 1000, false)))

	require.NoError(t, svc.RemoveFromCart("en", -1))
	require.NoError(t, svc.RemoveFromCart("en", 1))
	require.NoError(t, svc.RemoveFromCart("en", 99))

	items, _, err := svc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_PlaceOrderBuildsWholesaleOrder(t *testing.T) {
	svc, st, _ := newTestCartService(t)

	require.NoError(t, svc.AddToCart("en", cartProduct("p-1", 1000, false)))
	require.NoError(t, svc.AddToCart("en", cartProduct("p-2", 2500, true)))

	order, err := svc.PlaceOrder("en")
	require.NoError(t, err)

	assert.Equal(t, int64(3500), order.Amount)
	assert.Equal(t, models.OrderTypeWholesale, order.Type)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Guest User", order.CustomerName)
	assert.Len(t, order.ID, 9)

	// Checkout commits the order and clears the cart together
	orders, err := st.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	items, _, err := svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_PlaceOrderRetailWhenNoBulkItems(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	require.NoError(t, svc.AddToCart("en", cartProduct("p-1", 700, false)))

	order, err := svc.PlaceOrder("en")
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeRetail, order.Type)
}

func TestCartService_PlaceOrderEmptyCart(t *testing.T) {
	svc, st, notifications := newTestCartService(t)

	order, err := svc.PlaceOrder("en")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := st.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	// The failure still surfaces to the user as an error notification
	active := notifications.Active()
	require.Len(t, active, 1)
	assert.Equal(t, models.NotificationTypeError, active[0].Type)
}
