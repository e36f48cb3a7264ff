// internal/store/store.go
package store

import (
	"encoding/json"
	"fmt"

	"github.com/shahalmix/shahalmix-backend/internal/config"
	"github.com/shahalmix/shahalmix-backend/internal/models"
)

// Collection keys. Kept verbatim from the original browser build so an
// exported data file stays readable.
const (
	keyProducts = "shahalmix_products"
	keyOrders   = "shahalmix_orders"
	keyCart     = "shahalmix_cart"
)

// Store exposes the three marketplace collections as whole units on top
// of a KV backend. There are no partial updates: every mutation reads
// the collection, rewrites it, and persists the full sequence.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Open builds a store from configuration. Unknown drivers are an error
// so a typo does not silently fall back to losing data.
func Open(cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case "file":
		kv, err := NewFileKV(cfg.Path)
		if err != nil {
			return nil, err
		}
		return New(kv), nil
	case "sqlite":
		kv, err := NewSQLiteKV(cfg.Path)
		if err != nil {
			return nil, err
		}
		return New(kv), nil
	case "memory":
		return New(NewMemoryKV()), nil
	default:
		return nil, fmt.Errorf("store: unsupported driver %q (supported: file, sqlite, memory)", cfg.Driver)
	}
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// Seed populates a collection from static defaults, but only if its key
// has never been written. Safe to call on every startup.
func (s *Store) Seed(products []models.Product, orders []models.Order) error {
	if _, ok, err := s.kv.Get(keyProducts); err != nil {
		return err
	} else if !ok {
		if err := s.writeProducts(products); err != nil {
			return err
		}
	}

	if _, ok, err := s.kv.Get(keyOrders); err != nil {
		return err
	} else if !ok {
		if err := s.writeOrders(orders); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Products() ([]models.Product, error) {
	var products []models.Product
	if err := s.read(keyProducts, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// AddProduct prepends so the newest listing surfaces first.
func (s *Store) AddProduct(product models.Product) error {
	products, err := s.Products()
	if err != nil {
		return err
	}
	products = append([]models.Product{product}, products...)
	return s.writeProducts(products)
}

// DeleteProduct removes every record with the given id.
func (s *Store) DeleteProduct(id string) error {
	products, err := s.Products()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.writeProducts(kept)
}

func (s *Store) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.read(keyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *Store) AddOrder(order models.Order) error {
	orders, err := s.Orders()
	if err != nil {
		return err
	}
	orders = append([]models.Order{order}, orders...)
	return s.writeOrders(orders)
}

func (s *Store) Cart() ([]models.Product, error) {
	var items []models.Product
	if err := s.read(keyCart, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

func (s *Store) SetCart(items []models.Product) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: marshal cart: %w", err)
	}
	return s.kv.Set(keyCart, raw)
}

func (s *Store) ClearCart() error {
	return s.kv.Delete(keyCart)
}

// CommitOrder prepends the order and empties the cart in one atomic
// multi-key write. Checkout must never leave a state where one of the
// two collections moved and the other did not.
func (s *Store) CommitOrder(order models.Order) error {
	orders, err := s.Orders()
	if err != nil {
		return err
	}
	orders = append([]models.Order{order}, orders...)

	rawOrders, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("store: marshal orders: %w", err)
	}
	rawCart, err := json.Marshal([]models.Product{})
	if err != nil {
		return fmt.Errorf("store: marshal cart: %w", err)
	}

	return s.kv.SetMulti(map[string][]byte{
		keyOrders: rawOrders,
		keyCart:   rawCart,
	})
}

func (s *Store) read(key string, out interface{}) error {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("store: parse %s: %w", key, err)
	}
	return nil
}

func (s *Store) writeProducts(products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("store: marshal products: %w", err)
	}
	return s.kv.Set(keyProducts, raw)
}

func (s *Store) writeOrders(orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("store: marshal orders: %w", err)
	}
	return s.kv.Set(keyOrders, raw)
}
