// internal/models/product.go
package models

import "time"

// Product is a catalog record. Prices are in whole rupees. Records are
// immutable once listed; the only mutation path is full replacement in
// the store.
type Product struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	NameUrdu       string       `json:"name_urdu,omitempty"`
	Price          int64        `json:"price"`
	WholesalePrice int64        `json:"wholesale_price,omitempty"`
	MOQ            int          `json:"moq,omitempty"`
	Image          string       `json:"image"`
	Category       string       `json:"category"`
	Subcategory    string       `json:"subcategory,omitempty"`
	Microcategory  string       `json:"microcategory,omitempty"`
	Seller         string       `json:"seller"`
	Rating         float64      `json:"rating"`
	IsVerified     bool         `json:"is_verified,omitempty"`
	BulkAvailable  bool         `json:"bulk_available,omitempty"`
	Origin         MarketOrigin `json:"origin"`
	CreatedAt      time.Time    `json:"created_at"`
}
