// internal/catalog/pipeline.go
package catalog

import (
	"sort"
	"strings"

	"github.com/shahalmix/shahalmix-backend/internal/models"
)

type MarketType string

const (
	MarketAll       MarketType = "all"
	MarketWholesale MarketType = "wholesale"
	MarketThrift    MarketType = "thrift"
)

type SortOrder string

const (
	SortBest      SortOrder = "best"
	SortPriceLow  SortOrder = "price_low"
	SortPriceHigh SortOrder = "price_high"
	SortNewest    SortOrder = "newest"
)

// Query is the buyer-facing filter state. All predicates are conjunctive.
// Nil price bounds mean unbounded; the zero value matches everything in
// aggregation order. Seller is exact name equality for storefront views,
// unlike SearchText which substring-matches.
type Query struct {
	SearchText   string
	Seller       string
	MinPrice     *int64
	MaxPrice     *int64
	MarketType   MarketType
	MinRating    float64
	VerifiedOnly bool
	SortBy       SortOrder
}

// FilterAndSort derives the display list from the aggregated catalog.
// The result is a fresh slice; neither input is mutated. Sorts are
// stable, so ties keep their filtered order.
func FilterAndSort(products []models.Product, query Query) []models.Product {
	search := strings.ToLower(query.SearchText)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, query, search) {
			continue
		}
		result = append(result, p)
	}

	switch query.SortBy {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	}

	return result
}

func matches(p models.Product, query Query, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Seller), search) {
		return false
	}

	if query.Seller != "" && p.Seller != query.Seller {
		return false
	}

	if query.MinPrice != nil && p.Price < *query.MinPrice {
		return false
	}
	if query.MaxPrice != nil && p.Price > *query.MaxPrice {
		return false
	}

	switch query.MarketType {
	case MarketWholesale:
		if !p.BulkAvailable {
			return false
		}
	case MarketThrift:
		if p.Origin != models.MarketOriginThrift {
			return false
		}
	}

	if p.Rating < query.MinRating {
		return false
	}
	if query.VerifiedOnly && !p.IsVerified {
		return false
	}
	return true
}
