// internal/catalog/aggregate.go
package catalog

import (
	"github.com/shahalmix/shahalmix-backend/internal/models"
	"github.com/shahalmix/shahalmix-backend/internal/store"
)

// Aggregate concatenates all product sources in fixed order: persisted
// listings first, then the general mock catalog, the wholesale hub and
// the thrift set. Sources are not deduplicated; id prefixes keep them
// apart by convention.
func Aggregate(s *store.Store) ([]models.Product, error) {
	persisted, err := s.Products()
	if err != nil {
		return nil, err
	}

	combined := make([]models.Product, 0, len(persisted)+len(MockProducts)+len(WholesaleHubProducts)+len(ThriftProducts))
	combined = append(combined, persisted...)
	combined = append(combined, MockProducts...)
	combined = append(combined, WholesaleHubProducts...)
	combined = append(combined, ThriftProducts...)
	return combined, nil
}
