package products

import (
	"context"
	"encoding/json"
	"errors"

	domainproducts "github.com/preston-bernstein/games-api/internal/domain/products"
)

// ErrNoProducts is returned when the catalog answered with an empty list.
var ErrNoProducts = errors.New("no products found")

// MockSource generates synthetic products.
type MockSource interface {
	Product() domainproducts.Product
	Products(n int) []domainproducts.Product
}

// Catalog fetches products from the remote catalog.
type Catalog interface {
	Products(ctx context.Context) ([]json.RawMessage, error)
}

// Service coordinates product operations.
type Service struct {
	mocks     MockSource
	catalog   Catalog
	mockCount int
}

// NewService constructs a Service. mockCount sizes the generated list.
func NewService(mocks MockSource, catalog Catalog, mockCount int) *Service {
	if mockCount <= 0 {
		mockCount = 10
	}
	return &Service{mocks: mocks, catalog: catalog, mockCount: mockCount}
}

// Mock returns one generated product.
func (s *Service) Mock() domainproducts.Product {
	return s.mocks.Product()
}

// Mocks returns the configured number of generated products.
func (s *Service) Mocks() []domainproducts.Product {
	return s.mocks.Products(s.mockCount)
}

// CatalogProducts relays the remote catalog. An empty list is reported as
// ErrNoProducts; upstream errors are returned unchanged.
func (s *Service) CatalogProducts(ctx context.Context) ([]json.RawMessage, error) {
	if s.catalog == nil {
		return nil, ErrNoProducts
	}
	items, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoProducts
	}
	return items, nil
}
