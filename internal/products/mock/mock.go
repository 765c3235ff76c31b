// Package mock generates synthetic product records. Nothing it returns is stored.
package mock

import (
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/preston-bernstein/games-api/internal/domain/products"
)

const (
	minPrice    = 1
	maxPrice    = 1000
	imageWidth  = 640
	imageHeight = 480
	imageSeedN  = 10
)

// Generator produces product mocks. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	faker   *gofakeit.Faker
	newUUID func() string
}

// New returns a randomly seeded generator.
func New() *Generator {
	return NewSeeded(0)
}

// NewSeeded returns a generator whose text fields are reproducible for a
// non-zero seed. A zero seed picks a random one.
func NewSeeded(seed uint64) *Generator {
	return &Generator{
		faker:   gofakeit.New(seed),
		newUUID: uuid.NewString,
	}
}

// Product returns one freshly generated record.
func (g *Generator) Product() products.Product {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.product()
}

// Products returns n records. Non-positive n yields an empty slice.
func (g *Generator) Products(n int) []products.Product {
	if n <= 0 {
		return []products.Product{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]products.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.product())
	}
	return out
}

// product must be called with g.mu held.
func (g *Generator) product() products.Product {
	price := decimal.NewFromFloat(g.faker.Price(minPrice, maxPrice)).Round(2)
	if price.LessThan(decimal.NewFromInt(minPrice)) {
		price = decimal.NewFromInt(minPrice)
	}
	return products.Product{
		ID:          g.newUUID(),
		Title:       g.faker.ProductName(),
		Price:       price.StringFixed(2),
		Description: g.faker.ProductDescription(),
		Image: fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d",
			g.faker.LetterN(imageSeedN), imageWidth, imageHeight),
	}
}
