package testutil

import (
	appgames "github.com/preston-bernstein/games-api/internal/app/games"
	appproducts "github.com/preston-bernstein/games-api/internal/app/products"
	"github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/products/mock"
	"github.com/preston-bernstein/games-api/internal/store"
)

// PolicyYear is the year stamped on games appended in tests.
const PolicyYear = 2025

// NewGamesService builds a games service backed by an in-memory store preloaded with games.
func NewGamesService(g []games.Game) (*appgames.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore(PolicyYear)
	if len(g) > 0 {
		ms.SetGames(g)
	}
	return appgames.NewService(ms), ms
}

// NewProductsService builds a products service with a seeded mock generator.
func NewProductsService(catalog appproducts.Catalog, mockCount int) *appproducts.Service {
	return appproducts.NewService(mock.NewSeeded(7), catalog, mockCount)
}
