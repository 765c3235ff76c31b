package store

import (
	"context"

	"github.com/preston-bernstein/games-api/internal/domain/games"
)

// Store owns the games collection. Implementations are safe for concurrent use.
type Store interface {
	// Load replaces the collection with the persisted one. On failure the
	// collection is left empty and the error is returned.
	Load(ctx context.Context) error
	// List returns a copy of the collection in insertion order.
	List() []games.Game
	// GetByID returns the first game whose ID matches.
	GetByID(id int) (games.Game, bool)
	// Append stores a new game built from the draft and returns it together
	// with the collection as it was right after the insert. Persist failures
	// are logged and swallowed.
	Append(ctx context.Context, d games.Draft) (games.Game, []games.Game)
	// Persist writes the whole collection to durable storage.
	Persist(ctx context.Context) error
}
