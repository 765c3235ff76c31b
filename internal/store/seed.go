package store

import "github.com/preston-bernstein/games-api/internal/domain/games"

// SeedGames returns the starter collection used by the in-memory backend.
// These records predate uuids and carry none.
func SeedGames() []games.Game {
	return []games.Game{
		{ID: 1, Name: "The Incredible Machine", Year: 1993},
		{ID: 2, Name: "Lemmings", Year: 1991},
		{ID: 3, Name: "Day of the Tentacle", Year: 1993},
	}
}

// NewSeededMemoryStore constructs a MemoryStore preloaded with SeedGames.
func NewSeededMemoryStore(policyYear int) *MemoryStore {
	s := NewMemoryStore(policyYear)
	s.SetGames(SeedGames())
	return s
}
