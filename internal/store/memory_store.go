package store

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/preston-bernstein/games-api/internal/domain/games"
)

// MemoryStore keeps the games collection in memory only.
type MemoryStore struct {
	mu         sync.RWMutex
	games      []games.Game
	policyYear int
	newUUID    func() string
	loaded     atomic.Bool
}

// NewMemoryStore constructs an empty MemoryStore stamping appended games with policyYear.
func NewMemoryStore(policyYear int) *MemoryStore {
	return &MemoryStore{
		games:      []games.Game{},
		policyYear: policyYear,
		newUUID:    uuid.NewString,
	}
}

// Load marks the store ready. There is nothing to read.
func (s *MemoryStore) Load(context.Context) error {
	s.loaded.Store(true)
	return nil
}

// Loaded reports whether Load has run.
func (s *MemoryStore) Loaded() bool {
	return s.loaded.Load()
}

// List returns a copy of the current games slice.
func (s *MemoryStore) List() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.games)
}

// GetByID retrieves a game by its positional ID.
func (s *MemoryStore) GetByID(id int) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.ID == id {
			return g, true
		}
	}
	return games.Game{}, false
}

// Append assigns id, uuid and year under the write lock so concurrent appends never collide.
func (s *MemoryStore) Append(_ context.Context, d games.Draft) (games.Game, []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := games.New(d, len(s.games)+1, s.newUUID(), s.policyYear)
	s.games = append(s.games, g)
	return g, slices.Clone(s.games)
}

// Persist is a no-op for the in-memory store.
func (s *MemoryStore) Persist(context.Context) error {
	return nil
}

// SetGames replaces the existing games with a new collection.
func (s *MemoryStore) SetGames(list []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list == nil {
		list = []games.Game{}
	}
	s.games = slices.Clone(list)
}

// Len returns the collection size.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
