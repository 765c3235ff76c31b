package teststubs

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/games-api/internal/domain/games"
)

// StubCatalog is a test double for the remote product catalog.
type StubCatalog struct {
	Items []json.RawMessage
	Err   error
	Calls atomic.Int32
}

// Products returns the configured items and error while tracking calls.
func (s *StubCatalog) Products(ctx context.Context) ([]json.RawMessage, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Items, s.Err
}

// RawProducts turns JSON object literals into catalog items.
func RawProducts(objects ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(objects))
	for _, o := range objects {
		out = append(out, json.RawMessage(o))
	}
	return out
}

// StubStore is a test double for the games store that records every call.
type StubStore struct {
	mu          sync.Mutex
	Games       []games.Game
	LoadErr     error
	PersistErr  error
	LoadCalls   int
	AppendCalls int
	Persisted   int
	loaded      bool
}

func (s *StubStore) Load(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LoadCalls++
	s.loaded = true
	if s.LoadErr != nil {
		s.Games = nil
	}
	return s.LoadErr
}

// Loaded reports whether Load has been called.
func (s *StubStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *StubStore) List() []games.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]games.Game{}, s.Games...)
}

func (s *StubStore) GetByID(id int) (games.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.Games {
		if g.ID == id {
			return g, true
		}
	}
	return games.Game{}, false
}

func (s *StubStore) Append(ctx context.Context, d games.Draft) (games.Game, []games.Game) {
	s.mu.Lock()
	s.AppendCalls++
	g := games.New(d, len(s.Games)+1, "stub-uuid", 2025)
	s.Games = append(s.Games, g)
	list := append([]games.Game{}, s.Games...)
	s.mu.Unlock()

	_ = s.Persist(ctx)
	return g, list
}

func (s *StubStore) Persist(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Persisted++
	return s.PersistErr
}
