package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/games-api/internal/domain/games"
)

func TestStubCatalogTracksCalls(t *testing.T) {
	err := errors.New("boom")
	c := &StubCatalog{Items: RawProducts(`{"id":1}`), Err: err}
	items, got := c.Products(context.Background())
	if !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if len(items) != 1 || string(items[0]) != `{"id":1}` {
		t.Fatalf("unexpected items %s", items)
	}
	if c.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", c.Calls.Load())
	}
}

func TestStubStoreAppendPersists(t *testing.T) {
	s := &StubStore{PersistErr: errors.New("disk full")}
	g, list := s.Append(context.Background(), games.Draft{Name: "a"})
	if g.ID != 1 || len(list) != 1 {
		t.Fatalf("unexpected append result %+v %d", g, len(list))
	}
	if s.AppendCalls != 1 || s.Persisted != 1 {
		t.Fatalf("expected append and persist to be counted, got %d/%d", s.AppendCalls, s.Persisted)
	}
	if _, ok := s.GetByID(1); !ok {
		t.Fatalf("expected appended game to be found")
	}
}

func TestStubStoreLoadError(t *testing.T) {
	s := &StubStore{Games: []games.Game{{ID: 1}}, LoadErr: errors.New("missing")}
	if err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if !s.Loaded() || len(s.List()) != 0 {
		t.Fatalf("expected failed load to reset games and mark loaded")
	}
}
