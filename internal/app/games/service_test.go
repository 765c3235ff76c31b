package games

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
)

type stubStore struct {
	listResult []domaingames.Game
	byID       map[int]domaingames.Game

	lookups     []int
	appendCalls int
	appended    domaingames.Draft
}

func (s *stubStore) List() []domaingames.Game {
	return s.listResult
}

func (s *stubStore) GetByID(id int) (domaingames.Game, bool) {
	s.lookups = append(s.lookups, id)
	g, ok := s.byID[id]
	return g, ok
}

func (s *stubStore) Append(_ context.Context, d domaingames.Draft) (domaingames.Game, []domaingames.Game) {
	s.appendCalls++
	s.appended = d
	g := domaingames.New(d, len(s.listResult)+1, "uuid-1", 2025)
	s.listResult = append(s.listResult, g)
	return g, s.listResult
}

func TestServiceGames(t *testing.T) {
	store := &stubStore{
		listResult: []domaingames.Game{{ID: 1}, {ID: 2}},
	}
	svc := NewService(store)

	got := svc.Games()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestServiceGameByRawID(t *testing.T) {
	store := &stubStore{byID: map[int]domaingames.Game{2: {ID: 2, Name: "Doom"}}}
	svc := NewService(store)

	g, ok := svc.GameByRawID("2")
	require.True(t, ok)
	assert.Equal(t, "Doom", g.Name)

	g, ok = svc.GameByRawID("2abc")
	require.True(t, ok)
	assert.Equal(t, 2, g.ID)

	_, ok = svc.GameByRawID("abc")
	assert.False(t, ok)
	assert.Equal(t, []int{2, 2}, store.lookups, "non-numeric ids must not reach the store")

	_, ok = svc.GameByRawID("7")
	assert.False(t, ok)
}

func TestServiceGameByID(t *testing.T) {
	store := &stubStore{byID: map[int]domaingames.Game{1: {ID: 1}}}
	svc := NewService(store)

	_, ok := svc.GameByID(1)
	assert.True(t, ok)
	_, ok = svc.GameByID(0)
	assert.False(t, ok)
}

func TestServiceCreateBuildsDraftFromFields(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	g, list := svc.Create(context.Background(), map[string]any{
		"name":  "Tetris",
		"id":    99,
		"year":  1984,
		"genre": "puzzle",
	})

	assert.Equal(t, 1, store.appendCalls)
	assert.Equal(t, "Tetris", store.appended.Name)
	assert.Equal(t, map[string]any{"genre": "puzzle"}, store.appended.Extra)
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, 2025, g.Year)
	assert.Len(t, list, 1)
}

func TestServiceCreateWithEmptyFields(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	g, _ := svc.Create(context.Background(), nil)
	assert.Equal(t, "", g.Name)
	assert.Equal(t, 1, store.appendCalls)
}

func TestParseID(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{" 3", 3, true},
		{"+4", 4, true},
		{"-1", -1, true},
		{"0", 0, true},
		{"2abc", 2, true},
		{"2.9", 2, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseID(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseID(%q) = %d, %v; want %d, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
