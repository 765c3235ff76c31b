package games

import (
	"context"
	"strconv"
	"strings"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	List() []domaingames.Game
	GetByID(id int) (domaingames.Game, bool)
	Append(ctx context.Context, d domaingames.Draft) (domaingames.Game, []domaingames.Game)
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current set of games.
func (s *Service) Games() []domaingames.Game {
	return s.store.List()
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id int) (domaingames.Game, bool) {
	return s.store.GetByID(id)
}

// GameByRawID resolves a path segment to a game. Unparseable input is a miss.
func (s *Service) GameByRawID(raw string) (domaingames.Game, bool) {
	id, ok := ParseID(raw)
	if !ok {
		return domaingames.Game{}, false
	}
	return s.store.GetByID(id)
}

// Create appends a game built from decoded request fields and returns the
// collection after the insert.
func (s *Service) Create(ctx context.Context, fields map[string]any) (domaingames.Game, []domaingames.Game) {
	return s.store.Append(ctx, domaingames.DraftFromFields(fields))
}

// ParseID reads a leading integer the lenient way path ids have always been
// read: surrounding whitespace and a sign are allowed and parsing stops at the
// first non-digit, so "2abc" is 2. No digits at all is a failure.
func ParseID(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}
