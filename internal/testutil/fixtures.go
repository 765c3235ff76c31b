package testutil

import (
	"fmt"

	"github.com/preston-bernstein/games-api/internal/domain/games"
)

// SampleGame returns a minimal stored game with the provided id.
func SampleGame(id int, name string) games.Game {
	return games.Game{
		ID:   id,
		Name: name,
		Year: 1993,
		UUID: fmt.Sprintf("00000000-0000-4000-8000-%012d", id),
	}
}

// SampleGames returns n games with ids 1..n.
func SampleGames(n int) []games.Game {
	out := make([]games.Game, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, SampleGame(i, fmt.Sprintf("Game %d", i)))
	}
	return out
}
