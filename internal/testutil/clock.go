package testutil

import (
	"time"

	"github.com/preston-bernstein/games-api/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseISO parses a millisecond ISO-8601 timestamp or panics; intended for tests.
func MustParseISO(v string) time.Time {
	t, err := timeutil.ParseISO(v)
	if err != nil {
		panic(err)
	}
	return t
}
