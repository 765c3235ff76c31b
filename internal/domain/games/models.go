package games

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Game is one entry of the games collection.
//
// ID is positional (collection length at insert time); UUID is the durable identity.
type Game struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
	UUID string `json:"uuid"`
	// Extra holds caller-supplied fields beyond the fixed ones. They are
	// serialized next to the fixed fields and survive a reload.
	Extra map[string]any `json:"-"`
}

// Draft carries caller-supplied fields for a game that has not been stored yet.
type Draft struct {
	Name  string
	Extra map[string]any
}

const (
	keyID   = "id"
	keyName = "name"
	keyYear = "year"
	keyUUID = "uuid"
)

// isReserved matches the fixed keys case-insensitively. encoding/json binds
// object keys to struct fields the same way, so a "Year" extra would collide
// with year on the next decode.
func isReserved(key string) bool {
	for _, fixed := range [...]string{keyID, keyName, keyYear, keyUUID} {
		if strings.EqualFold(key, fixed) {
			return true
		}
	}
	return false
}

// DraftFromFields builds a Draft from a decoded request body. Server-assigned
// keys (id, uuid, year) and any case variant of a fixed key are dropped; a
// non-string name is kept in its JSON form.
func DraftFromFields(fields map[string]any) Draft {
	var d Draft
	for k, v := range fields {
		switch {
		case k == keyName:
			d.Name = stringify(v)
		case isReserved(k):
			continue
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			d.Extra[k] = v
		}
	}
	return d
}

// New assembles a Game from a draft and the server-assigned identity fields.
func New(d Draft, id int, uuid string, year int) Game {
	return Game{
		ID:    id,
		Name:  d.Name,
		Year:  year,
		UUID:  uuid,
		Extra: maps.Clone(d.Extra),
	}
}

// MarshalJSON writes id, name, year and uuid first, then extra attributes in
// key order. An empty uuid is omitted, as on records that predate uuids.
func (g Game) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, val any) error {
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("game %s: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		return nil
	}

	if err := write(keyID, g.ID); err != nil {
		return nil, err
	}
	if err := write(keyName, g.Name); err != nil {
		return nil, err
	}
	if err := write(keyYear, g.Year); err != nil {
		return nil, err
	}
	if g.UUID != "" {
		if err := write(keyUUID, g.UUID); err != nil {
			return nil, err
		}
	}
	for _, k := range slices.Sorted(maps.Keys(g.Extra)) {
		if isReserved(k) {
			continue
		}
		if err := write(k, g.Extra[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the fixed fields by exact key and collects every other
// key into Extra. Case variants of fixed keys are discarded.
func (g *Game) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var out Game
	fixed := []struct {
		key  string
		dest any
	}{
		{keyID, &out.ID},
		{keyName, &out.Name},
		{keyYear, &out.Year},
		{keyUUID, &out.UUID},
	}
	for _, f := range fixed {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dest); err != nil {
			return fmt.Errorf("game %s: %w", f.key, err)
		}
	}

	for k, v := range raw {
		if isReserved(k) {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[k] = val
	}
	*g = out
	return nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
