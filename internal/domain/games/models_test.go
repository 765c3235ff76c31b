package games

import (
	"encoding/json"
	"testing"
)

func TestDraftFromFieldsDropsServerAssignedKeys(t *testing.T) {
	d := DraftFromFields(map[string]any{
		"name":      "Lemmings",
		"id":        99.0,
		"uuid":      "client-uuid",
		"year":      1991.0,
		"publisher": "Psygnosis",
	})

	if d.Name != "Lemmings" {
		t.Fatalf("expected name Lemmings, got %q", d.Name)
	}
	if len(d.Extra) != 1 || d.Extra["publisher"] != "Psygnosis" {
		t.Fatalf("expected only publisher in extras, got %v", d.Extra)
	}
}

func TestDraftFromFieldsStringifiesNonStringName(t *testing.T) {
	if got := DraftFromFields(map[string]any{"name": 42.0}).Name; got != "42" {
		t.Fatalf("expected numeric name to be stringified, got %q", got)
	}
	if got := DraftFromFields(map[string]any{"name": nil}).Name; got != "" {
		t.Fatalf("expected null name to be empty, got %q", got)
	}
	if got := DraftFromFields(nil).Name; got != "" {
		t.Fatalf("expected empty draft from nil fields, got %q", got)
	}
}

func TestNewCopiesExtras(t *testing.T) {
	d := Draft{Name: "Day of the Tentacle", Extra: map[string]any{"genre": "adventure"}}
	g := New(d, 3, "uuid-3", 2025)

	d.Extra["genre"] = "mutated"
	if g.Extra["genre"] != "adventure" {
		t.Fatalf("expected game extras to be independent of the draft")
	}
	if g.ID != 3 || g.UUID != "uuid-3" || g.Year != 2025 || g.Name != "Day of the Tentacle" {
		t.Fatalf("unexpected game %+v", g)
	}
}

func TestMarshalWithoutExtrasUsesFixedShape(t *testing.T) {
	g := Game{ID: 1, Name: "The Incredible Machine", Year: 1993, UUID: "u-1"}
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name":"The Incredible Machine","year":1993,"uuid":"u-1"}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestMarshalMergesExtrasWithoutOverridingFixedFields(t *testing.T) {
	g := Game{ID: 2, Name: "Lemmings", Year: 2025, UUID: "u-2", Extra: map[string]any{"platform": "Amiga", "id": 500}}
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["platform"] != "Amiga" {
		t.Fatalf("expected extra field in output, got %v", decoded)
	}
	if decoded["id"] != 2.0 {
		t.Fatalf("expected fixed id to win over extras, got %v", decoded["id"])
	}
}

func TestUnmarshalCollectsUnknownKeys(t *testing.T) {
	var g Game
	err := json.Unmarshal([]byte(`{"id":4,"name":"Myst","year":2025,"uuid":"u-4","rating":5}`), &g)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.ID != 4 || g.Name != "Myst" || g.UUID != "u-4" {
		t.Fatalf("unexpected fixed fields %+v", g)
	}
	if g.Extra["rating"] != 5.0 {
		t.Fatalf("expected rating extra, got %v", g.Extra)
	}
}

func TestUnmarshalRejectsWrongTypes(t *testing.T) {
	var g Game
	if err := json.Unmarshal([]byte(`{"id":"one"}`), &g); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestMarshalKeepsFixedFieldsFirst(t *testing.T) {
	g := Game{ID: 5, Name: "Myst", Year: 2025, UUID: "u-5", Extra: map[string]any{"zeta": 1, "alpha": "a"}}
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":5,"name":"Myst","year":2025,"uuid":"u-5","alpha":"a","zeta":1}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestMarshalOmitsEmptyUUID(t *testing.T) {
	b, err := json.Marshal(Game{ID: 2, Name: "Lemmings", Year: 1991})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"id":2,"name":"Lemmings","year":1991}`; string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestDraftFromFieldsDropsCaseVariantsOfFixedKeys(t *testing.T) {
	d := DraftFromFields(map[string]any{
		"name":  "Myst",
		"Year":  "1993",
		"ID":    "x",
		"UUID":  5.0,
		"NAME":  "shadow",
		"genre": "puzzle",
	})
	if d.Name != "Myst" {
		t.Fatalf("expected exact name key to win, got %q", d.Name)
	}
	if len(d.Extra) != 1 || d.Extra["genre"] != "puzzle" {
		t.Fatalf("expected only genre in extras, got %v", d.Extra)
	}
}

func TestUnmarshalReadsFixedFieldsByExactKey(t *testing.T) {
	var g Game
	err := json.Unmarshal([]byte(`{"id":1,"name":"Doom","year":1993,"Year":"1993","ID":"x","uuid":"u-1"}`), &g)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.ID != 1 || g.Year != 1993 || g.Name != "Doom" || g.UUID != "u-1" {
		t.Fatalf("unexpected fixed fields %+v", g)
	}
	if len(g.Extra) != 0 {
		t.Fatalf("expected case variants to be discarded, got %v", g.Extra)
	}
}

func TestMarshalRoundTripWithExtras(t *testing.T) {
	in := Game{ID: 3, Name: "Day of the Tentacle", Year: 1993, UUID: "u-3", Extra: map[string]any{"platform": "DOS"}}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Game
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != 3 || out.UUID != "u-3" || out.Extra["platform"] != "DOS" {
		t.Fatalf("unexpected round trip %+v", out)
	}
}
