package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	cases := []struct {
		name     string
		existing []slog.Attr
		service  string
		version  string
		wantKeys []string
	}{
		{name: "both", service: "games-api", version: "v1", wantKeys: []string{FieldService, FieldVersion}},
		{name: "version only", version: "v2", wantKeys: []string{FieldVersion}},
		{name: "none keeps existing", existing: []slog.Attr{slog.String("k", "v")}, wantKeys: []string{"k"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := WithCommon(tc.existing, tc.service, tc.version)
			if len(attrs) != len(tc.wantKeys) {
				t.Fatalf("expected %d attrs, got %+v", len(tc.wantKeys), attrs)
			}
			for i, key := range tc.wantKeys {
				if attrs[i].Key != key {
					t.Fatalf("attr %d: expected key %s, got %s", i, key, attrs[i].Key)
				}
			}
		})
	}
}
