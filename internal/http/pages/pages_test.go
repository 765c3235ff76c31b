package pages

import (
	"bytes"
	"testing"
)

func TestPagesEmbedded(t *testing.T) {
	if !bytes.Contains(Index(), []byte("Welcome to my server")) {
		t.Fatalf("expected index page content")
	}
	if !bytes.Contains(About(), []byte(`href="/about"`)) {
		t.Fatalf("expected about page content")
	}
}
