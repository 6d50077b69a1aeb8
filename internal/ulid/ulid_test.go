package ulid

import (
	"strings"
	"testing"
)

func TestNewUnique(t *testing.T) {
	a, b := New(), New()
	if len(a) != 26 {
		t.Errorf("expected 26-char ulid, got %q", a)
	}
	if a == b {
		t.Error("expected unique ids")
	}
}

func TestNewMarkupID(t *testing.T) {
	id := NewMarkupID("flash")
	if !strings.HasPrefix(id, "flash-") {
		t.Errorf("expected 'flash-' prefix, got %q", id)
	}
	if id != strings.ToLower(id) {
		t.Errorf("expected lower-case id, got %q", id)
	}
}
