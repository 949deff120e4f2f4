package upload

import (
	"strings"
	"testing"
)

func TestPublicID_KeepsReadablePrefix(t *testing.T) {
	id := publicID("report final.pdf")
	if !strings.HasPrefix(id, "report_final_") {
		t.Fatalf("expected sanitized prefix, got %q", id)
	}
	if strings.HasSuffix(id, "_") {
		t.Fatalf("expected a ULID suffix, got %q", id)
	}
}

func TestPublicID_UniquePerCall(t *testing.T) {
	a := publicID("a.png")
	b := publicID("a.png")
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}

func TestPublicID_EmptyName(t *testing.T) {
	if id := publicID(""); id == "" {
		t.Fatalf("expected a generated id for empty filename")
	}
}
