package callgrid

import (
	"encoding/base64"
	"testing"
)

func TestSign_Deterministic(t *testing.T) {
	s := NewSigner("secret")
	payload := []byte(`{"filter":{"callIds":["123"]}}`)

	first := s.Sign("POST", "/calls/extensive", "2026-01-02T03:04:05Z", payload)
	for i := 0; i < 10; i++ {
		got := s.Sign("POST", "/calls/extensive", "2026-01-02T03:04:05Z", payload)
		if got != first {
			t.Fatalf("signature changed between invocations: %q vs %q", got, first)
		}
	}
}

func TestSign_IsStandardBase64(t *testing.T) {
	s := NewSigner("secret")
	sig := s.Sign("GET", "/calls", "2026-01-02T03:04:05Z", nil)
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		t.Fatalf("signature is not padded standard base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("expected 32-byte SHA-256 digest, got %d bytes", len(raw))
	}
}

func TestSign_SensitiveToEveryInput(t *testing.T) {
	base := NewSigner("secret").Sign("GET", "/calls", "2026-01-02T03:04:05Z", []byte(`{"a":"b"}`))

	variants := map[string]string{
		"method":    NewSigner("secret").Sign("POST", "/calls", "2026-01-02T03:04:05Z", []byte(`{"a":"b"}`)),
		"path":      NewSigner("secret").Sign("GET", "/users", "2026-01-02T03:04:05Z", []byte(`{"a":"b"}`)),
		"timestamp": NewSigner("secret").Sign("GET", "/calls", "2026-01-02T03:04:06Z", []byte(`{"a":"b"}`)),
		"payload":   NewSigner("secret").Sign("GET", "/calls", "2026-01-02T03:04:05Z", []byte(`{"a":"c"}`)),
		"secret":    NewSigner("other").Sign("GET", "/calls", "2026-01-02T03:04:05Z", []byte(`{"a":"b"}`)),
	}
	for name, got := range variants {
		if got == base {
			t.Errorf("changing %s did not change the signature", name)
		}
	}
}

func TestSign_EmptyPayloadDiffersFromEmptyObject(t *testing.T) {
	s := NewSigner("secret")
	absent := s.Sign("GET", "/calls", "2026-01-02T03:04:05Z", nil)
	empty := s.Sign("GET", "/calls", "2026-01-02T03:04:05Z", []byte("{}"))
	if absent == empty {
		t.Error("absent payload and {} payload must canonicalize differently")
	}
}
