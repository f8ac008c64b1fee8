package keyid

import (
	"strings"
	"testing"
)

func TestFingerprintDeterministic(t *testing.T) {
	pub := []byte("some public key bytes")
	a := Fingerprint(pub)
	b := Fingerprint(pub)
	if a == "" {
		t.Fatalf("Fingerprint returned empty string")
	}
	if a != b {
		t.Fatalf("Fingerprint not deterministic: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "b") {
		t.Fatalf("expected base32 CIDv1 string, got %s", a)
	}
}

func TestFingerprintDistinguishesKeys(t *testing.T) {
	if Fingerprint([]byte("key-a")) == Fingerprint([]byte("key-b")) {
		t.Fatalf("distinct keys share a fingerprint")
	}
}

func TestFingerprintCIDMatchesString(t *testing.T) {
	pub := []byte("another key")
	id, err := FingerprintCID(pub)
	if err != nil {
		t.Fatalf("FingerprintCID failed: %v", err)
	}
	if id.String() != Fingerprint(pub) {
		t.Fatalf("CID string mismatch: %s vs %s", id.String(), Fingerprint(pub))
	}
}

func TestShort(t *testing.T) {
	s := Short([]byte("some public key bytes"))
	if len(s) != 16 {
		t.Fatalf("Short length: got %d want 16", len(s))
	}
}
