package chain

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	issuer := []byte("issuer-public-key")
	subject := []byte("subject-public-key")
	raw := []byte("raw signed link bytes")
	expiry := time.Unix(1_900_000_000, 0).UTC()

	value := encodeRecord(issuer, subject, raw, expiry)
	gotIssuer, gotSubject, gotRaw, gotExpiry, err := decodeRecord(value)
	if err != nil {
		t.Fatalf("decodeRecord failed: %v", err)
	}
	if !bytes.Equal(gotIssuer, issuer) || !bytes.Equal(gotSubject, subject) || !bytes.Equal(gotRaw, raw) {
		t.Fatalf("record fields do not round-trip")
	}
	if !gotExpiry.Equal(expiry) {
		t.Fatalf("expiry: got %v want %v", gotExpiry, expiry)
	}
}

func TestDecodeRecordRejectsGarbage(t *testing.T) {
	for name, value := range map[string][]byte{
		"empty":        nil,
		"truncated":    {0x10, 0x01},
		"wrong frames": encodeRecord([]byte("a"), []byte("b"), []byte("c"), time.Unix(0, 0))[:3],
	} {
		if _, _, _, _, err := decodeRecord(value); err == nil {
			t.Fatalf("%s: decodeRecord accepted invalid value", name)
		}
	}
}

func TestRecordKeyShape(t *testing.T) {
	issuer := []byte("issuer-key")
	subject := []byte("subject-key")
	key := string(recordKey(issuer, subject))
	if !strings.HasPrefix(key, recordPrefix) {
		t.Fatalf("record key missing prefix: %s", key)
	}
	// One record per (issuer, subject) pair: same inputs, same key.
	if key != string(recordKey(issuer, subject)) {
		t.Fatalf("record key not deterministic")
	}
	if key == string(recordKey(subject, issuer)) {
		t.Fatalf("record key ignores edge direction")
	}
}
