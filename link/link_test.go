package link

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"
)

func testKeypair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	return pub, priv
}

func TestSignParseRoundTrip(t *testing.T) {
	_, issuerPriv := testKeypair(t)
	subjectPub, _ := testKeypair(t)
	expiry := time.Unix(1900000000, 0).UTC()

	raw, err := SignEd25519(issuerPriv, subjectPub, expiry, HashSHA256)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}

	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !bytes.Equal(l.SubjectKey, subjectPub) {
		t.Fatalf("subject mismatch")
	}
	if !l.Expiry.Equal(expiry) {
		t.Fatalf("expiry: got %v want %v", l.Expiry, expiry)
	}
	if l.SigAlg != SigEd25519 || l.HashAlg != HashSHA256 {
		t.Fatalf("algs: got %v/%v", l.SigAlg, l.HashAlg)
	}
	if !bytes.Equal(l.Raw(), raw) {
		t.Fatalf("Raw() does not round-trip")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"short":      []byte("WOT1"),
		"bad magic":  append([]byte("XXX1\x01\x01"), 0x00),
		"bad sigalg": append([]byte("WOT1\x09\x01"), 0x00),
	}
	for name, raw := range cases {
		if _, err := Parse(raw); err == nil {
			t.Fatalf("%s: Parse accepted invalid bytes", name)
		} else if !IsMalformed(err) {
			t.Fatalf("%s: error not a codec error: %v", name, err)
		}
	}
}

func TestParseRejectsTrailingBytes(t *testing.T) {
	_, priv := testKeypair(t)
	subject, _ := testKeypair(t)
	raw, err := SignEd25519(priv, subject, time.Unix(1900000000, 0), HashSHA256)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}
	if _, err := Parse(append(raw, 0x00)); err == nil {
		t.Fatalf("Parse accepted trailing bytes")
	}
}

func TestParseRejectsTruncation(t *testing.T) {
	_, priv := testKeypair(t)
	subject, _ := testKeypair(t)
	raw, err := SignEd25519(priv, subject, time.Unix(1900000000, 0), HashSHA256)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}
	for cut := 1; cut < len(raw); cut++ {
		if _, err := Parse(raw[:cut]); err == nil {
			t.Fatalf("Parse accepted truncation at %d", cut)
		}
	}
}

func TestExpired(t *testing.T) {
	_, priv := testKeypair(t)
	subject, _ := testKeypair(t)
	expiry := time.Unix(1000, 0)
	raw, err := SignEd25519(priv, subject, expiry, HashSHA256)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}
	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !l.Expired(time.Unix(1000, 0)) {
		t.Fatalf("link at exact expiry must count as expired")
	}
	if !l.Expired(time.Unix(2000, 0)) {
		t.Fatalf("link past expiry must count as expired")
	}
	if l.Expired(time.Unix(999, 0)) {
		t.Fatalf("link before expiry must not count as expired")
	}
}

func TestParseDoesNotAliasInput(t *testing.T) {
	_, priv := testKeypair(t)
	subject, _ := testKeypair(t)
	raw, err := SignEd25519(priv, subject, time.Unix(1900000000, 0), HashSHA256)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}
	orig := append([]byte(nil), raw...)
	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	raw[len(raw)-1] ^= 0xff
	if !bytes.Equal(l.Raw(), orig) {
		t.Fatalf("parsed link aliases caller's buffer")
	}
}
