package wire

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := [][]byte{
		[]byte("root-public-key"),
		[]byte(""),
		[]byte("a raw link blob"),
		bytes.Repeat([]byte{0xab}, 300),
	}
	enc := Encode(in...)
	out, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("frame count: got %d want %d", len(out), len(in))
	}
	for i := range in {
		if !bytes.Equal(out[i], in[i]) {
			t.Fatalf("frame %d mismatch", i)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	out, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Decode(nil): got %d frames want 0", len(out))
	}
}

func TestDecodeTruncated(t *testing.T) {
	enc := Encode([]byte("payload"))
	for cut := 1; cut < len(enc); cut++ {
		if _, err := Decode(enc[:cut]); err == nil {
			t.Fatalf("Decode accepted truncation at %d", cut)
		}
	}
}

func TestDecodeOversizeLength(t *testing.T) {
	// uvarint announcing 2 MiB with no payload behind it.
	b := []byte{0x80, 0x80, 0x80, 0x01} // 1<<21
	if _, err := Decode(b); err == nil {
		t.Fatalf("Decode accepted oversize length")
	}
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	enc := Encode([]byte("abc"))
	out, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	enc[len(enc)-1] = 'z'
	if !bytes.Equal(out[0], []byte("abc")) {
		t.Fatalf("decoded frame aliases input buffer")
	}
}
