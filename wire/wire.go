// Package wire implements the uvarint length-prefixed frame encoding used for
// chains, durable index records, and RPC payloads.
//
// A frame is: uvarint(len(payload)) || payload. A frame sequence is frames
// concatenated with no separator. The encoding is canonical: a frame sequence
// decodes to exactly one slice of payloads, and re-encoding those payloads
// reproduces the input bytes.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrTruncated = errors.New("wire: truncated frame")
	ErrOversize  = errors.New("wire: frame exceeds limit")
)

// MaxFrameBytes bounds a single frame payload. Links and public keys are
// small; this exists to reject garbage lengths before allocating.
const MaxFrameBytes = 1 << 20

// AppendFrame appends one frame to dst and returns the extended slice.
func AppendFrame(dst, payload []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(payload)))
	return append(dst, payload...)
}

// ReadFrame decodes one frame from b, returning the payload and the remainder.
// The payload aliases b; callers that retain it must copy.
func ReadFrame(b []byte) (payload, rest []byte, err error) {
	n, used := binary.Uvarint(b)
	if used <= 0 {
		return nil, nil, ErrTruncated
	}
	if n > MaxFrameBytes {
		return nil, nil, ErrOversize
	}
	b = b[used:]
	if uint64(len(b)) < n {
		return nil, nil, ErrTruncated
	}
	return b[:n], b[n:], nil
}

// Encode encodes a frame sequence.
func Encode(payloads ...[]byte) []byte {
	var size int
	for _, p := range payloads {
		size += binary.MaxVarintLen64 + len(p)
	}
	out := make([]byte, 0, size)
	for _, p := range payloads {
		out = AppendFrame(out, p)
	}
	return out
}

// Decode decodes a full frame sequence. Each returned payload is a copy and
// does not alias b. Trailing bytes that do not form a complete frame are an
// error.
func Decode(b []byte) ([][]byte, error) {
	var out [][]byte
	for i := 0; len(b) > 0; i++ {
		payload, rest, err := ReadFrame(b)
		if err != nil {
			return nil, fmt.Errorf("wire: frame %d: %w", i, err)
		}
		cp := make([]byte, len(payload))
		copy(cp, payload)
		out = append(out, cp)
		b = rest
	}
	return out, nil
}
