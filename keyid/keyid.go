// Package keyid derives stable fingerprints for identity public keys.
//
// A fingerprint is a CIDv1 string ("raw" multicodec, sha2-256 multihash) over
// the raw public key bytes. Fingerprints are used as durable record key
// components and as compact log fields; they are never parsed back into keys.
package keyid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Fingerprint returns the CIDv1 (raw + sha2-256) string for a public key.
func Fingerprint(pub []byte) string {
	id, err := FingerprintCID(pub)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length, this should be unreachable.
		return ""
	}
	return id.String()
}

// FingerprintCID returns the CIDv1 (raw + sha2-256) derived from a public key.
func FingerprintCID(pub []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(pub, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Short returns a truncated fingerprint suitable for log lines.
func Short(pub []byte) string {
	s := Fingerprint(pub)
	if len(s) <= 16 {
		return s
	}
	return s[len(s)-16:]
}
