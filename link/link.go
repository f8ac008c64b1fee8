// Package link implements the canonical wire format for a signed delegation
// link: the assertion "issuer delegates trust to subject until expiry".
//
// Layout (all fields mandatory, no trailing bytes):
//
//	magic     "WOT1" (4 bytes)
//	sig alg   1 byte (ed25519, dilithium3)
//	hash alg  1 byte (sha256, sha512, sha3-256)
//	subject   uvarint length || public key bytes
//	expiry    8-byte big-endian unix seconds
//	signature uvarint length || signature bytes
//
// The issuer's public key is deliberately not encoded: a link is signed by
// whoever vouches for the subject, and the verifier supplies that key from
// context (the preceding hop in a chain, or the queried root). The signature
// covers every byte before the signature field, hashed per the hash alg.
package link

import (
	"crypto/ed25519"
	"encoding/binary"
	"time"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"xdao.co/wot/wire"
)

// SigAlg identifies the signature scheme of a link.
type SigAlg byte

const (
	SigEd25519    SigAlg = 1
	SigDilithium3 SigAlg = 2
)

func (a SigAlg) String() string {
	switch a {
	case SigEd25519:
		return "ed25519"
	case SigDilithium3:
		return "dilithium3"
	default:
		return "unknown"
	}
}

// HashAlg identifies the digest applied to the signed scope before signing.
type HashAlg byte

const (
	HashSHA256  HashAlg = 1
	HashSHA512  HashAlg = 2
	HashSHA3256 HashAlg = 3
)

func (a HashAlg) String() string {
	switch a {
	case HashSHA256:
		return "sha256"
	case HashSHA512:
		return "sha512"
	case HashSHA3256:
		return "sha3-256"
	default:
		return "unknown"
	}
}

var magic = [4]byte{'W', 'O', 'T', '1'}

// MaxSubjectKeyBytes bounds the subject key field. Dilithium3 public keys
// (1952 bytes) are the largest supported.
const MaxSubjectKeyBytes = 4096

// Link is the decoded view of a raw signed link.
//
// SubjectKey and Signature alias buffers owned by the Link; Raw returns the
// exact bytes that were parsed.
type Link struct {
	SubjectKey []byte
	Expiry     time.Time
	SigAlg     SigAlg
	HashAlg    HashAlg

	signature []byte
	raw       []byte
}

// Raw returns the canonical encoded bytes of the link.
func (l *Link) Raw() []byte { return l.raw }

// Expired reports whether the link's expiry is at or before now.
func (l *Link) Expired(now time.Time) bool {
	return !l.Expiry.After(now)
}

// Parse decodes raw link bytes.
//
// Parse validates structure only; it does not verify the signature (the
// issuer key is contextual, see Verify). Any failure leaves no partial state.
func Parse(raw []byte) (*Link, error) {
	b := make([]byte, len(raw))
	copy(b, raw)

	rest := b
	if len(rest) < len(magic)+2 {
		return nil, newError(KindParse, "WOT-PARSE-001", "link too short")
	}
	if rest[0] != magic[0] || rest[1] != magic[1] || rest[2] != magic[2] || rest[3] != magic[3] {
		return nil, newError(KindParse, "WOT-PARSE-002", "bad link magic")
	}
	sigAlg := SigAlg(rest[4])
	hashAlg := HashAlg(rest[5])
	rest = rest[6:]

	switch sigAlg {
	case SigEd25519, SigDilithium3:
	default:
		return nil, newError(KindParse, "WOT-PARSE-010", "unsupported signature alg")
	}
	switch hashAlg {
	case HashSHA256, HashSHA512, HashSHA3256:
	default:
		return nil, newError(KindParse, "WOT-PARSE-011", "unsupported hash alg")
	}

	subject, rest, err := wire.ReadFrame(rest)
	if err != nil {
		return nil, wrapError(KindParse, "WOT-PARSE-020", "invalid subject key field", err)
	}
	if len(subject) == 0 {
		return nil, newError(KindParse, "WOT-PARSE-021", "empty subject key")
	}
	if len(subject) > MaxSubjectKeyBytes {
		return nil, newError(KindParse, "WOT-PARSE-022", "subject key too long")
	}

	if len(rest) < 8 {
		return nil, newError(KindParse, "WOT-PARSE-030", "missing expiry")
	}
	expiry := int64(binary.BigEndian.Uint64(rest[:8]))
	rest = rest[8:]

	sig, rest, err := wire.ReadFrame(rest)
	if err != nil {
		return nil, wrapError(KindParse, "WOT-PARSE-040", "invalid signature field", err)
	}
	if len(rest) != 0 {
		return nil, newError(KindParse, "WOT-PARSE-041", "trailing bytes after signature")
	}
	switch sigAlg {
	case SigEd25519:
		if len(sig) != ed25519.SignatureSize {
			return nil, newError(KindParse, "WOT-PARSE-042", "invalid ed25519 signature length")
		}
	case SigDilithium3:
		if len(sig) != mode3.SignatureSize {
			return nil, newError(KindParse, "WOT-PARSE-043", "invalid dilithium3 signature length")
		}
	}

	return &Link{
		SubjectKey: subject,
		Expiry:     time.Unix(expiry, 0).UTC(),
		SigAlg:     sigAlg,
		HashAlg:    hashAlg,
		signature:  sig,
		raw:        b,
	}, nil
}

// signedScope returns the bytes covered by the signature: everything before
// the signature field.
func signedScope(raw []byte) ([]byte, error) {
	rest := raw[6:]
	_, rest, err := wire.ReadFrame(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[8:]
	return raw[:len(raw)-len(rest)], nil
}

// encode assembles the canonical bytes for a link minus the signature field.
func encodeUnsigned(sigAlg SigAlg, hashAlg HashAlg, subject []byte, expiry time.Time) []byte {
	out := make([]byte, 0, len(magic)+2+len(subject)+16)
	out = append(out, magic[:]...)
	out = append(out, byte(sigAlg), byte(hashAlg))
	out = wire.AppendFrame(out, subject)
	out = binary.BigEndian.AppendUint64(out, uint64(expiry.Unix()))
	return out
}
