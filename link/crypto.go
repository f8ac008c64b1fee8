package link

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"
	"time"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"

	"xdao.co/wot/wire"
)

func digestFor(hashAlg HashAlg, message []byte) ([]byte, error) {
	switch hashAlg {
	case HashSHA256:
		s := sha256.Sum256(message)
		return s[:], nil
	case HashSHA512:
		s := sha512.Sum512(message)
		return s[:], nil
	case HashSHA3256:
		s := sha3.Sum256(message)
		return s[:], nil
	default:
		return nil, newError(KindCrypto, "WOT-CRYPTO-201", "unsupported hash alg")
	}
}

// SignEd25519 mints a raw link delegating to subject until expiry, signed by
// the issuer's ed25519 private key. Expiry is truncated to unix seconds.
func SignEd25519(priv ed25519.PrivateKey, subject []byte, expiry time.Time, hashAlg HashAlg) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, newError(KindCrypto, "WOT-CRYPTO-501", "invalid ed25519 private key length")
	}
	if len(subject) == 0 || len(subject) > MaxSubjectKeyBytes {
		return nil, newError(KindCrypto, "WOT-CRYPTO-502", "invalid subject key length")
	}
	scope := encodeUnsigned(SigEd25519, hashAlg, subject, expiry)
	digest, err := digestFor(hashAlg, scope)
	if err != nil {
		return nil, err
	}
	sig := ed25519.Sign(priv, digest)
	return wire.AppendFrame(scope, sig), nil
}

// SignDilithium3 mints a raw link signed with a dilithium3 private key.
func SignDilithium3(priv *mode3.PrivateKey, subject []byte, expiry time.Time, hashAlg HashAlg) ([]byte, error) {
	if priv == nil {
		return nil, newError(KindCrypto, "WOT-CRYPTO-503", "missing private key")
	}
	if len(subject) == 0 || len(subject) > MaxSubjectKeyBytes {
		return nil, newError(KindCrypto, "WOT-CRYPTO-502", "invalid subject key length")
	}
	scope := encodeUnsigned(SigDilithium3, hashAlg, subject, expiry)
	digest, err := digestFor(hashAlg, scope)
	if err != nil {
		return nil, err
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, digest, sig)
	return wire.AppendFrame(scope, sig), nil
}

// Verify checks the link signature against the issuer's public key.
//
// The receiver's raw bytes are re-parsed so that verification cannot be
// bypassed via a manually constructed or mutated Link value.
func (l *Link) Verify(issuerPub []byte) error {
	if l == nil {
		return newError(KindCrypto, "WOT-CRYPTO-001", "nil link")
	}
	parsed, err := Parse(l.raw)
	if err != nil {
		return err
	}
	l = parsed

	scope, err := signedScope(l.raw)
	if err != nil {
		return wrapError(KindCrypto, "WOT-CRYPTO-002", "invalid signed scope", err)
	}
	digest, err := digestFor(l.HashAlg, scope)
	if err != nil {
		return err
	}

	switch l.SigAlg {
	case SigEd25519:
		if len(issuerPub) != ed25519.PublicKeySize {
			return newError(KindCrypto, "WOT-CRYPTO-114", "invalid ed25519 issuer key length")
		}
		if !ed25519.Verify(ed25519.PublicKey(issuerPub), digest, l.signature) {
			return newError(KindCrypto, "WOT-CRYPTO-401", "signature invalid")
		}
		return nil
	case SigDilithium3:
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(issuerPub); err != nil {
			return wrapError(KindCrypto, "WOT-CRYPTO-115", "invalid dilithium3 issuer key", err)
		}
		if !mode3.Verify(&pk, digest, l.signature) {
			return newError(KindCrypto, "WOT-CRYPTO-401", "signature invalid")
		}
		return nil
	default:
		return newError(KindCrypto, "WOT-CRYPTO-301", "unsupported signature alg")
	}
}

// VerifyChain checks a full chain: links[0] must verify against root, and each
// subsequent link against the subject of its predecessor. It returns the
// parsed links on success.
func VerifyChain(root []byte, links [][]byte) ([]*Link, error) {
	issuer := root
	out := make([]*Link, 0, len(links))
	for _, raw := range links {
		l, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		if err := l.Verify(issuer); err != nil {
			return nil, err
		}
		out = append(out, l)
		issuer = l.SubjectKey
	}
	return out, nil
}
