package keys

import (
	"crypto/ed25519"
	"fmt"
	"io"
	"time"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"xdao.co/wot/link"
)

// PrivateKeyFromSeed expands an Ed25519 seed into a signing key.
func PrivateKeyFromSeed(seed []byte) (ed25519.PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// SignLinkWithSeed mints a signed link delegating trust from the seed's
// identity to subject, valid until expiry.
func SignLinkWithSeed(seed, subject []byte, expiry time.Time, hashAlg link.HashAlg) ([]byte, error) {
	priv, err := PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return link.SignEd25519(priv, subject, expiry, hashAlg)
}

// SignLinkDilithium3 mints a signed link under a Dilithium3 identity.
func SignLinkDilithium3(priv *mode3.PrivateKey, subject []byte, expiry time.Time, hashAlg link.HashAlg) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("missing private key")
	}
	return link.SignDilithium3(priv, subject, expiry, hashAlg)
}

// GenerateDilithium3Keypair returns a new Dilithium3 keypair.
func GenerateDilithium3Keypair(rand io.Reader) (*mode3.PublicKey, *mode3.PrivateKey, error) {
	return mode3.GenerateKey(rand)
}
