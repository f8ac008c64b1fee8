// Command link_vector_gen prints a deterministic signed link as a conformance
// vector for other implementations of the wire format.
package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"xdao.co/wot/keyid"
	"xdao.co/wot/link"
)

func mustKeypair(seedByte byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return pub, priv
}

func keyString(pub ed25519.PublicKey) string {
	return "ed25519:" + base64.StdEncoding.EncodeToString(pub)
}

func main() {
	issuerPub, issuerPriv := mustKeypair(0xA1)
	subjectPub, _ := mustKeypair(0xB2)
	expiry := time.Unix(1_900_000_000, 0).UTC()

	raw, err := link.SignEd25519(issuerPriv, subjectPub, expiry, link.HashSHA256)
	if err != nil {
		panic(err)
	}
	l, err := link.Parse(raw)
	if err != nil {
		panic(err)
	}
	if err := l.Verify(issuerPub); err != nil {
		panic(err)
	}

	fmt.Printf("Issuer-Key=%s\n", keyString(issuerPub))
	fmt.Printf("Subject-Key=%s\n", keyString(subjectPub))
	fmt.Printf("Subject-FP=%s\n", keyid.Fingerprint(subjectPub))
	fmt.Printf("Expiry=%s\n", expiry.Format(time.RFC3339))
	fmt.Printf("---BEGIN HEX---\n%s\n---END HEX---\n", hex.EncodeToString(raw))
}
