package chain

import "errors"

var (
	// ErrNoPath reports that no valid chain of at most MaxChainLength links
	// connects the queried root to the local identity.
	ErrNoPath = errors.New("chain: no path to local identity")

	// ErrClosed reports an operation on a closed store.
	ErrClosed = errors.New("chain: store closed")

	// ErrNoPrivateKey reports a SignLink call on a store opened without the
	// local private key.
	ErrNoPrivateKey = errors.New("chain: no local private key")
)

// IsNoPath reports whether err means resolution exhausted without a match.
func IsNoPath(err error) bool { return errors.Is(err, ErrNoPath) }
