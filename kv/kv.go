// Package kv defines the ordered key-value store boundary the link index
// persists through.
//
// Contract:
//   - Keys and values are opaque byte strings; implementations must not retain
//     caller buffers after a call returns.
//   - Get MUST return ErrNotFound when the key is absent.
//   - Scan MUST visit keys in ascending lexicographic byte order.
//   - After Close, all operations MUST return ErrClosed; Close is idempotent.
package kv

// Store is an ordered byte-keyed durable map.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key []byte) ([]byte, error)

	// Put stores value under key, replacing any existing value.
	Put(key, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) error

	// Scan visits every key with the given prefix in ascending key order.
	// Returning a non-nil error from fn stops the scan and is returned.
	Scan(prefix []byte, fn func(key, value []byte) error) error

	// Close releases the store. Idempotent.
	Close() error
}
