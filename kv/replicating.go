package kv

import (
	"errors"
	"fmt"
)

// Named associates a Store with a stable backend name for reporting.
type Named struct {
	Name  string
	Store Store
}

// Replicating mirrors every write to all configured backends.
//
// Reads fall back in order: the first backend that returns a value wins, and
// ErrNotFound is returned only when every backend misses. Writes and deletes
// are applied to all backends; per-backend failures are collected and joined
// so one degraded mirror does not drop writes to the others.
type Replicating struct {
	Backends []Named
}

var _ Store = (*Replicating)(nil)

func (r *Replicating) Get(key []byte) ([]byte, error) {
	if len(r.Backends) == 0 {
		return nil, errors.New("kv: Replicating has no backends")
	}
	var lastErr error
	for _, b := range r.Backends {
		if b.Store == nil {
			continue
		}
		v, err := b.Store.Get(key)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ErrNotFound
	}
	return nil, lastErr
}

func (r *Replicating) Put(key, value []byte) error {
	return r.each(func(b Named) error { return b.Store.Put(key, value) })
}

func (r *Replicating) Delete(key []byte) error {
	return r.each(func(b Named) error { return b.Store.Delete(key) })
}

// Scan iterates the first healthy backend. Mirrors are written identically, so
// any one backend is an authoritative view of the keyspace.
func (r *Replicating) Scan(prefix []byte, fn func(key, value []byte) error) error {
	if len(r.Backends) == 0 {
		return errors.New("kv: Replicating has no backends")
	}
	var lastErr error
	for _, b := range r.Backends {
		if b.Store == nil {
			continue
		}
		err := b.Store.Scan(prefix, fn)
		if err == nil || !errors.Is(err, ErrClosed) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (r *Replicating) Close() error {
	return r.each(func(b Named) error { return b.Store.Close() })
}

func (r *Replicating) each(op func(Named) error) error {
	if len(r.Backends) == 0 {
		return errors.New("kv: Replicating has no backends")
	}
	var errs []error
	for _, b := range r.Backends {
		if b.Store == nil {
			errs = append(errs, fmt.Errorf("kv: nil store for backend %q", b.Name))
			continue
		}
		if err := op(b); err != nil {
			errs = append(errs, fmt.Errorf("kv: backend %q: %w", b.Name, err))
		}
	}
	return errors.Join(errs...)
}
