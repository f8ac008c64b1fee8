// Package memkv provides an ordered in-memory kv.Store.
//
// It backs tests and ephemeral engines. The hook fields allow fault injection
// and write gating; they run outside the store lock so a hook may block
// without wedging concurrent readers of other stores.
package memkv

import (
	"sort"
	"strings"
	"sync"

	"xdao.co/wot/kv"
)

// Store is an ordered in-memory key-value store.
type Store struct {
	// BeforePut, when non-nil, runs before each Put. A returned error is
	// surfaced to the caller and the write is not applied.
	BeforePut func(key, value []byte) error

	// BeforeDelete, when non-nil, runs before each Delete.
	BeforeDelete func(key []byte) error

	mu     sync.Mutex
	data   map[string][]byte
	closed bool
}

var _ kv.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(key []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, kv.ErrClosed
	}
	v, ok := s.data[string(key)]
	if !ok {
		return nil, kv.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Store) Put(key, value []byte) error {
	if s.BeforePut != nil {
		if err := s.BeforePut(key, value); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kv.ErrClosed
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[string(key)] = cp
	return nil
}

func (s *Store) Delete(key []byte) error {
	if s.BeforeDelete != nil {
		if err := s.BeforeDelete(key); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kv.ErrClosed
	}
	delete(s.data, string(key))
	return nil
}

func (s *Store) Scan(prefix []byte, fn func(key, value []byte) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return kv.ErrClosed
	}
	// Snapshot under the lock so fn may mutate the store.
	p := string(prefix)
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, p) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	snap := make([][]byte, len(keys))
	for i, k := range keys {
		v := s.data[k]
		cp := make([]byte, len(v))
		copy(cp, v)
		snap[i] = cp
	}
	s.mu.Unlock()

	for i, k := range keys {
		if err := fn([]byte(k), snap[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close has been called. Test helper.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Len returns the number of stored keys. Test helper.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
