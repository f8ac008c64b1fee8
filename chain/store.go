package chain

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"xdao.co/wot/keyid"
	"xdao.co/wot/kv"
	"xdao.co/wot/kv/badgerkv"
	"xdao.co/wot/link"
)

const (
	// DefaultMaxChainLength bounds the number of links in a returned chain.
	DefaultMaxChainLength = 10

	// DefaultCacheSize is the resolved-chain LRU capacity.
	DefaultCacheSize = 128
)

// Config configures a Store. PublicKey is required; the zero value of every
// other field selects a sensible default.
type Config struct {
	// Path is the directory for the badger-backed index. Ignored when KV is
	// set.
	Path string

	// KV overrides the durable backend. The store takes ownership and closes
	// it on Close.
	KV kv.Store

	// PublicKey is the local identity every chain must terminate at.
	PublicKey []byte

	// PrivateKey, when set, enables SignLink. Ed25519 only.
	PrivateKey ed25519.PrivateKey

	// Logger receives storage failure reports. Nil discards them.
	Logger *slog.Logger

	// Now overrides the clock. For tests.
	Now func() time.Time

	// MaxChainLength overrides DefaultMaxChainLength when positive.
	MaxChainLength int

	// CacheSize overrides DefaultCacheSize when positive.
	CacheSize int
}

// Stats are cumulative engine counters.
type Stats struct {
	// Resolutions counts full index traversals (cache misses and bypasses).
	Resolutions uint64

	// CacheHits counts GetChain calls served from the chain cache.
	CacheHits uint64
}

// Store is the link store and chain resolution engine.
//
// All methods are safe for concurrent use. Mutation and traversal run under
// one lock, so a query always observes a consistent index snapshot; only the
// durable KV operations happen asynchronously.
type Store struct {
	localKey []byte
	priv     ed25519.PrivateKey
	logger   *slog.Logger
	now      func() time.Time
	maxLen   int

	mu     sync.Mutex
	index  *linkIndex
	cache  *chainCache
	writer *writer
	stats  Stats
	closed bool
}

// Open opens the durable index, rehydrates the in-memory graph from it, and
// returns a ready store. No query is served before rehydration completes.
func Open(cfg Config) (*Store, error) {
	if len(cfg.PublicKey) == 0 {
		return nil, errors.New("chain: local public key is required")
	}

	store := cfg.KV
	if store == nil {
		if cfg.Path == "" {
			return nil, errors.New("chain: either Path or KV is required")
		}
		var err error
		store, err = badgerkv.Open(badgerkv.DefaultConfig(cfg.Path))
		if err != nil {
			return nil, fmt.Errorf("chain: open index: %w", err)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxLen := cfg.MaxChainLength
	if maxLen <= 0 {
		maxLen = DefaultMaxChainLength
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := newChainCache(cacheSize)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("chain: cache: %w", err)
	}

	s := &Store{
		localKey: append([]byte(nil), cfg.PublicKey...),
		priv:     cfg.PrivateKey,
		logger:   logger,
		now:      now,
		maxLen:   maxLen,
		index:    newLinkIndex(),
		cache:    cache,
	}

	if err := s.load(store); err != nil {
		_ = store.Close()
		return nil, err
	}
	s.writer = newWriter(store, logger)
	return s, nil
}

// load rehydrates every stored edge before the store serves queries. Records
// that no longer decode are skipped with a warning; expired edges are indexed
// as-is and pruned lazily by the next resolution that walks over them.
func (s *Store) load(store kv.Store) error {
	err := store.Scan([]byte(recordPrefix), func(key, value []byte) error {
		issuer, subject, raw, expiry, derr := decodeRecord(value)
		if derr != nil {
			s.logger.Warn("skipping undecodable index record",
				slog.String("key", string(key)),
				slog.String("error", derr.Error()))
			return nil
		}
		s.index.apply(issuer, &edge{subject: subject, raw: raw, expiry: expiry})
		return nil
	})
	if err != nil {
		return fmt.Errorf("chain: rehydrate index: %w", err)
	}
	return nil
}

// AddChain absorbs an ordered batch of raw links. The first link's issuer is
// root; each subsequent link's issuer is the subject of its predecessor.
//
// Empty input is a no-op. A malformed link stops processing (the issuer of
// anything after it is unknowable) and is reported; links absorbed before it
// stay absorbed. The in-memory index reflects every absorbed link before
// AddChain returns; durable writes complete asynchronously.
func (s *Store) AddChain(root []byte, links [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if len(links) == 0 {
		return nil
	}

	now := s.now()
	issuer := root
	for i, raw := range links {
		l, err := link.Parse(raw)
		if err != nil {
			return fmt.Errorf("chain: link %d: %w", i, err)
		}
		s.addLink(issuer, l, now)
		issuer = l.SubjectKey
	}
	return nil
}

// addLink applies one parsed link under the store lock. Already-expired links
// are dropped silently; they must never enter the index.
func (s *Store) addLink(issuer []byte, l *link.Link, now time.Time) {
	if l.Expired(now) {
		return
	}
	e := &edge{subject: l.SubjectKey, raw: l.Raw(), expiry: l.Expiry}
	if !s.index.apply(issuer, e) {
		return
	}
	s.cache.purge()
	s.writer.enqueuePut(recordKey(issuer, l.SubjectKey), encodeRecord(issuer, l.SubjectKey, l.Raw(), l.Expiry), issuer)
}

// GetChain returns a valid chain of links from root to the local identity, or
// ErrNoPath. Querying the local identity itself returns an empty chain.
//
// A fresh cached result is returned without touching the index; stale cache
// entries are evicted and resolved anew.
func (s *Store) GetChain(root []byte) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	now := s.now()
	if links, ok := s.cache.get(root, now); ok {
		s.stats.CacheHits++
		return links, nil
	}

	links, minExpiry, err := s.resolve(root, now)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		s.cache.add(root, links, minExpiry)
	}
	return copyChain(links), nil
}

// SignLink mints a raw link delegating trust from the local identity to
// subject for ttl. The store must have been opened with the private key.
func (s *Store) SignLink(subject []byte, ttl time.Duration) ([]byte, error) {
	if len(s.priv) == 0 {
		return nil, ErrNoPrivateKey
	}
	return link.SignEd25519(s.priv, subject, s.now().Add(ttl), link.HashSHA256)
}

// LocalKey returns the local identity public key.
func (s *Store) LocalKey() []byte {
	return append([]byte(nil), s.localKey...)
}

// Fingerprint returns the local identity fingerprint, for logs and display.
func (s *Store) Fingerprint() string {
	return keyid.Fingerprint(s.localKey)
}

// Len returns the number of indexed edges.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.size()
}

// Stats returns a snapshot of the engine counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Flush blocks until every durable operation enqueued so far has been applied
// to the KV store.
func (s *Store) Flush() {
	s.mu.Lock()
	w := s.writer
	s.mu.Unlock()
	w.flush()
}

// Close drains in-flight durable operations, then closes the KV store.
// Idempotent. The close is never applied while writes or deletes initiated by
// AddChain or pruning are still pending.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.writer.close()
}
