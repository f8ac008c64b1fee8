package chain

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cachedChain is a previously resolved chain plus the earliest expiry among
// its links. The chain stays servable until that instant.
type cachedChain struct {
	links     [][]byte
	minExpiry time.Time
}

// chainCache is a bounded LRU keyed by root public key. It is purely an
// optimization: every hit is re-validated against the clock, and any index
// mutation purges it.
type chainCache struct {
	lru *lru.Cache[string, cachedChain]
}

func newChainCache(size int) (*chainCache, error) {
	c, err := lru.New[string, cachedChain](size)
	if err != nil {
		return nil, err
	}
	return &chainCache{lru: c}, nil
}

// get returns the cached chain for root if present and still fresh at now.
// A stale entry is evicted and reported as a miss.
func (c *chainCache) get(root []byte, now time.Time) ([][]byte, bool) {
	entry, ok := c.lru.Get(string(root))
	if !ok {
		return nil, false
	}
	if !entry.minExpiry.After(now) {
		c.lru.Remove(string(root))
		return nil, false
	}
	return copyChain(entry.links), true
}

func (c *chainCache) add(root []byte, links [][]byte, minExpiry time.Time) {
	c.lru.Add(string(root), cachedChain{links: copyChain(links), minExpiry: minExpiry})
}

func (c *chainCache) purge() {
	c.lru.Purge()
}

func copyChain(links [][]byte) [][]byte {
	out := make([][]byte, len(links))
	for i, l := range links {
		cp := make([]byte, len(l))
		copy(cp, l)
		out[i] = cp
	}
	return out
}
