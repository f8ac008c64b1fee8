package chain

import (
	"bytes"
	"sort"
	"time"
)

// edge is one indexed delegation: issuer (the map key that owns it) vouches
// for subject until expiry. raw holds the exact signed link bytes.
type edge struct {
	subject []byte
	raw     []byte
	expiry  time.Time
}

// linkIndex is the in-memory directed graph of currently known links.
//
// Invariant: at most one edge per (issuer, subject) pair. The index never
// inspects link signatures; it stores whatever the codec accepted.
type linkIndex struct {
	out map[string]map[string]*edge
}

func newLinkIndex() *linkIndex {
	return &linkIndex{out: make(map[string]map[string]*edge)}
}

// apply inserts or replaces the edge for (issuer, e.subject) and reports
// whether the index changed.
//
// Replacement rule: a new edge wins only if the pair was absent or its expiry
// is strictly later than the stored one. Byte-identical raw links are a no-op;
// equal-expiry different-byte links keep the stored bytes.
func (ix *linkIndex) apply(issuer []byte, e *edge) bool {
	edges := ix.out[string(issuer)]
	if edges == nil {
		edges = make(map[string]*edge)
		ix.out[string(issuer)] = edges
	}
	existing := edges[string(e.subject)]
	if existing != nil {
		if bytes.Equal(existing.raw, e.raw) {
			return false
		}
		if !e.expiry.After(existing.expiry) {
			return false
		}
	}
	edges[string(e.subject)] = e
	return true
}

// remove drops the (issuer, subject) edge and reports whether it existed.
func (ix *linkIndex) remove(issuer, subject []byte) bool {
	edges := ix.out[string(issuer)]
	if edges == nil {
		return false
	}
	if _, ok := edges[string(subject)]; !ok {
		return false
	}
	delete(edges, string(subject))
	if len(edges) == 0 {
		delete(ix.out, string(issuer))
	}
	return true
}

// edges returns the issuer's outgoing edges sorted by subject key bytes.
// The slice is a snapshot: callers may remove edges while ranging over it.
func (ix *linkIndex) edges(issuer []byte) []*edge {
	m := ix.out[string(issuer)]
	if len(m) == 0 {
		return nil
	}
	out := make([]*edge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].subject, out[j].subject) < 0
	})
	return out
}

// size returns the total number of indexed edges.
func (ix *linkIndex) size() int {
	var n int
	for _, edges := range ix.out {
		n += len(edges)
	}
	return n
}
