package chain

import (
	"bytes"
	"time"
)

// frontier is one BFS expansion state: a node reached by path, carrying the
// earliest expiry seen along it.
type frontier struct {
	key       []byte
	path      [][]byte
	minExpiry time.Time
}

// resolve searches the index for a chain from root to the local identity.
// Caller holds the store lock; the traversal never yields, so it observes one
// consistent snapshot of the index.
//
// Breadth-first order guarantees a minimal-length chain. Outgoing edges are
// expanded in subject-key byte order, so among equal-length chains the
// hop-wise lexicographically smallest one wins; the result is deterministic
// for a given index state.
//
// Expired edges encountered during the walk are pruned from the index and
// scheduled for durable delete.
func (s *Store) resolve(root []byte, now time.Time) ([][]byte, time.Time, error) {
	s.stats.Resolutions++

	if bytes.Equal(root, s.localKey) {
		return [][]byte{}, time.Time{}, nil
	}

	visited := map[string]bool{string(root): true}
	queue := []frontier{{key: root}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.path) >= s.maxLen {
			// Any chain through this node would exceed the bound.
			continue
		}

		for _, e := range s.index.edges(cur.key) {
			if !e.expiry.After(now) {
				s.dropEdge(cur.key, e.subject)
				continue
			}
			minExpiry := cur.minExpiry
			if minExpiry.IsZero() || e.expiry.Before(minExpiry) {
				minExpiry = e.expiry
			}
			if bytes.Equal(e.subject, s.localKey) {
				chain := make([][]byte, 0, len(cur.path)+1)
				chain = append(chain, cur.path...)
				chain = append(chain, e.raw)
				return chain, minExpiry, nil
			}
			if visited[string(e.subject)] {
				continue
			}
			visited[string(e.subject)] = true

			path := make([][]byte, 0, len(cur.path)+1)
			path = append(path, cur.path...)
			path = append(path, e.raw)
			queue = append(queue, frontier{key: e.subject, path: path, minExpiry: minExpiry})
		}
	}

	return nil, time.Time{}, ErrNoPath
}

// dropEdge removes an expired edge from the index, schedules its durable
// delete, and invalidates cached chains that may have crossed it.
func (s *Store) dropEdge(issuer, subject []byte) {
	if !s.index.remove(issuer, subject) {
		return
	}
	s.cache.purge()
	s.writer.enqueueDelete(recordKey(issuer, subject), issuer)
}
