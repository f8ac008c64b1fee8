// Package chain implements the delegation link store and chain resolver.
//
// A Store indexes signed delegation links as a directed graph keyed by issuer
// public key, mirrors every edge to an ordered key-value store, and resolves
// trust queries: given a root public key, find a valid, non-expired chain of
// links from that root to the local identity.
//
// The in-memory index is the source of truth for queries; durable writes are
// applied asynchronously in submission order and never block or roll back an
// in-memory update. Expired edges are pruned lazily, when a resolution walks
// over them. Resolved chains are held in a bounded LRU cache keyed by root and
// re-validated against the clock on every hit.
package chain
