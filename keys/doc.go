// Package keys manages the local signing identities used to mint trust links.
//
// It covers two concerns:
//
//   - Pure, deterministic primitives: key-string formatting and role-seed
//     derivation.
//   - A filesystem-backed seed store for the CLI. This is a local-first
//     convenience surface, not part of the wire protocol.
package keys
