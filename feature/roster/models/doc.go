// Package models holds the fleet roster graph: Fleet → Account → Character.
//
// # Ownership
//
// A Fleet owns its Accounts and an Account owns its Characters. Characters
// point back to their account by name only, so the graph has no cycles.
//
// # Collections
//
// Both levels store children in an Index: an insertion-ordered collection
// with constant-time lookup. Because the order and the lookup live in one
// structure, they cannot drift apart. Children are created through a single
// get-or-create operation per level and are never removed.
//
// # Aggregates
//
// Contributions are tracked per holding in a Tally on each Character and
// summed upward on demand:
//   - Character.Total: sum over its holdings
//   - Account.Total: sum over its characters
//   - Account.TotalsByHolding: per-holding sums over its characters
//
// Account.Rank is the rank of the first character seen; Account.LastLogout
// is the most recent logout of any character, with NeverLoggedOut standing in
// for characters whose logout is unknown.
package models
