// Package registry layers a name-to-position index over a bit store.
//
// A Registry maps string names to bit positions in an underlying
// bitstore store. Position assignment is monotonic: the first unseen name
// gets position 0, the next gets 1, and so on. Deleting a name clears its
// bit and removes the mapping, but the position is retired, never reused —
// on a fixed-width store, deletion therefore does not restore capacity.
// This is a deliberate simplicity trade-off, not a defect; Sort rebuilds
// the registry densely if the gaps matter.
//
// Mass operations (MassSet, MassGet, MassToggle) apply sequentially and
// stop at the first failure. Entries written before the failure stay
// applied; callers needing atomicity must snapshot beforehand.
//
// The pattern grammar for MassSet:
//
//   - Name pattern: any string containing the placeholder {n}, which is
//     replaced with the zero-based index as decimal text.
//   - Value pattern: comma-separated "true"/"false" tokens
//     (case-insensitive). A {r} suffix on the final token makes the list
//     cycle for all count entries instead of being consumed linearly.
//
// Registries are not safe for concurrent use; callers own synchronization.
package registry
