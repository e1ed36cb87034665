// Package bitstore provides bit-packed boolean containers.
//
// Two storage models are offered:
//
//   - Store[T] and Store128: fixed-capacity stores backed by a single
//     integer value. Capacity equals the bit width of the backing type
//     (8, 16, 32, 64 or 128) and is immutable for the lifetime of the
//     instance.
//   - Dyn: an unbounded store backed by a growable byte slice. Bit i lives
//     in byte i/8 at offset i%8. Writes extend the backing lazily with
//     zero fill; reads past the materialized length return false.
//
// Every store carries a cursor (read head) for sequential access: Get, Set,
// Next and Consume operate at the cursor, Advance and Seek move it.
//
// # Checked vs. unchecked access
//
// Each checked operation has an Unchecked twin that skips bounds
// validation. The unchecked forms are a performance escape hatch for
// callers that have already proven position validity; violating the
// precondition corrupts results (reads come back false, writes land
// nowhere or on the wrong bit) but is never memory-unsafe.
//
// # Raw access
//
// Raw and SetRaw expose the backing integer or byte slice directly for
// interop with external bit-level serialization. This is an escape hatch,
// not a stable wire format.
//
// Stores are not safe for concurrent use; callers own synchronization.
package bitstore
