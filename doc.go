// Package boolgo provides bit-packed boolean collections for Go.
//
// Boolgo stores boolean flags as bits inside a single integer or a
// growable byte slice, and can layer a name index on top so flags are
// addressed by string instead of position:
//
//   - Fixed-width stores: B8, B16, B32, B64, B128 — capacity is exactly
//     the bit width, each slot is one bit, a cursor enables sequential
//     reads without explicit indices.
//   - Unbounded store: BInf — byte-backed, grows on write, reads past the
//     materialized backing are false.
//   - Named registries: BN8..BN128 and BNInf — a name→position map over a
//     store, with mass operations driven by name and value patterns.
//
// # Quick Start
//
// Positional access:
//
//	bits := boolgo.From64(0b0101)
//	v, _ := bits.GetAt(2)      // true
//	_ = bits.SetAt(3, true)
//	fmt.Printf("%b", bits.Raw())
//
// Named flags:
//
//	flags := boolgo.NewNamed64()
//	_ = flags.Set("verbose", true)
//	_ = flags.Set("dry_run", false)
//	_ = flags.Toggle("dry_run")
//	on, _ := flags.Get("dry_run") // true
//
// Mass operations with patterns:
//
//	features := boolgo.NewNamedInf()
//	// feature_0=true, feature_1=false, feature_2=true, feature_3=false
//	_ = features.MassSet(4, "feature_{n}", "true,false{r}")
//
// # Capacity Model
//
// A fixed-width registry accepts at most Cap distinct names. Positions are
// assigned monotonically and never reused: deleting a name clears its bit
// and removes the mapping, but does not restore capacity. Sort rebuilds a
// registry densely when the retired positions matter.
//
// # Checked and Unchecked Access
//
// Every fallible operation returns an error from the taxonomy in
// errors.go. Each checked store operation also has an Unchecked twin that
// skips bounds validation — a performance escape hatch whose misuse
// corrupts results but is never memory-unsafe.
//
// Instances are not safe for concurrent use; callers own synchronization.
package boolgo
