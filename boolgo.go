package boolgo

import (
	"github.com/hupe1980/boolgo/bitstore"
	"github.com/hupe1980/boolgo/registry"
	"lukechampine.com/uint128"
)

// Fixed-width and unbounded bit stores, by capacity.
type (
	// B8 is an 8-slot bit store.
	B8 = bitstore.Store[uint8]
	// B16 is a 16-slot bit store.
	B16 = bitstore.Store[uint16]
	// B32 is a 32-slot bit store.
	B32 = bitstore.Store[uint32]
	// B64 is a 64-slot bit store.
	B64 = bitstore.Store[uint64]
	// B128 is a 128-slot bit store.
	B128 = bitstore.Store128
	// BInf is the unbounded bit store.
	BInf = bitstore.Dyn
)

// Named registries, by underlying capacity.
type (
	// BN8 is a named registry over 8 positions.
	BN8 = registry.Registry[*bitstore.Store[uint8]]
	// BN16 is a named registry over 16 positions.
	BN16 = registry.Registry[*bitstore.Store[uint16]]
	// BN32 is a named registry over 32 positions.
	BN32 = registry.Registry[*bitstore.Store[uint32]]
	// BN64 is a named registry over 64 positions.
	BN64 = registry.Registry[*bitstore.Store[uint64]]
	// BN128 is a named registry over 128 positions.
	BN128 = registry.Registry[*bitstore.Store128]
	// BNInf is a named registry without a practical capacity bound.
	BNInf = registry.DynRegistry
)

// New8 creates an empty 8-slot store.
func New8() *B8 { return bitstore.New[uint8]() }

// New16 creates an empty 16-slot store.
func New16() *B16 { return bitstore.New[uint16]() }

// New32 creates an empty 32-slot store.
func New32() *B32 { return bitstore.New[uint32]() }

// New64 creates an empty 64-slot store.
func New64() *B64 { return bitstore.New[uint64]() }

// New128 creates an empty 128-slot store.
func New128() *B128 { return bitstore.New128() }

// NewInf creates an empty unbounded store.
func NewInf() *BInf { return bitstore.NewDyn() }

// From8 creates an 8-slot store seeded with v.
func From8(v uint8) *B8 { return bitstore.FromValue(v) }

// From16 creates a 16-slot store seeded with v.
func From16(v uint16) *B16 { return bitstore.FromValue(v) }

// From32 creates a 32-slot store seeded with v.
func From32(v uint32) *B32 { return bitstore.FromValue(v) }

// From64 creates a 64-slot store seeded with v.
func From64(v uint64) *B64 { return bitstore.FromValue(v) }

// From128 creates a 128-slot store seeded with v.
func From128(v uint128.Uint128) *B128 { return bitstore.From128(v) }

// InfFromBytes creates an unbounded store seeded with b. The slice is
// retained, not copied.
func InfFromBytes(b []byte) *BInf { return bitstore.DynFromBytes(b) }

// NewNamed8 creates an empty named registry over 8 positions.
func NewNamed8(opts ...registry.Option) *BN8 {
	return registry.New(bitstore.New[uint8](), opts...)
}

// NewNamed16 creates an empty named registry over 16 positions.
func NewNamed16(opts ...registry.Option) *BN16 {
	return registry.New(bitstore.New[uint16](), opts...)
}

// NewNamed32 creates an empty named registry over 32 positions.
func NewNamed32(opts ...registry.Option) *BN32 {
	return registry.New(bitstore.New[uint32](), opts...)
}

// NewNamed64 creates an empty named registry over 64 positions.
func NewNamed64(opts ...registry.Option) *BN64 {
	return registry.New(bitstore.New[uint64](), opts...)
}

// NewNamed128 creates an empty named registry over 128 positions.
func NewNamed128(opts ...registry.Option) *BN128 {
	return registry.New(bitstore.New128(), opts...)
}

// NewNamedInf creates an empty named registry over an unbounded store.
func NewNamedInf(opts ...registry.Option) *BNInf {
	return registry.NewDyn(opts...)
}
