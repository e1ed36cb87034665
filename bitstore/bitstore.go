package bitstore

import "errors"

var (
	// ErrInvalidPosition is returned when an explicit bit position lies
	// outside [0, Cap).
	ErrInvalidPosition = errors.New("position out of range")

	// ErrInvalidCursor is returned when the cursor lies outside [0, Cap),
	// or when Advance would move it there.
	ErrInvalidCursor = errors.New("cursor out of range")

	// ErrInvalidRange is returned by Range when end precedes start.
	ErrInvalidRange = errors.New("range end precedes start")
)

// Bits is the checked positional surface shared by all stores. It is the
// seam between the registry layer and bit storage: registries delegate all
// storage and retrieval through it and add only name indirection on top.
//
// The type parameter names the concrete store so that Clone preserves it.
type Bits[S any] interface {
	// Cap returns the number of addressable bit positions.
	Cap() int

	// GetAt returns the bit at pos.
	GetAt(pos int) (bool, error)

	// SetAt sets or clears the bit at pos.
	SetAt(pos int, value bool) error

	// Clear zeroes the store. The cursor is untouched.
	Clear()

	// Clone returns a deep copy of the store.
	Clone() S
}
