package boolgo

import (
	"github.com/hupe1980/boolgo/bitstore"
	"github.com/hupe1980/boolgo/registry"
)

// The error taxonomy, re-exported from the leaf packages so callers can
// match with errors.Is against a single import:
//
//	if errors.Is(err, boolgo.ErrNotFound) { ... }
//
// Every fallible operation wraps one of these sentinels with positional
// detail. No operation panics; the Unchecked variants never return errors
// and instead document preconditions.
var (
	// ErrInvalidPosition: an explicit bit position outside [0, Cap).
	ErrInvalidPosition = bitstore.ErrInvalidPosition

	// ErrInvalidCursor: the cursor outside [0, Cap), or an Advance that
	// would move it there.
	ErrInvalidCursor = bitstore.ErrInvalidCursor

	// ErrInvalidRange: a range whose end precedes its start (unbounded
	// store only).
	ErrInvalidRange = bitstore.ErrInvalidRange

	// ErrNotFound: a name lookup miss.
	ErrNotFound = registry.ErrNotFound

	// ErrCapacityReached: a fixed-width registry attempted to allocate
	// beyond its capacity.
	ErrCapacityReached = registry.ErrCapacityReached

	// ErrInvalidPattern: a mass-set pattern missing its placeholder, or a
	// value list too short for the requested count.
	ErrInvalidPattern = registry.ErrInvalidPattern

	// ErrInvalidBooleanToken: an unparseable entry in a value pattern.
	ErrInvalidBooleanToken = registry.ErrInvalidBooleanToken
)
