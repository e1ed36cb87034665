package registry

import "errors"

var (
	// ErrNotFound is returned when a name has no mapping.
	ErrNotFound = errors.New("name not found")

	// ErrCapacityReached is returned when a registry over a fixed-width
	// store has already assigned every position. Deletion does not make
	// room: positions are retired, not reclaimed.
	ErrCapacityReached = errors.New("registry capacity reached")

	// ErrInvalidPattern is returned when a mass-set name pattern lacks the
	// {n} placeholder, or a value pattern is empty or too short to cover
	// the requested count without a repeat marker.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidBooleanToken is returned when a value-pattern entry parses
	// as neither "true" nor "false".
	ErrInvalidBooleanToken = errors.New("invalid boolean token")
)
