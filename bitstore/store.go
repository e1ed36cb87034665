package bitstore

import (
	"fmt"
	"iter"
	"unsafe"
)

// Block enumerates the primitive integer types usable as fixed-width
// backing storage. The capacity of a Store[T] is the bit width of T.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Store is a fixed-capacity bit store backed by a single integer of type T.
// Bit index 0 is the least-significant bit. The zero value is an empty
// store with the cursor at position 0 and is ready to use.
//
// For the 128-bit width, see Store128.
type Store[T Block] struct {
	store  T
	cursor int
}

// New creates an empty store. Capacity is the bit width of T.
func New[T Block]() *Store[T] {
	return &Store[T]{}
}

// FromValue creates a store seeded with v: bit i of v becomes slot i.
func FromValue[T Block](v T) *Store[T] {
	return &Store[T]{store: v}
}

// Cap returns the capacity in bits, constant for the type.
func (s *Store[T]) Cap() int {
	return int(unsafe.Sizeof(s.store)) * 8
}

func (s *Store[T]) bit(pos int) bool {
	return s.store&(T(1)<<pos) != 0
}

func (s *Store[T]) apply(pos int, value bool) {
	mask := T(1) << pos
	if value {
		s.store |= mask
	} else {
		s.store &^= mask
	}
}

// GetAt returns the bit at pos.
func (s *Store[T]) GetAt(pos int) (bool, error) {
	if pos < 0 || pos >= s.Cap() {
		return false, fmt.Errorf("%w: %d (cap %d)", ErrInvalidPosition, pos, s.Cap())
	}
	return s.bit(pos), nil
}

// SetAt sets or clears the bit at pos.
func (s *Store[T]) SetAt(pos int, value bool) error {
	if pos < 0 || pos >= s.Cap() {
		return fmt.Errorf("%w: %d (cap %d)", ErrInvalidPosition, pos, s.Cap())
	}
	s.apply(pos, value)
	return nil
}

// Get returns the bit at the cursor.
func (s *Store[T]) Get() (bool, error) {
	if s.cursor < 0 || s.cursor >= s.Cap() {
		return false, fmt.Errorf("%w: %d (cap %d)", ErrInvalidCursor, s.cursor, s.Cap())
	}
	return s.bit(s.cursor), nil
}

// Set sets or clears the bit at the cursor.
func (s *Store[T]) Set(value bool) error {
	if s.cursor < 0 || s.cursor >= s.Cap() {
		return fmt.Errorf("%w: %d (cap %d)", ErrInvalidCursor, s.cursor, s.Cap())
	}
	s.apply(s.cursor, value)
	return nil
}

// Advance moves the cursor one position forward. The cursor must stay
// strictly inside [0, Cap): the last valid position cannot be advanced
// past.
func (s *Store[T]) Advance() error {
	if s.cursor+1 >= s.Cap() {
		return fmt.Errorf("%w: cannot advance past position %d", ErrInvalidCursor, s.Cap()-1)
	}
	s.cursor++
	return nil
}

// Seek moves the cursor to pos.
func (s *Store[T]) Seek(pos int) error {
	if pos < 0 || pos >= s.Cap() {
		return fmt.Errorf("%w: %d (cap %d)", ErrInvalidCursor, pos, s.Cap())
	}
	s.cursor = pos
	return nil
}

// Cursor returns the current cursor position.
func (s *Store[T]) Cursor() int {
	return s.cursor
}

// Next returns the bit at the cursor, then advances.
func (s *Store[T]) Next() (bool, error) {
	v, err := s.Get()
	if err != nil {
		return false, err
	}
	if err := s.Advance(); err != nil {
		return false, err
	}
	return v, nil
}

// Consume returns the bit at the cursor, clears it, then advances.
func (s *Store[T]) Consume() (bool, error) {
	v, err := s.Get()
	if err != nil {
		return false, err
	}
	s.apply(s.cursor, false)
	if err := s.Advance(); err != nil {
		return false, err
	}
	return v, nil
}

// All returns the ordered values of all Cap slots, position 0 first.
func (s *Store[T]) All() []bool {
	out := make([]bool, s.Cap())
	for i := range out {
		out[i] = s.bit(i)
	}
	return out
}

// Values iterates the slots in position order.
func (s *Store[T]) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < s.Cap(); i++ {
			if !yield(s.bit(i)) {
				return
			}
		}
	}
}

// Sorted returns a new store of the same capacity whose slots hold the
// values of All sorted ascending (false before true) and written back
// positionally. This is a value-sorted permutation of the slots, not a
// sort by any external key.
func (s *Store[T]) Sorted() *Store[T] {
	ones := 0
	for i := 0; i < s.Cap(); i++ {
		if s.bit(i) {
			ones++
		}
	}
	out := New[T]()
	for pos := s.Cap() - ones; pos < s.Cap(); pos++ {
		out.apply(pos, true)
	}
	return out
}

// Clear zeroes the store. The cursor is untouched.
func (s *Store[T]) Clear() {
	var zero T
	s.store = zero
}

// Clone returns a deep copy of the store, cursor included.
func (s *Store[T]) Clone() *Store[T] {
	c := *s
	return &c
}

// Raw returns the backing integer.
func (s *Store[T]) Raw() T {
	return s.store
}

// SetRaw replaces the backing integer wholesale.
func (s *Store[T]) SetRaw(v T) {
	s.store = v
}

// GetAtUnchecked is GetAt without bounds validation.
//
// Precondition: 0 <= pos < Cap. An oversized pos reads as false; a negative
// pos panics.
func (s *Store[T]) GetAtUnchecked(pos int) bool {
	return s.bit(pos)
}

// SetAtUnchecked is SetAt without bounds validation.
//
// Precondition: 0 <= pos < Cap. An oversized pos writes nowhere; a negative
// pos panics.
func (s *Store[T]) SetAtUnchecked(pos int, value bool) {
	s.apply(pos, value)
}

// GetUnchecked is Get without cursor validation.
//
// Precondition: the cursor is < Cap.
func (s *Store[T]) GetUnchecked() bool {
	return s.bit(s.cursor)
}

// SetUnchecked is Set without cursor validation.
//
// Precondition: the cursor is < Cap.
func (s *Store[T]) SetUnchecked(value bool) {
	s.apply(s.cursor, value)
}

// AdvanceUnchecked is Advance without the capacity check. The cursor may
// end up out of range, after which the checked accessors fail.
func (s *Store[T]) AdvanceUnchecked() {
	s.cursor++
}

// SeekUnchecked is Seek without the capacity check.
func (s *Store[T]) SeekUnchecked(pos int) {
	s.cursor = pos
}

// NextUnchecked is Next without cursor validation.
//
// Precondition: the cursor is < Cap.
func (s *Store[T]) NextUnchecked() bool {
	v := s.bit(s.cursor)
	s.cursor++
	return v
}

// ConsumeUnchecked is Consume without cursor validation.
//
// Precondition: the cursor is < Cap.
func (s *Store[T]) ConsumeUnchecked() bool {
	v := s.bit(s.cursor)
	s.apply(s.cursor, false)
	s.cursor++
	return v
}
