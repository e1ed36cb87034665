package bitstore

import (
	"fmt"
	"iter"

	"lukechampine.com/uint128"
)

// Cap128 is the capacity of a Store128.
const Cap128 = 128

// Store128 is the 128-bit fixed store. Go has no native 128-bit integer,
// so the backing value is a lukechampine.com/uint128.Uint128 and the
// bitwise operators of Store[T] become method calls; the contract is
// otherwise identical.
type Store128 struct {
	store  uint128.Uint128
	cursor int
}

// New128 creates an empty 128-bit store.
func New128() *Store128 {
	return &Store128{}
}

// From128 creates a 128-bit store seeded with v.
func From128(v uint128.Uint128) *Store128 {
	return &Store128{store: v}
}

// Cap returns 128.
func (s *Store128) Cap() int {
	return Cap128
}

func (s *Store128) bit(pos int) bool {
	return !s.store.And(uint128.From64(1).Lsh(uint(pos))).IsZero()
}

func (s *Store128) apply(pos int, value bool) {
	mask := uint128.From64(1).Lsh(uint(pos))
	if value {
		s.store = s.store.Or(mask)
	} else {
		s.store = s.store.And(mask.Xor(uint128.Max))
	}
}

// GetAt returns the bit at pos.
func (s *Store128) GetAt(pos int) (bool, error) {
	if pos < 0 || pos >= Cap128 {
		return false, fmt.Errorf("%w: %d (cap %d)", ErrInvalidPosition, pos, Cap128)
	}
	return s.bit(pos), nil
}

// SetAt sets or clears the bit at pos.
func (s *Store128) SetAt(pos int, value bool) error {
	if pos < 0 || pos >= Cap128 {
		return fmt.Errorf("%w: %d (cap %d)", ErrInvalidPosition, pos, Cap128)
	}
	s.apply(pos, value)
	return nil
}

// Get returns the bit at the cursor.
func (s *Store128) Get() (bool, error) {
	if s.cursor < 0 || s.cursor >= Cap128 {
		return false, fmt.Errorf("%w: %d (cap %d)", ErrInvalidCursor, s.cursor, Cap128)
	}
	return s.bit(s.cursor), nil
}

// Set sets or clears the bit at the cursor.
func (s *Store128) Set(value bool) error {
	if s.cursor < 0 || s.cursor >= Cap128 {
		return fmt.Errorf("%w: %d (cap %d)", ErrInvalidCursor, s.cursor, Cap128)
	}
	s.apply(s.cursor, value)
	return nil
}

// Advance moves the cursor one position forward; the last valid position
// cannot be advanced past.
func (s *Store128) Advance() error {
	if s.cursor+1 >= Cap128 {
		return fmt.Errorf("%w: cannot advance past position %d", ErrInvalidCursor, Cap128-1)
	}
	s.cursor++
	return nil
}

// Seek moves the cursor to pos.
func (s *Store128) Seek(pos int) error {
	if pos < 0 || pos >= Cap128 {
		return fmt.Errorf("%w: %d (cap %d)", ErrInvalidCursor, pos, Cap128)
	}
	s.cursor = pos
	return nil
}

// Cursor returns the current cursor position.
func (s *Store128) Cursor() int {
	return s.cursor
}

// Next returns the bit at the cursor, then advances.
func (s *Store128) Next() (bool, error) {
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
func (s *Store128) Consume() (bool, error) {
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

// All returns the ordered values of all 128 slots, position 0 first.
func (s *Store128) All() []bool {
	out := make([]bool, Cap128)
	for i := range out {
		out[i] = s.bit(i)
	}
	return out
}

// Values iterates the slots in position order.
func (s *Store128) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < Cap128; i++ {
			if !yield(s.bit(i)) {
				return
			}
		}
	}
}

// Sorted returns a new store holding the values of All sorted ascending
// (false before true), written back positionally.
func (s *Store128) Sorted() *Store128 {
	ones := 0
	for i := 0; i < Cap128; i++ {
		if s.bit(i) {
			ones++
		}
	}
	out := New128()
	for pos := Cap128 - ones; pos < Cap128; pos++ {
		out.apply(pos, true)
	}
	return out
}

// Clear zeroes the store. The cursor is untouched.
func (s *Store128) Clear() {
	s.store = uint128.Zero
}

// Clone returns a deep copy of the store, cursor included.
func (s *Store128) Clone() *Store128 {
	c := *s
	return &c
}

// Raw returns the backing value.
func (s *Store128) Raw() uint128.Uint128 {
	return s.store
}

// SetRaw replaces the backing value wholesale.
func (s *Store128) SetRaw(v uint128.Uint128) {
	s.store = v
}

// GetAtUnchecked is GetAt without bounds validation.
//
// Precondition: 0 <= pos < 128.
func (s *Store128) GetAtUnchecked(pos int) bool {
	return s.bit(pos)
}

// SetAtUnchecked is SetAt without bounds validation.
//
// Precondition: 0 <= pos < 128.
func (s *Store128) SetAtUnchecked(pos int, value bool) {
	s.apply(pos, value)
}

// GetUnchecked is Get without cursor validation.
//
// Precondition: the cursor is < 128.
func (s *Store128) GetUnchecked() bool {
	return s.bit(s.cursor)
}

// SetUnchecked is Set without cursor validation.
//
// Precondition: the cursor is < 128.
func (s *Store128) SetUnchecked(value bool) {
	s.apply(s.cursor, value)
}

// AdvanceUnchecked is Advance without the capacity check.
func (s *Store128) AdvanceUnchecked() {
	s.cursor++
}

// SeekUnchecked is Seek without the capacity check.
func (s *Store128) SeekUnchecked(pos int) {
	s.cursor = pos
}

// NextUnchecked is Next without cursor validation.
//
// Precondition: the cursor is < 128.
func (s *Store128) NextUnchecked() bool {
	v := s.bit(s.cursor)
	s.cursor++
	return v
}

// ConsumeUnchecked is Consume without cursor validation.
//
// Precondition: the cursor is < 128.
func (s *Store128) ConsumeUnchecked() bool {
	v := s.bit(s.cursor)
	s.apply(s.cursor, false)
	s.cursor++
	return v
}
