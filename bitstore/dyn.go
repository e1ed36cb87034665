package bitstore

import (
	"fmt"
	"iter"
	"math"
)

// DynCap is the practical capacity of a Dyn store: the platform's maximum
// slice index. It exists to keep cursor and position arithmetic
// well-defined, not because that much storage could ever be materialized.
const DynCap = math.MaxInt

// Dyn is an unbounded bit store backed by a growable byte slice. Bit i
// lives in byte i/8 at offset i%8.
//
// Unlike the fixed stores, Dyn has sparse semantics: reading a bit past the
// materialized backing returns false instead of failing, and any write to
// bit i extends the backing with zero bytes up to and including byte i/8.
// The zero value is an empty store ready to use.
type Dyn struct {
	store  []byte
	cursor int
}

// NewDyn creates an empty unbounded store.
func NewDyn() *Dyn {
	return &Dyn{}
}

// NewDynWithCapacity creates an empty store with byte storage pre-reserved
// for the given bit count. The logical length is unchanged: no bits are
// materialized.
func NewDynWithCapacity(bits int) *Dyn {
	if bits < 0 {
		bits = 0
	}
	return &Dyn{store: make([]byte, 0, (bits+7)/8)}
}

// DynFromBytes creates a store seeded with b. The slice is retained, not
// copied: the caller shares the backing with the store.
func DynFromBytes(b []byte) *Dyn {
	return &Dyn{store: b}
}

// Cap returns DynCap.
func (d *Dyn) Cap() int {
	return DynCap
}

// Len returns the number of materialized bits, a multiple of 8.
func (d *Dyn) Len() int {
	return len(d.store) * 8
}

func (d *Dyn) bit(pos int) bool {
	byteIdx := pos >> 3
	if byteIdx >= len(d.store) {
		return false
	}
	return d.store[byteIdx]&(1<<(pos&7)) != 0
}

func (d *Dyn) apply(pos int, value bool) {
	byteIdx := pos >> 3
	if byteIdx >= len(d.store) {
		d.store = append(d.store, make([]byte, byteIdx+1-len(d.store))...)
	}
	mask := byte(1) << (pos & 7)
	if value {
		d.store[byteIdx] |= mask
	} else {
		d.store[byteIdx] &^= mask
	}
}

// GetAt returns the bit at pos. Positions past the materialized backing
// read as false.
func (d *Dyn) GetAt(pos int) (bool, error) {
	if pos < 0 || pos >= DynCap {
		return false, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	return d.bit(pos), nil
}

// SetAt sets or clears the bit at pos, growing the backing as needed.
func (d *Dyn) SetAt(pos int, value bool) error {
	if pos < 0 || pos >= DynCap {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	d.apply(pos, value)
	return nil
}

// Get returns the bit at the cursor.
func (d *Dyn) Get() (bool, error) {
	if d.cursor < 0 || d.cursor >= DynCap {
		return false, fmt.Errorf("%w: %d", ErrInvalidCursor, d.cursor)
	}
	return d.bit(d.cursor), nil
}

// Set sets or clears the bit at the cursor.
func (d *Dyn) Set(value bool) error {
	if d.cursor < 0 || d.cursor >= DynCap {
		return fmt.Errorf("%w: %d", ErrInvalidCursor, d.cursor)
	}
	d.apply(d.cursor, value)
	return nil
}

// Advance moves the cursor one position forward.
func (d *Dyn) Advance() error {
	if d.cursor+1 >= DynCap {
		return fmt.Errorf("%w: cannot advance past position %d", ErrInvalidCursor, DynCap-1)
	}
	d.cursor++
	return nil
}

// Seek moves the cursor to pos.
func (d *Dyn) Seek(pos int) error {
	if pos < 0 || pos >= DynCap {
		return fmt.Errorf("%w: %d", ErrInvalidCursor, pos)
	}
	d.cursor = pos
	return nil
}

// Cursor returns the current cursor position.
func (d *Dyn) Cursor() int {
	return d.cursor
}

// Next returns the bit at the cursor, then advances.
func (d *Dyn) Next() (bool, error) {
	v, err := d.Get()
	if err != nil {
		return false, err
	}
	if err := d.Advance(); err != nil {
		return false, err
	}
	return v, nil
}

// Consume returns the bit at the cursor, clears it, then advances. The
// clear is a real write: it materializes the containing byte.
func (d *Dyn) Consume() (bool, error) {
	v, err := d.Get()
	if err != nil {
		return false, err
	}
	d.apply(d.cursor, false)
	if err := d.Advance(); err != nil {
		return false, err
	}
	return v, nil
}

// Range returns the ordered values of [start, end). Bits past the
// materialized backing read as false.
func (d *Dyn) Range(start, end int) ([]bool, error) {
	if start < 0 || start >= DynCap {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, start)
	}
	if end < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, end)
	}
	if end < start {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	out := make([]bool, 0, end-start)
	for pos := start; pos < end; pos++ {
		out = append(out, d.bit(pos))
	}
	return out, nil
}

// All returns the values of all materialized bits, position 0 first.
func (d *Dyn) All() []bool {
	out := make([]bool, d.Len())
	for i := range out {
		out[i] = d.bit(i)
	}
	return out
}

// Values iterates the materialized bits in position order.
func (d *Dyn) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(d.bit(i)) {
				return
			}
		}
	}
}

// Sorted returns a new store of the same materialized length whose bits
// hold the values of All sorted ascending (false before true).
func (d *Dyn) Sorted() *Dyn {
	ones := 0
	for i := 0; i < d.Len(); i++ {
		if d.bit(i) {
			ones++
		}
	}
	out := &Dyn{store: make([]byte, len(d.store))}
	for pos := d.Len() - ones; pos < d.Len(); pos++ {
		out.apply(pos, true)
	}
	return out
}

// Clear drops all materialized bits. The cursor is untouched.
func (d *Dyn) Clear() {
	d.store = d.store[:0]
}

// Clone returns a deep copy of the store, cursor included.
func (d *Dyn) Clone() *Dyn {
	c := make([]byte, len(d.store))
	copy(c, d.store)
	return &Dyn{store: c, cursor: d.cursor}
}

// Raw returns the backing byte slice. The slice is shared with the store:
// mutations through it are visible to subsequent reads. This is an interop
// escape hatch, not a stable wire format.
func (d *Dyn) Raw() []byte {
	return d.store
}

// SetRaw replaces the backing byte slice wholesale. The slice is retained,
// not copied.
func (d *Dyn) SetRaw(b []byte) {
	d.store = b
}

// GetAtUnchecked is GetAt without bounds validation.
//
// Precondition: pos >= 0.
func (d *Dyn) GetAtUnchecked(pos int) bool {
	return d.bit(pos)
}

// SetAtUnchecked is SetAt without bounds validation.
//
// Precondition: pos >= 0.
func (d *Dyn) SetAtUnchecked(pos int, value bool) {
	d.apply(pos, value)
}

// GetUnchecked is Get without cursor validation.
func (d *Dyn) GetUnchecked() bool {
	return d.bit(d.cursor)
}

// SetUnchecked is Set without cursor validation.
func (d *Dyn) SetUnchecked(value bool) {
	d.apply(d.cursor, value)
}

// AdvanceUnchecked is Advance without the capacity check.
func (d *Dyn) AdvanceUnchecked() {
	d.cursor++
}

// SeekUnchecked is Seek without the capacity check.
func (d *Dyn) SeekUnchecked(pos int) {
	d.cursor = pos
}

// NextUnchecked is Next without cursor validation.
//
// Precondition: the cursor is >= 0.
func (d *Dyn) NextUnchecked() bool {
	v := d.bit(d.cursor)
	d.cursor++
	return v
}

// ConsumeUnchecked is Consume without cursor validation.
//
// Precondition: the cursor is >= 0.
func (d *Dyn) ConsumeUnchecked() bool {
	v := d.bit(d.cursor)
	d.apply(d.cursor, false)
	d.cursor++
	return v
}

// RangeUnchecked is Range without bounds validation.
//
// Precondition: 0 <= start <= end.
func (d *Dyn) RangeUnchecked(start, end int) []bool {
	out := make([]bool, 0, end-start)
	for pos := start; pos < end; pos++ {
		out = append(out, d.bit(pos))
	}
	return out
}
