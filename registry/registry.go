package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/hupe1980/boolgo/bitstore"
)

// Registry is a name-indexed view over a bit store S. See the package
// documentation for the allocation and deletion semantics.
type Registry[S bitstore.Bits[S]] struct {
	bits       S
	names      map[string]int
	nextAssign int
	logger     *slog.Logger
}

// New creates a registry over the given store. The store may carry a
// seeded bit pattern (e.g. bitstore.FromValue); names still allocate
// positions from 0 upward and overwrite the seeded bits as they go.
func New[S bitstore.Bits[S]](bits S, opts ...Option) *Registry[S] {
	o := applyOptions(opts)
	return &Registry[S]{
		bits:   bits,
		names:  make(map[string]int),
		logger: o.logger,
	}
}

// NewDyn creates a registry over a fresh unbounded store.
func NewDyn(opts ...Option) *DynRegistry {
	return New(bitstore.NewDyn(), opts...)
}

// DynRegistry is a registry over the unbounded store. Position assignment
// is still monotonic but practically unbounded, so ErrCapacityReached
// never fires.
type DynRegistry = Registry[*bitstore.Dyn]

// Bits returns the underlying store. This is the raw-access escape hatch:
// mutating bits out from under the registry is visible to named reads.
func (r *Registry[S]) Bits() S {
	return r.bits
}

// Len returns the number of live names.
func (r *Registry[S]) Len() int {
	return len(r.names)
}

// Exists reports whether name has a mapping.
func (r *Registry[S]) Exists(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Set updates the bit for a known name in place, or allocates the next
// free position for an unseen one. Allocation fails with
// ErrCapacityReached once every position of a fixed-width store has been
// assigned.
func (r *Registry[S]) Set(name string, value bool) error {
	if pos, ok := r.names[name]; ok {
		return r.bits.SetAt(pos, value)
	}
	if r.nextAssign >= r.bits.Cap() {
		return fmt.Errorf("%w: all %d positions assigned", ErrCapacityReached, r.bits.Cap())
	}
	if err := r.bits.SetAt(r.nextAssign, value); err != nil {
		return err
	}
	r.names[name] = r.nextAssign
	r.nextAssign++
	return nil
}

// Add is Set under the name callers use for fresh entries. On an existing
// name it behaves exactly like Set (idempotent overwrite, not an error);
// callers wanting strict create-new semantics must pre-check Exists.
func (r *Registry[S]) Add(name string, value bool) error {
	return r.Set(name, value)
}

// Get returns the bit for name, or ErrNotFound.
func (r *Registry[S]) Get(name string) (bool, error) {
	pos, ok := r.names[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.bits.GetAt(pos)
}

// Toggle negates the bit for name, or fails with ErrNotFound.
func (r *Registry[S]) Toggle(name string) error {
	v, err := r.Get(name)
	if err != nil {
		return err
	}
	return r.Set(name, !v)
}

// Delete clears the bit for name and removes the mapping. Absent names are
// a no-op. The position is retired, not reclaimed.
func (r *Registry[S]) Delete(name string) error {
	pos, ok := r.names[name]
	if !ok {
		return nil
	}
	if err := r.bits.SetAt(pos, false); err != nil {
		return err
	}
	delete(r.names, name)
	return nil
}

// MassGet applies Get to each name in order, failing on the first miss.
func (r *Registry[S]) MassGet(names ...string) ([]bool, error) {
	out := make([]bool, 0, len(names))
	for _, name := range names {
		v, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MassToggle applies Toggle to each name in order, stopping at the first
// miss. Toggles applied before the failure stay applied.
func (r *Registry[S]) MassToggle(names ...string) error {
	for _, name := range names {
		if err := r.Toggle(name); err != nil {
			return err
		}
	}
	return nil
}

// MassSet generates count names by substituting {n} in namePattern with
// 0..count-1 and assigns values drawn from valuePattern (see the package
// documentation for the grammar). Entries apply sequentially; on a
// mid-pattern failure, entries already written stay applied.
func (r *Registry[S]) MassSet(count int, namePattern, valuePattern string) error {
	if err := validateNamePattern(namePattern); err != nil {
		return err
	}
	values, err := parseValuePattern(valuePattern, count)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := r.Set(expandName(namePattern, i), values.at(i)); err != nil {
			return err
		}
	}
	r.logger.Debug("mass set applied",
		slog.Int("count", count),
		slog.String("name_pattern", namePattern),
		slog.Bool("repeating", values.repeat),
	)
	return nil
}

// All returns the current value of every live name.
func (r *Registry[S]) All() (map[string]bool, error) {
	out := make(map[string]bool, len(r.names))
	for name, pos := range r.names {
		v, err := r.bits.GetAt(pos)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// Names returns the name-to-position mapping. The result is a copy; the
// registry's internal state cannot be mutated through it.
func (r *Registry[S]) Names() map[string]int {
	return maps.Clone(r.names)
}

// Entries iterates the live (name, value) pairs in lexicographic name
// order.
func (r *Registry[S]) Entries() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, name := range slices.Sorted(maps.Keys(r.names)) {
			v, err := r.bits.GetAt(r.names[name])
			if err != nil {
				return
			}
			if !yield(name, v) {
				return
			}
		}
	}
}

// Sorted returns a new registry with the same entries, rebuilt by
// re-adding them in ascending name order. Positions are reassigned densely
// from 0, so gaps left by prior deletions disappear.
func (r *Registry[S]) Sorted() (*Registry[S], error) {
	fresh := r.bits.Clone()
	fresh.Clear()
	out := &Registry[S]{
		bits:   fresh,
		names:  make(map[string]int, len(r.names)),
		logger: r.logger,
	}
	for _, name := range slices.Sorted(maps.Keys(r.names)) {
		v, err := r.bits.GetAt(r.names[name])
		if err != nil {
			return nil, err
		}
		if err := out.Set(name, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Sort rebuilds the registry in place in ascending name order. See Sorted.
func (r *Registry[S]) Sort() error {
	sorted, err := r.Sorted()
	if err != nil {
		return err
	}
	r.bits = sorted.bits
	r.names = sorted.names
	r.nextAssign = sorted.nextAssign
	return nil
}

// Clear resets the registry to the empty state: all names are dropped, the
// store is zeroed and position assignment restarts at 0.
func (r *Registry[S]) Clear() {
	r.bits.Clear()
	r.names = make(map[string]int)
	r.nextAssign = 0
}
