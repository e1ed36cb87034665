package registry

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boolgo/bitstore"
)

func newFixed8(t *testing.T) *Registry[*bitstore.Store[uint8]] {
	t.Helper()
	return New(bitstore.New[uint8]())
}

func TestRegistry_Lifecycle(t *testing.T) {
	r := newFixed8(t)

	require.NoError(t, r.Add("x", true))
	assert.True(t, r.Exists("x"))

	v, err := r.Get("x")
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, r.Delete("x"))
	assert.False(t, r.Exists("x"))

	_, err = r.Get("x")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent name is a no-op.
	require.NoError(t, r.Delete("x"))
}

func TestRegistry_SetUpdatesInPlace(t *testing.T) {
	r := newFixed8(t)

	require.NoError(t, r.Set("flag", true))
	require.NoError(t, r.Set("flag", false))

	v, err := r.Get("flag")
	require.NoError(t, err)
	assert.False(t, v)

	// Updating an existing name allocates no new position.
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, map[string]int{"flag": 0}, r.Names())

	// Add on an existing name is the same idempotent overwrite.
	require.NoError(t, r.Add("flag", true))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Toggle(t *testing.T) {
	r := newFixed8(t)

	require.NoError(t, r.Set("t", true))
	require.NoError(t, r.Toggle("t"))

	v, err := r.Get("t")
	require.NoError(t, err)
	assert.False(t, v)

	assert.ErrorIs(t, r.Toggle("missing"), ErrNotFound)
}

func TestRegistry_CapacityExhaustion(t *testing.T) {
	r := newFixed8(t)

	// A width-8 registry accepts exactly 8 distinct names.
	require.NoError(t, r.MassSet(8, "b{n}", "true{r}"))

	err := r.Set("overflow", true)
	assert.ErrorIs(t, err, ErrCapacityReached)
	assert.False(t, r.Exists("overflow"))

	// Updating existing names still works at capacity.
	require.NoError(t, r.Set("b0", false))
}

func TestRegistry_DeletionDoesNotReclaimCapacity(t *testing.T) {
	// Positions are retired, not reclaimed: deleting after filling a
	// fixed-width registry does not make room for a new name. This is a
	// documented limitation of the monotonic allocator.
	r := newFixed8(t)
	require.NoError(t, r.MassSet(8, "b{n}", "true{r}"))

	require.NoError(t, r.Delete("b3"))
	assert.Equal(t, 7, r.Len())

	err := r.Set("late", true)
	assert.ErrorIs(t, err, ErrCapacityReached)

	// Sort rebuilds densely and does make room again.
	require.NoError(t, r.Sort())
	require.NoError(t, r.Set("late", true))
	assert.Equal(t, 8, r.Len())
}

func TestRegistry_DeleteClearsBit(t *testing.T) {
	r := newFixed8(t)

	require.NoError(t, r.Set("a", true))
	assert.Equal(t, uint8(1), r.Bits().Raw())

	require.NoError(t, r.Delete("a"))
	assert.Equal(t, uint8(0), r.Bits().Raw())

	// The retired position is skipped by the next allocation.
	require.NoError(t, r.Set("b", true))
	assert.Equal(t, map[string]int{"b": 1}, r.Names())
}

func TestRegistry_MassGet(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.Set("a", true))
	require.NoError(t, r.Set("b", false))

	got, err := r.MassGet("a", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got)

	_, err = r.MassGet("a", "nope", "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_MassTogglePartialApplication(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.Set("a", true))
	require.NoError(t, r.Set("b", true))

	// Stops at the first missing name; prior toggles stay applied.
	err := r.MassToggle("a", "nope", "b")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := r.Get("a")
	require.NoError(t, err)
	assert.False(t, v)
	v, err = r.Get("b")
	require.NoError(t, err)
	assert.True(t, v)
}

func TestRegistry_MassSetPatterns(t *testing.T) {
	t.Run("alternating with repeat", func(t *testing.T) {
		r := newFixed8(t)
		require.NoError(t, r.MassSet(4, "f_{n}", "true,false{r}"))

		got, err := r.MassGet("f_0", "f_1", "f_2", "f_3")
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, true, false}, got)
	})

	t.Run("single value repeat", func(t *testing.T) {
		r := newFixed8(t)
		require.NoError(t, r.MassSet(3, "t{n}", "true{r}"))

		got, err := r.MassGet("t0", "t1", "t2")
		require.NoError(t, err)
		assert.Equal(t, []bool{true, true, true}, got)
	})

	t.Run("explicit list without repeat", func(t *testing.T) {
		r := newFixed8(t)
		require.NoError(t, r.MassSet(4, "v{n}", "true,false,true,true"))

		got, err := r.MassGet("v0", "v1", "v2", "v3")
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, true, true}, got)
	})

	t.Run("name pattern lacks placeholder", func(t *testing.T) {
		r := newFixed8(t)
		err := r.MassSet(2, "bad", "true,false")
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("list shorter than count without repeat", func(t *testing.T) {
		r := newFixed8(t)
		err := r.MassSet(3, "f{n}", "true,false")
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("unparseable token", func(t *testing.T) {
		r := newFixed8(t)
		err := r.MassSet(2, "f{n}", "true,banana")
		assert.ErrorIs(t, err, ErrInvalidBooleanToken)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("mid-pattern repeat marker reuses last value", func(t *testing.T) {
		// A {r} on a non-final token defeats the length check without
		// enabling cycling; the overhang reuses the last listed value.
		// Documented quirk, pinned here on purpose.
		r := newFixed8(t)
		require.NoError(t, r.MassSet(4, "f{n}", "true{r},false"))

		got, err := r.MassGet("f0", "f1", "f2", "f3")
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, false, false}, got)
	})
}

func TestRegistry_MassSetPartialApplication(t *testing.T) {
	// Capacity failure mid-pattern leaves the already-written entries
	// applied; no rollback.
	r := newFixed8(t)

	err := r.MassSet(10, "f{n}", "true{r}")
	assert.ErrorIs(t, err, ErrCapacityReached)
	assert.Equal(t, 8, r.Len())

	v, err := r.Get("f7")
	require.NoError(t, err)
	assert.True(t, v)
	assert.False(t, r.Exists("f8"))
}

func TestRegistry_SortReassignsDensely(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.Set("c", true))
	require.NoError(t, r.Set("a", false))
	require.NoError(t, r.Set("b", true))
	require.NoError(t, r.Delete("a")) // leave a gap at position 1

	require.NoError(t, r.Sort())

	// Ascending name order yields positions 0..n-1.
	assert.Equal(t, map[string]int{"b": 0, "c": 1}, r.Names())

	v, err := r.Get("b")
	require.NoError(t, err)
	assert.True(t, v)
	v, err = r.Get("c")
	require.NoError(t, err)
	assert.True(t, v)

	// The rebuilt store carries only the live bits.
	assert.Equal(t, uint8(0b11), r.Bits().Raw())
}

func TestRegistry_SortedLeavesSourceAlone(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.Set("z", true))
	require.NoError(t, r.Set("y", false))

	sorted, err := r.Sorted()
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"y": 0, "z": 1}, sorted.Names())
	assert.Equal(t, map[string]int{"z": 0, "y": 1}, r.Names())
}

func TestRegistry_AllAndEntries(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.Set("b1", true))
	require.NoError(t, r.Set("b2", false))
	require.NoError(t, r.Set("b3", true))

	all, err := r.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"b1": true, "b2": false, "b3": true}, all)

	var names []string
	var values []bool
	for name, value := range r.Entries() {
		names = append(names, name)
		values = append(values, value)
	}
	assert.Equal(t, []string{"b1", "b2", "b3"}, names)
	assert.Equal(t, []bool{true, false, true}, values)

	// Names returns a copy.
	r.Names()["b1"] = 99
	pos := r.Names()["b1"]
	assert.Equal(t, 0, pos)
}

func TestRegistry_ClearResets(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.MassSet(8, "f{n}", "true{r}"))

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, uint8(0), r.Bits().Raw())

	// Position assignment restarts from zero.
	require.NoError(t, r.Set("fresh", true))
	assert.Equal(t, map[string]int{"fresh": 0}, r.Names())
}

func TestRegistry_SeededStore(t *testing.T) {
	// A seeded store exposes its raw bits until names overwrite them.
	r := New(bitstore.FromValue[uint8](0b101))
	assert.Equal(t, uint8(0b101), r.Bits().Raw())

	require.NoError(t, r.Set("first", false))
	assert.Equal(t, uint8(0b100), r.Bits().Raw())
}

func TestRegistry_RawEscapeHatch(t *testing.T) {
	r := newFixed8(t)
	require.NoError(t, r.Set("a", false))

	// Mutations through the store are visible to named reads.
	require.NoError(t, r.Bits().SetAt(0, true))
	v, err := r.Get("a")
	require.NoError(t, err)
	assert.True(t, v)
}

func TestRegistry_Store128(t *testing.T) {
	r := New(bitstore.New128())

	for i := 0; i < 128; i++ {
		require.NoError(t, r.Set(string(rune('A'+i%26))+string(rune('0'+i/26)), i%2 == 0))
	}
	assert.Equal(t, 128, r.Len())

	err := r.Set("one-too-many", true)
	assert.ErrorIs(t, err, ErrCapacityReached)
}

func TestRegistry_WithLogger(t *testing.T) {
	// Smoke test: a configured logger must not change behavior.
	r := New(bitstore.New[uint8](), WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, r.MassSet(4, "f{n}", "true{r}"))
	assert.Equal(t, 4, r.Len())
}

func TestDynRegistry_Unbounded(t *testing.T) {
	r := NewDyn()

	// Far more names than any fixed width; no capacity error.
	require.NoError(t, r.MassSet(1000, "flag_{n}", "true,false{r}"))
	assert.Equal(t, 1000, r.Len())

	v, err := r.Get("flag_998")
	require.NoError(t, err)
	assert.True(t, v)
	v, err = r.Get("flag_999")
	require.NoError(t, err)
	assert.False(t, v)

	// The underlying store materialized 1000 bits worth of bytes.
	assert.Equal(t, 125, len(r.Bits().Raw()))
}

func TestDynRegistry_DeleteAndSort(t *testing.T) {
	r := NewDyn()
	require.NoError(t, r.Set("gamma", true))
	require.NoError(t, r.Set("alpha", true))
	require.NoError(t, r.Set("beta", false))
	require.NoError(t, r.Delete("alpha"))

	require.NoError(t, r.Sort())
	assert.Equal(t, map[string]int{"beta": 0, "gamma": 1}, r.Names())

	got, err := r.MassGet("beta", "gamma")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, got)
}
