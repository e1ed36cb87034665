package bitstore

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Bitmap exports the set positions of the store as a roaring bitmap, for
// interop with systems that speak compressed bitmaps. Like Raw, this is an
// escape hatch: the result is a snapshot, not a live view.
func (d *Dyn) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	for byteIdx, b := range d.store {
		if b == 0 {
			continue
		}
		for off := 0; off < 8; off++ {
			if b&(1<<off) != 0 {
				bm.Add(uint64(byteIdx)*8 + uint64(off))
			}
		}
	}
	return bm
}

// DynFromBitmap builds an unbounded store with exactly the bitmap's
// positions set. Positions beyond DynCap fail with ErrInvalidPosition.
func DynFromBitmap(bm *roaring64.Bitmap) (*Dyn, error) {
	d := NewDyn()
	if bm == nil || bm.IsEmpty() {
		return d, nil
	}
	if bm.Maximum() > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, bm.Maximum())
	}
	it := bm.Iterator()
	for it.HasNext() {
		d.apply(int(it.Next()), true)
	}
	return d, nil
}
