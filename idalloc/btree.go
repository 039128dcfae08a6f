package idalloc

import "github.com/google/btree"

var _ Allocator = (*Ordered)(nil)

const defaultDegree = 32

// Ordered recycles the lowest pending id first instead of the oldest,
// which keeps live ids dense under churn. Reuse order aside it behaves
// like Fifo.
type Ordered struct {
	lastID uint64
	free   *btree.BTreeG[uint64]
}

func NewOrdered(degree int) *Ordered {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &Ordered{
		free: btree.NewG[uint64](degree, func(a, b uint64) bool { return a < b }),
	}
}

func (o *Ordered) Allocate() uint64 {
	if id, ok := o.free.DeleteMin(); ok {
		return id
	}
	o.lastID++
	return o.lastID
}

func (o *Ordered) Reclaim(id uint64) {
	o.free.ReplaceOrInsert(id)
}

func (o *Ordered) Restore(id uint64) {
	if id > o.lastID {
		o.lastID = id
	}
	o.free.Delete(id)
}

func (o *Ordered) Free() int {
	return o.free.Len()
}
