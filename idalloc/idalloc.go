package idalloc

// Allocator hands out item ids for one vector instance and recycles
// the ids of erased items.
// you can use some other recycling strategy once you implement this interface
//
// Implementations are not safe for concurrent use; the owning vector
// serializes every call under its own mutex.
type Allocator interface {
	// Allocate returns a recycled id if one is pending, otherwise a
	// fresh id strictly greater than every id handed out before.
	Allocate() uint64

	// Reclaim marks the id of an erased item as reusable.
	Reclaim(id uint64)

	// Restore marks id as live while replaying the log: it raises the
	// high-water mark to at least id and, when id is pending reuse,
	// removes it from the freelist. A replayed append may re-use an id
	// a replayed tombstone reclaimed earlier in the same log.
	Restore(id uint64)

	// Free reports how many reclaimed ids are pending reuse.
	Free() int
}
