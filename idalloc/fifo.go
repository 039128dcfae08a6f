package idalloc

var _ Allocator = (*Fifo)(nil)

// Fifo recycles ids oldest-reclaimed-first. This is the default
// allocator.
type Fifo struct {
	lastID uint64
	free   []uint64
}

func NewFifo() *Fifo {
	return &Fifo{}
}

func (f *Fifo) Allocate() uint64 {
	if len(f.free) > 0 {
		id := f.free[0]
		f.free = f.free[1:]
		return id
	}
	f.lastID++
	return f.lastID
}

func (f *Fifo) Reclaim(id uint64) {
	f.free = append(f.free, id)
}

func (f *Fifo) Restore(id uint64) {
	if id > f.lastID {
		f.lastID = id
	}
	for i, free := range f.free {
		if free == id {
			f.free = append(f.free[:i], f.free[i+1:]...)
			return
		}
	}
}

func (f *Fifo) Free() int {
	return len(f.free)
}
