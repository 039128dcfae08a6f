package idalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFifo_Allocate(t *testing.T) {
	a := NewFifo()

	assert.Equal(t, uint64(1), a.Allocate())
	assert.Equal(t, uint64(2), a.Allocate())
	assert.Equal(t, uint64(3), a.Allocate())
	assert.Equal(t, 0, a.Free())
}

func TestFifo_Reclaim(t *testing.T) {
	a := NewFifo()
	for i := 0; i < 4; i++ {
		a.Allocate()
	}

	a.Reclaim(3)
	a.Reclaim(1)
	assert.Equal(t, 2, a.Free())

	// oldest reclaimed first
	assert.Equal(t, uint64(3), a.Allocate())
	assert.Equal(t, uint64(1), a.Allocate())
	assert.Equal(t, 0, a.Free())

	// freelist drained, back to fresh ids
	assert.Equal(t, uint64(5), a.Allocate())
}

func TestFifo_Restore(t *testing.T) {
	a := NewFifo()

	a.Restore(7)
	a.Restore(3)
	assert.Equal(t, uint64(8), a.Allocate())
}

func TestFifo_Restore_RemovesPendingId(t *testing.T) {
	a := NewFifo()
	for i := 0; i < 3; i++ {
		a.Allocate()
	}

	a.Reclaim(1)
	a.Reclaim(2)

	// a restored id is live again and must not be handed out twice
	a.Restore(1)
	assert.Equal(t, 1, a.Free())
	assert.Equal(t, uint64(2), a.Allocate())
	assert.Equal(t, uint64(4), a.Allocate())
}
