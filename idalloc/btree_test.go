package idalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdered_Allocate(t *testing.T) {
	a := NewOrdered(0)

	assert.Equal(t, uint64(1), a.Allocate())
	assert.Equal(t, uint64(2), a.Allocate())
	assert.Equal(t, uint64(3), a.Allocate())
}

func TestOrdered_Reclaim(t *testing.T) {
	a := NewOrdered(0)
	for i := 0; i < 5; i++ {
		a.Allocate()
	}

	a.Reclaim(5)
	a.Reclaim(2)
	a.Reclaim(4)
	assert.Equal(t, 3, a.Free())

	// lowest pending id first
	assert.Equal(t, uint64(2), a.Allocate())
	assert.Equal(t, uint64(4), a.Allocate())
	assert.Equal(t, uint64(5), a.Allocate())
	assert.Equal(t, uint64(6), a.Allocate())
}

func TestOrdered_Restore(t *testing.T) {
	a := NewOrdered(0)

	a.Restore(100)
	assert.Equal(t, uint64(101), a.Allocate())
}

func TestOrdered_Restore_RemovesPendingId(t *testing.T) {
	a := NewOrdered(0)
	for i := 0; i < 3; i++ {
		a.Allocate()
	}

	a.Reclaim(1)
	a.Reclaim(2)

	a.Restore(1)
	assert.Equal(t, 1, a.Free())
	assert.Equal(t, uint64(2), a.Allocate())
	assert.Equal(t, uint64(4), a.Allocate())
}
