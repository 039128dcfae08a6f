package fio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileIO_Write(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "a.data"))
	assert.Nil(t, err)
	assert.NotNil(t, fio)

	n, err := fio.Write([]byte("aaa"))
	assert.Nil(t, err)
	assert.Equal(t, 3, n)

	n, err = fio.Write([]byte("bbb"))
	assert.Nil(t, err)
	assert.Equal(t, 3, n)

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(6), size)

	assert.Nil(t, fio.Close())
}

func TestFileIO_Read(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "a.data"))
	assert.Nil(t, err)

	_, err = fio.Write([]byte("aaabbb"))
	assert.Nil(t, err)

	buf := make([]byte, 3)
	n, err := fio.Read(buf, 0)
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("aaa"), buf)

	n, err = fio.Read(buf, 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("bbb"), buf)

	assert.Nil(t, fio.Close())
}

func TestFileIO_Sync(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "a.data"))
	assert.Nil(t, err)

	_, err = fio.Write([]byte("aaa"))
	assert.Nil(t, err)

	assert.Nil(t, fio.Flush())
	assert.Nil(t, fio.Sync())
	assert.Nil(t, fio.Close())
}

func TestFileIO_Truncate(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "a.data"))
	assert.Nil(t, err)

	_, err = fio.Write([]byte("aaabbb"))
	assert.Nil(t, err)

	err = fio.Truncate(3)
	assert.Nil(t, err)

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(3), size)

	// appends continue at the new end
	_, err = fio.Write([]byte("ccc"))
	assert.Nil(t, err)

	buf := make([]byte, 6)
	_, err = fio.Read(buf, 0)
	assert.Nil(t, err)
	assert.Equal(t, []byte("aaaccc"), buf)

	assert.Nil(t, fio.Close())
}
