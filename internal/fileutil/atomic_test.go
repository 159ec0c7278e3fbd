package fileutil

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTensor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.bin")

	values := []float32{0.5, -2, 3.75}
	require.NoError(t, WriteTensor(path, values))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 12)
	for i, want := range values {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		assert.Equal(t, want, got)
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteAtomicFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.bin")
	boom := errors.New("boom")

	err := WriteAtomic(path, 0o600, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteAtomicReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ids.bin")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	require.NoError(t, WriteTensor(path, []int32{1, -1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
