package array_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nparray-go/nparray/array"
	"github.com/nparray-go/nparray/npy"
)

// roundTrip saves a freshly filled array and loads it back, comparing
// shape, storage order and every element.
func roundTrip[T array.Element](t *testing.T, fill T, rowMajor bool) {
	t.Helper()

	a, err := array.NewShaped[T](array.Shape{2, 3, 2}, rowMajor)
	require.NoError(t, err)
	a.Fill(fill)

	path := filepath.Join(t.TempDir(), "roundtrip.npy")
	require.NoError(t, a.Save(path))

	b, err := array.Load[T](path)
	require.NoError(t, err)

	assert.True(t, b.Shape().Equal(a.Shape()), "shape %v != %v", b.Shape(), a.Shape())
	assert.Equal(t, rowMajor, b.RowMajor())
	require.Equal(t, a.Size(), b.Size())
	for i := 0; i < b.Size(); i++ {
		assert.Equal(t, fill, b.AtFlat(i), "element %d", i)
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	roundTrip[int8](t, -7, true)
	roundTrip[uint8](t, 200, true)
	roundTrip[int16](t, -3000, true)
	roundTrip[uint16](t, 60000, true)
	roundTrip[int32](t, -70000, true)
	roundTrip[uint32](t, 4000000000, true)
	roundTrip[int64](t, -1<<40, true)
	roundTrip[uint64](t, 1<<50, true)
	roundTrip[float32](t, 3.25, true)
	roundTrip[float64](t, -2.5e100, true)
	roundTrip[complex64](t, 1.5-2.5i, true)
	roundTrip[complex128](t, -3.25+4.75i, true)
}

func TestRoundTripColumnMajor(t *testing.T) {
	roundTrip[float64](t, 1.125, false)
	roundTrip[int32](t, 11, false)
}

// A 2x3 row-major float32 array filled with 7.0, saved and loaded,
// reports shape [2 3], row-major order and all elements equal to 7.0.
func TestRoundTripExample(t *testing.T) {
	a, err := array.NewShaped[float32](array.Shape{2, 3}, true)
	require.NoError(t, err)
	a.Fill(7.0)

	path := filepath.Join(t.TempDir(), "example.npy")
	require.NoError(t, a.Save(path))

	b, err := array.Load[float32](path)
	require.NoError(t, err)
	assert.True(t, b.Shape().Equal(array.Shape{2, 3}))
	assert.True(t, b.RowMajor())
	for i := 0; i < b.Size(); i++ {
		assert.Equal(t, float32(7.0), b.AtFlat(i))
	}
}

// Distinct values survive the trip in coordinate order.
func TestRoundTripValuesByCoordinate(t *testing.T) {
	a, err := array.NewShaped[int32](array.Shape{3, 4}, true)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, a.Set(int32(i*100+j), i, j))
		}
	}

	path := filepath.Join(t.TempDir(), "coords.npy")
	require.NoError(t, a.Save(path))

	b, err := array.Load[int32](path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := b.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, int32(i*100+j), v, "at (%d,%d)", i, j)
		}
	}
}

func TestLoadTypeMismatch(t *testing.T) {
	a, err := array.NewShaped[float32](array.Shape{2, 2}, true)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "f4.npy")
	require.NoError(t, a.Save(path))

	_, err = array.Load[float64](path)
	assert.ErrorIs(t, err, npy.ErrTypeMismatch)

	_, err = array.Load[int32](path)
	assert.ErrorIs(t, err, npy.ErrTypeMismatch)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.npy")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a numpy file"), 0o644))

	_, err := array.Load[float32](path)
	assert.ErrorIs(t, err, npy.ErrInvalidFormat)
}
