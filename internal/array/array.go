package array

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/nparray-go/nparray/internal/npy"
)

// Errors reported by checked element access.
var (
	// ErrIndexArity is returned when the number of indices does not
	// match the array's dimensionality.
	ErrIndexArity = errors.New("array: wrong number of indices")

	// ErrIndexRange is returned when an index falls outside its axis.
	ErrIndexRange = errors.New("array: index out of range")
)

// Array is a dense N-dimensional container over a single flat buffer.
// It owns its buffer exclusively; there is no view or aliasing support.
// The storage-order flag selects how multi-dimensional coordinates map
// onto the buffer: row-major (C order, last axis varies fastest) or
// column-major (Fortran order, first axis varies fastest).
type Array[T Element] struct {
	data     []T
	shape    Shape
	rowMajor bool
	dims     int
}

// New creates an empty row-major array with no shape and no elements.
func New[T Element]() *Array[T] {
	return &Array[T]{rowMajor: true}
}

// NewShaped creates a zero-initialized array with the given shape and
// storage order.
func NewShaped[T Element](shape Shape, rowMajor bool) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array[T]{
		data:     make([]T, shape.NumElements()),
		shape:    shape.Clone(),
		rowMajor: rowMajor,
		dims:     len(shape),
	}, nil
}

// FromSlice creates an array that copies data as its element buffer.
// The element count of the shape must match len(data) exactly.
func FromSlice[T Element](data []T, shape Shape, rowMajor bool) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, have %d",
			shape, shape.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return &Array[T]{
		data:     buf,
		shape:    shape.Clone(),
		rowMajor: rowMajor,
		dims:     len(shape),
	}, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Size returns the total number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// RowMajor reports whether elements are stored in row-major (C) order.
func (a *Array[T]) RowMajor() bool {
	return a.rowMajor
}

// Data returns the flat element buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array[T]) Data() []T {
	return a.data
}

// LinearIndex computes the flat buffer offset for the coordinates under
// the array's storage order, after bounds checking.
func (a *Array[T]) LinearIndex(idx ...int) (int, error) {
	return a.linearIndex(idx)
}

// At returns the element at the given coordinates.
func (a *Array[T]) At(idx ...int) (T, error) {
	i, err := a.linearIndex(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Set stores v at the given coordinates.
func (a *Array[T]) Set(v T, idx ...int) error {
	i, err := a.linearIndex(idx)
	if err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// AtFlat returns the element at flat buffer offset i, unchecked.
func (a *Array[T]) AtFlat(i int) T {
	return a.data[i]
}

// SetFlat stores v at flat buffer offset i, unchecked.
func (a *Array[T]) SetFlat(i int, v T) {
	a.data[i] = v
}

// Fill overwrites every element with v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Reshape replaces the shape in place. The new shape must describe
// exactly the current element count; on failure the array is unchanged.
func (a *Array[T]) Reshape(newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	if newShape.NumElements() != len(a.data) {
		return fmt.Errorf("cannot reshape %d elements to shape %v (%d elements)",
			len(a.data), newShape, newShape.NumElements())
	}
	a.shape = newShape.Clone()
	a.dims = len(a.shape)
	return nil
}

// Reallocate resizes the array to any valid shape. Growth
// zero-initializes the new slots; shrinking truncates the buffer and
// trailing data is lost.
func (a *Array[T]) Reallocate(newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	n := newShape.NumElements()
	buf := make([]T, n)
	copy(buf, a.data)
	a.data = buf
	a.shape = newShape.Clone()
	a.dims = len(a.shape)
	return nil
}

// Save writes the array to a .npy file at path.
func (a *Array[T]) Save(path string) error {
	hdr := npy.Header{
		DType:       dataTypeOf[T](),
		Shape:       a.shape,
		ColumnMajor: !a.rowMajor,
	}
	return npy.WriteFile(path, elemBytes(a.data), hdr)
}

// Load reads a .npy file into a new array. The file's element type
// must match T; the shape and storage order are taken from the file.
func Load[T Element](path string) (*Array[T], error) {
	payload, hdr, err := npy.ReadFile(path)
	if err != nil {
		return nil, err
	}

	want := dataTypeOf[T]()
	if hdr.DType != want {
		return nil, fmt.Errorf("%w: file %s holds %s, array holds %s",
			npy.ErrTypeMismatch, path, hdr.DType, want)
	}

	data := make([]T, hdr.NumElements())
	copy(elemBytes(data), payload)

	return &Array[T]{
		data:     data,
		shape:    Shape(hdr.Shape).Clone(),
		rowMajor: !hdr.ColumnMajor,
		dims:     len(hdr.Shape),
	}, nil
}

func (a *Array[T]) linearIndex(idx []int) (int, error) {
	if len(idx) != a.dims {
		return 0, fmt.Errorf("%w: got %d indices for %d dimensions",
			ErrIndexArity, len(idx), a.dims)
	}
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d (size %d)",
				ErrIndexRange, v, i, a.shape[i])
		}
	}
	if a.rowMajor {
		return a.rowMajorIndex(idx), nil
	}
	return a.colMajorIndex(idx), nil
}

// rowMajorIndex folds coordinates from the last axis toward the first;
// the last axis has unit stride.
func (a *Array[T]) rowMajorIndex(idx []int) int {
	off := idx[a.dims-1]
	coeff := 1
	for i := a.dims - 1; i > 0; i-- {
		coeff *= a.shape[i]
		off += coeff * idx[i-1]
	}
	return off
}

// colMajorIndex is the symmetric fold from the first axis toward the
// last; the first axis has unit stride.
func (a *Array[T]) colMajorIndex(idx []int) int {
	off := idx[0]
	coeff := 1
	for i := 0; i < a.dims-1; i++ {
		coeff *= a.shape[i]
		off += coeff * idx[i+1]
	}
	return off
}

// elemBytes reinterprets a typed element slice as its raw bytes.
//
//nolint:gosec // unsafe.Slice for zero-copy I/O, length derived from the slice itself.
func elemBytes[T Element](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	n := len(data) * int(unsafe.Sizeof(data[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), n)
}
