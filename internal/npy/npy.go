// Package npy reads and writes files in the NumPy .npy array format.
//
// The format stores a single uncompressed N-dimensional array: a 6-byte
// magic signature, a 2-byte version pair, a little-endian header length
// field (2 bytes for version 1, 4 bytes for version 2+), a textual header
// dictionary describing dtype, storage order and shape, and the raw
// element payload. The header is padded so the payload starts at a
// 64-byte-aligned file offset.
//
// Specification: https://numpy.org/neps/nep-0001-npy-format.html
package npy

import "errors"

// Magic is the signature present at the start of every .npy file.
var Magic = [6]byte{'\x93', 'N', 'U', 'M', 'P', 'Y'}

// Errors reported by the codec.
var (
	// ErrInvalidFormat is returned when the input does not carry the
	// .npy magic signature or its header cannot be parsed.
	ErrInvalidFormat = errors.New("npy: not a valid NumPy file")

	// ErrUnknownDType is returned for type descriptor codes outside the
	// supported fixed-width set.
	ErrUnknownDType = errors.New("npy: unknown data type")

	// ErrTypeMismatch is returned when the on-disk element type does not
	// match the one requested by the caller.
	ErrTypeMismatch = errors.New("npy: data type mismatch")

	// ErrSwapWidth is returned when a byte swap is requested for an
	// element width other than 1, 2, 4, 8 or 16.
	ErrSwapWidth = errors.New("npy: unsupported byte-swap width")
)

// Header describes the array stored in a .npy file.
type Header struct {
	DType       DataType // element type of the payload
	Shape       []int    // dimension sizes, outermost first
	ColumnMajor bool     // true for Fortran order, false for C order
}

// NumElements returns the total element count implied by the shape.
func (h Header) NumElements() int {
	n := 1
	for _, dim := range h.Shape {
		n *= dim
	}
	return n
}
