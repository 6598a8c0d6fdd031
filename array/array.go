// Copyright 2026 The nparray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides a dense N-dimensional array container with
// selectable storage order and .npy file persistence.
//
// An Array owns a flat, contiguous buffer of one element type plus a
// shape, and maps multi-dimensional coordinates onto the buffer under
// either row-major (C) or column-major (Fortran) order.
//
// Example:
//
//	a, err := array.NewShaped[float32](array.Shape{2, 3}, true)
//	if err != nil { ... }
//	a.Fill(7)
//	err = a.Save("data.npy")
//
//	b, err := array.Load[float32]("data.npy")
package array

import (
	"github.com/nparray-go/nparray/internal/array"
)

// Type aliases for public API

// Element is the constraint over supported element types: signed and
// unsigned 8/16/32/64-bit integers, 32/64-bit floats, and 64/128-bit
// complex numbers.
type Element = array.Element

// Shape represents the dimensions of an array, outermost first.
// Example: Shape{2, 3, 4} describes a 3-D array with 24 elements.
type Shape = array.Shape

// Array is a dense N-dimensional container over a single owned buffer.
type Array[T Element] = array.Array[T]

// Errors from checked element access.
var (
	// ErrIndexArity is returned when the number of indices does not
	// match the array's dimensionality.
	ErrIndexArity = array.ErrIndexArity

	// ErrIndexRange is returned when an index falls outside its axis.
	ErrIndexRange = array.ErrIndexRange
)

// Creation functions

// New creates an empty row-major array with no shape and no elements.
func New[T Element]() *Array[T] {
	return array.New[T]()
}

// NewShaped creates a zero-initialized array.
//
// Example:
//
//	a, err := array.NewShaped[int32](array.Shape{3, 4}, true)
func NewShaped[T Element](shape Shape, rowMajor bool) (*Array[T], error) {
	return array.NewShaped[T](shape, rowMajor)
}

// FromSlice creates an array from a Go slice; the slice is copied. The
// shape's element count must match len(data) exactly.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	a, err := array.FromSlice(data, array.Shape{2, 3}, true)
func FromSlice[T Element](data []T, shape Shape, rowMajor bool) (*Array[T], error) {
	return array.FromSlice(data, shape, rowMajor)
}

// Load reads a .npy file into a new array. The file's element type must
// match T, otherwise npy.ErrTypeMismatch is returned.
func Load[T Element](path string) (*Array[T], error) {
	return array.Load[T](path)
}
