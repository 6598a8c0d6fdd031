// Copyright 2026 The nparray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package npy provides low-level read/write access to the NumPy .npy
// array file format.
//
// Most users should persist arrays through the array package; this
// package exposes the untyped codec: a Header describing dtype, shape
// and storage order, plus the raw element payload as bytes. Payloads
// are byte-swapped to host order on read when the file declares the
// opposite endianness, and always written in host order.
package npy

import (
	"io"

	"github.com/nparray-go/nparray/internal/npy"
)

// Magic is the 6-byte signature at the start of every .npy file.
var Magic = npy.Magic

// Header describes the array stored in a .npy file.
type Header = npy.Header

// DataType identifies the element type of an array payload.
type DataType = npy.DataType

// Supported element types.
const (
	Int8       DataType = npy.Int8
	Uint8      DataType = npy.Uint8
	Int16      DataType = npy.Int16
	Uint16     DataType = npy.Uint16
	Int32      DataType = npy.Int32
	Uint32     DataType = npy.Uint32
	Int64      DataType = npy.Int64
	Uint64     DataType = npy.Uint64
	Float32    DataType = npy.Float32
	Float64    DataType = npy.Float64
	Complex64  DataType = npy.Complex64
	Complex128 DataType = npy.Complex128
)

// Errors reported by the codec.
var (
	// ErrInvalidFormat is returned when the input does not carry the
	// .npy magic signature or its header cannot be parsed.
	ErrInvalidFormat = npy.ErrInvalidFormat

	// ErrUnknownDType is returned for type descriptor codes outside the
	// supported fixed-width set.
	ErrUnknownDType = npy.ErrUnknownDType

	// ErrTypeMismatch is returned when the on-disk element type does
	// not match the one requested by the caller.
	ErrTypeMismatch = npy.ErrTypeMismatch

	// ErrSwapWidth is returned when a byte swap is requested for an
	// element width other than 1, 2, 4, 8 or 16.
	ErrSwapWidth = npy.ErrSwapWidth
)

// DataTypeOfDescr resolves a header descriptor code (without its
// endianness marker) to a DataType.
func DataTypeOfDescr(descr string) (DataType, error) {
	return npy.DataTypeOfDescr(descr)
}

// Read decodes a .npy stream, returning the raw element payload in host
// byte order along with the array metadata.
func Read(r io.Reader) ([]byte, Header, error) {
	return npy.Read(r)
}

// ReadFile decodes the .npy file at path.
func ReadFile(path string) ([]byte, Header, error) {
	return npy.ReadFile(path)
}

// ReadHeader decodes only the magic prologue and header dictionary,
// leaving the reader positioned at the start of the payload.
func ReadHeader(r io.Reader) (Header, error) {
	return npy.ReadHeader(r)
}

// Write encodes the payload and metadata as a .npy stream. The payload
// is written unmodified; the header declares the host's byte order.
func Write(w io.Writer, data []byte, h Header) error {
	return npy.Write(w, data, h)
}

// WriteFile encodes the payload and metadata to a .npy file at path.
func WriteFile(path string, data []byte, h Header) error {
	return npy.WriteFile(path, data, h)
}
