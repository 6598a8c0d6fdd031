package npy

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderCanonical(t *testing.T) {
	text := []byte("{'descr': '<f4', 'fortran_order': False, 'shape': (2, 3), }          \n")
	hdr, order, err := parseHeader(text)
	require.NoError(t, err)
	assert.Equal(t, Float32, hdr.DType)
	assert.Equal(t, []int{2, 3}, hdr.Shape)
	assert.False(t, hdr.ColumnMajor)
	assert.Equal(t, binary.LittleEndian, order)
}

func TestParseHeaderFortranOrder(t *testing.T) {
	text := []byte("{'descr': '<i8', 'fortran_order': True, 'shape': (4,), }")
	hdr, _, err := parseHeader(text)
	require.NoError(t, err)
	assert.True(t, hdr.ColumnMajor)
	assert.Equal(t, []int{4}, hdr.Shape)
}

func TestParseHeaderBigEndian(t *testing.T) {
	text := []byte("{'descr': '>u2', 'fortran_order': False, 'shape': (5,), }")
	hdr, order, err := parseHeader(text)
	require.NoError(t, err)
	assert.Equal(t, Uint16, hdr.DType)
	assert.Equal(t, binary.BigEndian, order)
}

// Any marker other than '>' means little-endian, including '|' and a
// missing marker.
func TestParseHeaderMarkerVariants(t *testing.T) {
	for _, descr := range []string{"<b1", "|b1", "=b1", "b1"} {
		text := []byte("{'descr': '" + descr + "', 'fortran_order': False, 'shape': (1,), }")
		hdr, order, err := parseHeader(text)
		require.NoError(t, err, "descr %q", descr)
		assert.Equal(t, Int8, hdr.DType)
		assert.Equal(t, binary.LittleEndian, order)
	}
}

// An empty shape tuple denotes a scalar, decoded as shape [1].
func TestParseHeaderScalarShape(t *testing.T) {
	text := []byte("{'descr': '<f8', 'fortran_order': False, 'shape': (), }")
	hdr, _, err := parseHeader(text)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, hdr.Shape)
}

func TestParseHeaderKeyOrderIndependent(t *testing.T) {
	text := []byte("{'shape': (3, 2), 'descr': '<c16', 'fortran_order': True}")
	hdr, _, err := parseHeader(text)
	require.NoError(t, err)
	assert.Equal(t, Complex128, hdr.DType)
	assert.Equal(t, []int{3, 2}, hdr.Shape)
	assert.True(t, hdr.ColumnMajor)
}

func TestParseHeaderMalformed(t *testing.T) {
	cases := map[string]string{
		"not a dict":        "'descr': '<f4'",
		"missing descr":     "{'fortran_order': False, 'shape': (2,), }",
		"missing order":     "{'descr': '<f4', 'shape': (2,), }",
		"missing shape":     "{'descr': '<f4', 'fortran_order': False, }",
		"bad order literal": "{'descr': '<f4', 'fortran_order': Maybe, 'shape': (2,), }",
		"unknown key":       "{'descr': '<f4', 'fortran_order': False, 'pad': 1, 'shape': (2,), }",
		"unterminated str":  "{'descr': '<f4",
		"zero dimension":    "{'descr': '<f4', 'fortran_order': False, 'shape': (0, 2), }",
		"garbage in shape":  "{'descr': '<f4', 'fortran_order': False, 'shape': (2; 3), }",
		"missing comma":     "{'descr': '<f4', 'fortran_order': False, 'shape': (2 3), }",
		"leading comma":     "{'descr': '<f4', 'fortran_order': False, 'shape': (,2), }",
		"doubled comma":     "{'descr': '<f4', 'fortran_order': False, 'shape': (2,,3), }",
		"duplicate key":     "{'descr': '<f4', 'descr': '<f8', 'fortran_order': False, 'shape': (2,), }",
	}
	for name, text := range cases {
		_, _, err := parseHeader([]byte(text))
		assert.ErrorIs(t, err, ErrInvalidFormat, "case %q", name)
	}
}

// A NUL byte inside the declared header length is a parse error, never
// a silent truncation point.
func TestParseHeaderNulByte(t *testing.T) {
	text := []byte("{'descr': '<f4', \x00 'fortran_order': False, 'shape': (2,), }")
	_, _, err := parseHeader(text)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseHeaderUnknownDescr(t *testing.T) {
	text := []byte("{'descr': '<q4', 'fortran_order': False, 'shape': (2,), }")
	_, _, err := parseHeader(text)
	assert.ErrorIs(t, err, ErrUnknownDType)
}
