package array

import (
	"testing"

	"github.com/nparray-go/nparray/internal/npy"
)

// Every type admitted by the Element constraint must resolve to a
// file-format tag; the constraint and the switch in dataTypeOf cover
// exactly the same set of types.
func TestDataTypeOfCoversAllElementTypes(t *testing.T) {
	checks := []struct {
		got  npy.DataType
		want npy.DataType
	}{
		{dataTypeOf[int8](), npy.Int8},
		{dataTypeOf[uint8](), npy.Uint8},
		{dataTypeOf[int16](), npy.Int16},
		{dataTypeOf[uint16](), npy.Uint16},
		{dataTypeOf[int32](), npy.Int32},
		{dataTypeOf[uint32](), npy.Uint32},
		{dataTypeOf[int64](), npy.Int64},
		{dataTypeOf[uint64](), npy.Uint64},
		{dataTypeOf[float32](), npy.Float32},
		{dataTypeOf[float64](), npy.Float64},
		{dataTypeOf[complex64](), npy.Complex64},
		{dataTypeOf[complex128](), npy.Complex128},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("dataTypeOf = %s, want %s", c.got, c.want)
		}
	}
}
