package array

import "github.com/nparray-go/nparray/internal/npy"

// Element is a constraint over the element types an Array can hold.
// Each type maps to exactly one on-disk descriptor, so the constraint
// admits the exact builtin types only; defined types with a matching
// underlying type have no descriptor and are rejected at compile time.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		float32 | float64 | complex64 | complex128
}

// dataTypeOf maps a compile-time element type to its file-format tag.
func dataTypeOf[T Element]() npy.DataType {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return npy.Int8
	case uint8:
		return npy.Uint8
	case int16:
		return npy.Int16
	case uint16:
		return npy.Uint16
	case int32:
		return npy.Int32
	case uint32:
		return npy.Uint32
	case int64:
		return npy.Int64
	case uint64:
		return npy.Uint64
	case float32:
		return npy.Float32
	case float64:
		return npy.Float64
	case complex64:
		return npy.Complex64
	case complex128:
		return npy.Complex128
	default:
		panic("unsupported element type")
	}
}
