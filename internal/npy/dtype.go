package npy

import "fmt"

// DataType identifies the element type of an array payload.
type DataType int

// Supported element types.
const (
	Int8 DataType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// dtypeRecord ties a DataType to its header descriptor code and byte
// width. The table is the single source of truth for all three mapping
// directions; the lookup maps below are derived from it at init.
type dtypeRecord struct {
	kind  DataType
	descr string
	width int
}

var dtypeTable = []dtypeRecord{
	{Int8, "b1", 1},
	{Uint8, "B1", 1},
	{Int16, "i2", 2},
	{Uint16, "u2", 2},
	{Int32, "i4", 4},
	{Uint32, "u4", 4},
	{Int64, "i8", 8},
	{Uint64, "u8", 8},
	{Float32, "f4", 4},
	{Float64, "f8", 8},
	{Complex64, "c8", 8},
	{Complex128, "c16", 16},
}

var (
	descrToKind = make(map[string]DataType, len(dtypeTable))
	kindToDescr = make(map[DataType]string, len(dtypeTable))
	kindToWidth = make(map[DataType]int, len(dtypeTable))
)

func init() {
	for _, rec := range dtypeTable {
		descrToKind[rec.descr] = rec.kind
		kindToDescr[rec.kind] = rec.descr
		kindToWidth[rec.kind] = rec.width
	}
}

// DataTypeOfDescr resolves a header descriptor code (without its
// endianness marker) to a DataType.
func DataTypeOfDescr(descr string) (DataType, error) {
	kind, ok := descrToKind[descr]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDType, descr)
	}
	return kind, nil
}

// Descr returns the header descriptor code for the data type.
func (dt DataType) Descr() string {
	descr, ok := kindToDescr[dt]
	if !ok {
		panic("unknown data type")
	}
	return descr
}

// Width returns the element size in bytes.
func (dt DataType) Width() int {
	width, ok := kindToWidth[dt]
	if !ok {
		panic("unknown data type")
	}
	return width
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}
