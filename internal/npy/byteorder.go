package npy

import (
	"encoding/binary"
	"fmt"
)

// nativeEndian is the byte order of the host, detected at startup.
var nativeEndian binary.ByteOrder

func init() {
	v := uint16(1)
	switch byte(v >> 8) {
	case 0:
		nativeEndian = binary.LittleEndian
	case 1:
		nativeEndian = binary.BigEndian
	}
}

// hostIsLittleEndian reports whether the host stores integers
// least-significant byte first.
func hostIsLittleEndian() bool {
	return nativeEndian == binary.LittleEndian
}

// swapBytes reverses the byte order of each of count consecutive
// size-byte elements of buf, in place. Only element widths of 1, 2, 4,
// 8 and 16 bytes are supported; a width of 1 is a no-op.
func swapBytes(buf []byte, count, size int) error {
	switch size {
	case 1:
		return nil
	case 2, 4, 8, 16:
	default:
		return fmt.Errorf("%w: %d", ErrSwapWidth, size)
	}

	total := count * size
	for off := 0; off < total; off += size {
		for i, j := off, off+size-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return nil
}
