package npy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Read decodes a .npy stream and returns the raw element payload along
// with the array metadata. The payload is byte-swapped to host order
// when the file declares the opposite endianness, so callers can
// reinterpret it directly as a slice of the header's element type.
func Read(r io.Reader) ([]byte, Header, error) {
	hdr, order, err := readHeader(r)
	if err != nil {
		return nil, Header{}, err
	}

	width := hdr.DType.Width()
	count, byteSize, err := payloadSize(hdr.Shape, width)
	if err != nil {
		return nil, Header{}, err
	}

	payload := make([]byte, byteSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, Header{}, fmt.Errorf("read payload: %w", err)
	}

	if order != nativeEndian {
		if err := swapBytes(payload, count, width); err != nil {
			return nil, Header{}, err
		}
	}
	return payload, hdr, nil
}

// ReadFile decodes the .npy file at path.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func ReadFile(path string) ([]byte, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("open file: %w", err)
	}
	defer func() {
		_ = f.Close() // Ignore close error on read-only file.
	}()

	return Read(bufio.NewReader(f))
}

// ReadHeader decodes only the magic prologue and header dictionary,
// leaving the reader positioned at the start of the payload.
func ReadHeader(r io.Reader) (Header, error) {
	hdr, _, err := readHeader(r)
	return hdr, err
}

// payloadSize computes the element count and payload byte size implied
// by a parsed header shape. The dimensions come from an untrusted file,
// so every multiplication is checked: a product that overflows int is a
// format error, not a panic in make.
func payloadSize(shape []int, width int) (count, byteSize int, err error) {
	count = 1
	for _, dim := range shape {
		if count > math.MaxInt/dim {
			return 0, 0, fmt.Errorf("%w: element count for shape %v overflows", ErrInvalidFormat, shape)
		}
		count *= dim
	}
	if count > math.MaxInt/width {
		return 0, 0, fmt.Errorf("%w: payload size for shape %v overflows", ErrInvalidFormat, shape)
	}
	return count, count * width, nil
}

func readHeader(r io.Reader) (Header, binary.ByteOrder, error) {
	var magic [6]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Header{}, nil, fmt.Errorf("read magic: %w", err)
	}
	if magic != Magic {
		return Header{}, nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, magic[:])
	}

	var version [2]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return Header{}, nil, fmt.Errorf("read version: %w", err)
	}

	// The header length field is always stored little-endian: 2 bytes
	// for version 1, 4 bytes for version 2 and up.
	var headerLen int
	if version[0] == 1 {
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return Header{}, nil, fmt.Errorf("read header length: %w", err)
		}
		headerLen = int(n)
	} else {
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return Header{}, nil, fmt.Errorf("read header length: %w", err)
		}
		headerLen = int(n)
	}

	text := make([]byte, headerLen)
	if _, err := io.ReadFull(r, text); err != nil {
		return Header{}, nil, fmt.Errorf("read header: %w", err)
	}

	hdr, order, err := parseHeader(text)
	if err != nil {
		return Header{}, nil, fmt.Errorf("parse header: %w", err)
	}
	return hdr, order, nil
}
