package npy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Write encodes the payload and metadata as a .npy stream. The payload
// is written unmodified and the header descriptor declares the host's
// byte order, so file and payload endianness always agree. Write does
// not validate len(data) against the shape.
func Write(w io.Writer, data []byte, h Header) error {
	text := buildHeaderText(h)

	// Version 1 carries a 2-byte header length field. Fall back to
	// version 2 and a 4-byte field only when the 64-aligned version 1
	// preamble would not fit in 16 bits.
	major := byte(1)
	fieldWidth := 2
	if preambleLen(len(text), 2) > math.MaxUint16 {
		major = 2
		fieldWidth = 4
	}

	// Pad with spaces plus a final newline so the payload starts at a
	// 64-byte-aligned offset.
	padding := preambleLen(len(text), fieldWidth) - (len(Magic) + 2 + fieldWidth + len(text))
	headerLen := len(text) + padding

	if _, err := w.Write(Magic[:]); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if _, err := w.Write([]byte{major, 0}); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if fieldWidth == 2 {
		if err := binary.Write(w, binary.LittleEndian, uint16(headerLen)); err != nil {
			return fmt.Errorf("write header length: %w", err)
		}
	} else {
		if err := binary.Write(w, binary.LittleEndian, uint32(headerLen)); err != nil {
			return fmt.Errorf("write header length: %w", err)
		}
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := io.WriteString(w, strings.Repeat(" ", padding-1)+"\n"); err != nil {
		return fmt.Errorf("write header padding: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// WriteFile encodes the payload and metadata to a .npy file at path.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func WriteFile(path string, data []byte, h Header) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Write(w, data, h); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// buildHeaderText renders the header dictionary. Row-major arrays write
// 'fortran_order': False, and every shape entry carries a trailing
// comma, matching the format's reference writer.
func buildHeaderText(h Header) string {
	var sb strings.Builder

	sb.WriteString("{'descr': '")
	if hostIsLittleEndian() {
		sb.WriteByte('<')
	} else {
		sb.WriteByte('>')
	}
	sb.WriteString(h.DType.Descr())
	sb.WriteString("', 'fortran_order': ")
	if h.ColumnMajor {
		sb.WriteString("True")
	} else {
		sb.WriteString("False")
	}
	sb.WriteString(", 'shape': (")
	for _, dim := range h.Shape {
		fmt.Fprintf(&sb, "%d,", dim)
	}
	sb.WriteString("), }")

	return sb.String()
}

// preambleLen returns the total size of magic, version bytes, length
// field and header text, rounded up to the next multiple of 64. The
// padding is never zero so the trailing newline always fits.
func preambleLen(textLen, fieldWidth int) int {
	n := len(Magic) + 2 + fieldWidth + textLen
	return n + 64 - n%64
}
