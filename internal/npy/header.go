package npy

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// The .npy header is a Python dictionary literal restricted to three
// keys, e.g.
//
//	{'descr': '<f4', 'fortran_order': False, 'shape': (2, 3), }
//
// parseHeader runs a small tokenizer over the raw header bytes and a
// recursive-descent parser over the tokens. Every byte outside the
// micro-syntax, including NUL bytes inside the declared header length,
// is a parse error rather than a silent truncation point.

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokColon
	tokComma
	tokString
	tokIdent
	tokNumber
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of header"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	case tokString:
		return "string"
	case tokIdent:
		return "identifier"
	case tokNumber:
		return "number"
	default:
		return "unknown token"
	}
}

type token struct {
	kind tokenKind
	text string
}

// headerLexer walks the header bytes one token at a time. It keeps no
// state beyond the read position, so a parse error pinpoints the exact
// offending offset.
type headerLexer struct {
	buf []byte
	pos int
}

func (l *headerLexer) next() (token, error) {
	for l.pos < len(l.buf) {
		c := l.buf[l.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.pos++
			continue
		}
		break
	}
	if l.pos >= len(l.buf) {
		return token{kind: tokEOF}, nil
	}

	c := l.buf[l.pos]
	switch {
	case c == '{':
		l.pos++
		return token{kind: tokLBrace}, nil
	case c == '}':
		l.pos++
		return token{kind: tokRBrace}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen}, nil
	case c == ':':
		l.pos++
		return token{kind: tokColon}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma}, nil
	case c == '\'':
		return l.lexString()
	case c >= '0' && c <= '9':
		return l.lexNumber()
	case c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_':
		return l.lexIdent()
	default:
		return token{}, fmt.Errorf("%w: unexpected byte 0x%02x in header at offset %d",
			ErrInvalidFormat, c, l.pos)
	}
}

func (l *headerLexer) lexString() (token, error) {
	start := l.pos + 1
	for i := start; i < len(l.buf); i++ {
		if l.buf[i] == '\'' {
			l.pos = i + 1
			return token{kind: tokString, text: string(l.buf[start:i])}, nil
		}
	}
	return token{}, fmt.Errorf("%w: unterminated string in header at offset %d",
		ErrInvalidFormat, l.pos)
}

func (l *headerLexer) lexNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.buf) && l.buf[l.pos] >= '0' && l.buf[l.pos] <= '9' {
		l.pos++
	}
	return token{kind: tokNumber, text: string(l.buf[start:l.pos])}, nil
}

func (l *headerLexer) lexIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.buf) {
		c := l.buf[l.pos]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_' {
			l.pos++
			continue
		}
		break
	}
	return token{kind: tokIdent, text: string(l.buf[start:l.pos])}, nil
}

type headerParser struct {
	lex headerLexer
}

func (p *headerParser) expect(kind tokenKind) (token, error) {
	tok, err := p.lex.next()
	if err != nil {
		return token{}, err
	}
	if tok.kind != kind {
		return token{}, fmt.Errorf("%w: expected %s in header, got %s",
			ErrInvalidFormat, kind, tok.kind)
	}
	return tok, nil
}

// parseHeader decodes the header dictionary, returning the array
// metadata and the byte order declared by the descriptor's endianness
// marker. Any marker other than '>' is treated as little-endian.
func parseHeader(text []byte) (Header, binary.ByteOrder, error) {
	p := &headerParser{lex: headerLexer{buf: text}}
	var (
		hdr       Header
		order     binary.ByteOrder = binary.LittleEndian
		haveDescr bool
		haveOrder bool
		haveShape bool
	)

	if _, err := p.expect(tokLBrace); err != nil {
		return Header{}, nil, err
	}

	for {
		tok, err := p.lex.next()
		if err != nil {
			return Header{}, nil, err
		}
		if tok.kind == tokRBrace {
			break
		}
		if tok.kind == tokComma {
			continue
		}
		if tok.kind != tokString {
			return Header{}, nil, fmt.Errorf("%w: expected dictionary key in header, got %s",
				ErrInvalidFormat, tok.kind)
		}
		if _, err := p.expect(tokColon); err != nil {
			return Header{}, nil, err
		}

		switch tok.text {
		case "descr":
			if haveDescr {
				return Header{}, nil, fmt.Errorf("%w: duplicate header key %q", ErrInvalidFormat, tok.text)
			}
			val, err := p.expect(tokString)
			if err != nil {
				return Header{}, nil, err
			}
			hdr.DType, order, err = parseDescr(val.text)
			if err != nil {
				return Header{}, nil, err
			}
			haveDescr = true

		case "fortran_order":
			if haveOrder {
				return Header{}, nil, fmt.Errorf("%w: duplicate header key %q", ErrInvalidFormat, tok.text)
			}
			val, err := p.expect(tokIdent)
			if err != nil {
				return Header{}, nil, err
			}
			switch val.text {
			case "True":
				hdr.ColumnMajor = true
			case "False":
				hdr.ColumnMajor = false
			default:
				return Header{}, nil, fmt.Errorf("%w: fortran_order must be True or False, got %q",
					ErrInvalidFormat, val.text)
			}
			haveOrder = true

		case "shape":
			if haveShape {
				return Header{}, nil, fmt.Errorf("%w: duplicate header key %q", ErrInvalidFormat, tok.text)
			}
			shape, err := p.parseShape()
			if err != nil {
				return Header{}, nil, err
			}
			hdr.Shape = shape
			haveShape = true

		default:
			return Header{}, nil, fmt.Errorf("%w: unexpected header key %q",
				ErrInvalidFormat, tok.text)
		}
	}

	if !haveDescr || !haveOrder || !haveShape {
		return Header{}, nil, fmt.Errorf("%w: header is missing descr, fortran_order or shape",
			ErrInvalidFormat)
	}
	return hdr, order, nil
}

// parseDescr splits a descriptor string such as "<f4" into its byte
// order and type code.
func parseDescr(descr string) (DataType, binary.ByteOrder, error) {
	if descr == "" {
		return 0, nil, fmt.Errorf("%w: empty descr in header", ErrInvalidFormat)
	}

	var order binary.ByteOrder = binary.LittleEndian
	code := descr
	switch descr[0] {
	case '>':
		order = binary.BigEndian
		code = descr[1:]
	case '<', '|', '=':
		code = descr[1:]
	}

	kind, err := DataTypeOfDescr(code)
	if err != nil {
		return 0, nil, err
	}
	return kind, order, nil
}

// parseShape decodes the shape tuple. Dimensions are separated by
// commas and a trailing comma is the norm; an empty tuple denotes a
// scalar, decoded as a single-element 1-D shape.
func (p *headerParser) parseShape() ([]int, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	var shape []int
	expectDim := true
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokRParen:
			if len(shape) == 0 {
				shape = []int{1}
			}
			return shape, nil
		case tokComma:
			if expectDim {
				return nil, fmt.Errorf("%w: unexpected comma in shape tuple", ErrInvalidFormat)
			}
			expectDim = true
		case tokNumber:
			if !expectDim {
				return nil, fmt.Errorf("%w: missing comma in shape tuple", ErrInvalidFormat)
			}
			dim, err := strconv.Atoi(tok.text)
			if err != nil {
				return nil, fmt.Errorf("%w: bad shape dimension %q", ErrInvalidFormat, tok.text)
			}
			if dim <= 0 {
				return nil, fmt.Errorf("%w: shape dimension must be positive, got %d",
					ErrInvalidFormat, dim)
			}
			shape = append(shape, dim)
			expectDim = false
		default:
			return nil, fmt.Errorf("%w: expected dimension in shape tuple, got %s",
				ErrInvalidFormat, tok.kind)
		}
	}
}
