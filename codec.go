package ebcdic

import (
	"errors"

	"github.com/npillmayer/ebcdic/pagemap"
)

// CodePoint is a Unicode scalar value. Code page tables only populate the
// Basic Multilingual Plane.
type CodePoint uint32

// maxBMP is the largest code point a reverse page map can address.
const maxBMP = 0xFFFF

var (
	// ErrUnrepresentable is returned when a code point has no byte in a code page.
	ErrUnrepresentable = errors.New("ebcdic: code point not representable in code page")
	// ErrNotASCII is returned when a byte does not decode to 7-bit ASCII.
	ErrNotASCII = errors.New("ebcdic: character is not ASCII")
	// ErrUnknownEncoding is returned for Encoding values without a code page.
	ErrUnknownEncoding = errors.New("ebcdic: unknown encoding")
)

// Codec is a single-byte code page: a forward table indexed by byte and a
// reverse page map indexed by code point.
//
// Codecs are obtained from Encoding.Codec, Lookup or LoadCodePage. The zero
// value, and a nil *Codec, behave as an empty code page: every byte decodes
// to 0 and every code point is unrepresentable.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	name    string
	toUni   *[256]CodePoint
	fromUni pagemap.Map
}

// Name returns the canonical name of the code page, e.g. "IBM037".
func (c *Codec) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

func (c *Codec) String() string {
	return c.Name()
}

// ToUnicode returns the code point for byte b. It never fails; bytes without
// a mapping yield 0, as does byte 0x00 itself.
func (c *Codec) ToUnicode(b byte) CodePoint {
	if c == nil || c.toUni == nil {
		return 0
	}
	return c.toUni[b]
}

// FromUnicode returns the byte for code point cp, or ErrUnrepresentable if cp
// lies outside every page of the code page or hits an unfilled entry.
func (c *Codec) FromUnicode(cp CodePoint) (byte, error) {
	if c == nil || cp > maxBMP {
		return 0, ErrUnrepresentable
	}
	b, ok := c.fromUni.Lookup(uint16(cp))
	if !ok || (b == 0 && cp != 0) {
		return 0, ErrUnrepresentable
	}
	return b, nil
}

// ToASCII decodes b and narrows the result to 7-bit ASCII. It returns
// ErrNotASCII if the code point is 0x80 or above.
func (c *Codec) ToASCII(b byte) (byte, error) {
	cp := c.ToUnicode(b)
	if cp >= 0x80 {
		return 0, ErrNotASCII
	}
	return byte(cp), nil
}

// FromASCII encodes an ASCII character. a is not checked to be below 0x80:
// other values are looked up in the Latin-1 page as well, which usually
// yields 0.
func (c *Codec) FromASCII(a byte) byte {
	if c == nil {
		return 0
	}
	return c.fromUni.Byte(uint16(a))
}

// Blocks returns the high bytes of the Unicode blocks the code page
// encodes into, e.g. [0x00 0x30] for IBM290.
func (c *Codec) Blocks() []uint8 {
	if c == nil {
		return nil
	}
	return c.fromUni.Blocks()
}
