package ebcdic

import "fmt"

// Encoding selects one of the built-in code pages.
type Encoding uint8

// Built-in code pages.
const (
	IBM037 Encoding = iota + 1
	IBM290
	EBCDICUK
	EBCDICUS
	EBCDICES
)

// staticPage is a reverse page compiled into the binary.
type staticPage struct {
	hi   uint8
	page *[256]byte
}

var builtins = [...]*Codec{
	IBM037:   newStaticCodec("IBM037", &ibm037ToUnicode, staticPage{0x00, &ibm037Page00}),
	IBM290:   newStaticCodec("IBM290", &ibm290ToUnicode, staticPage{0x00, &ibm290Page00}, staticPage{0x30, &ibm290Page30}),
	EBCDICUK: newStaticCodec("EBCDIC-UK", &ebcdicUKToUnicode, staticPage{0x00, &ebcdicUKPage00}),
	EBCDICUS: newStaticCodec("EBCDIC-US", &ebcdicUSToUnicode, staticPage{0x00, &ebcdicUSPage00}),
	EBCDICES: newStaticCodec("EBCDIC-ES", &ebcdicESToUnicode, staticPage{0x00, &ebcdicESPage00}, staticPage{0x20, &ebcdicESPage20}),
}

func newStaticCodec(name string, toUni *[256]CodePoint, pages ...staticPage) *Codec {
	c := &Codec{name: name, toUni: toUni}
	for _, p := range pages {
		c.fromUni.Attach(p.hi, p.page)
	}
	return c
}

// Encodings returns all built-in encodings.
func Encodings() []Encoding {
	return []Encoding{IBM037, IBM290, EBCDICUK, EBCDICUS, EBCDICES}
}

// Codec returns the code page for e, or nil if e is not a built-in encoding.
func (e Encoding) Codec() *Codec {
	if e == 0 || int(e) >= len(builtins) {
		return nil
	}
	return builtins[e]
}

func (e Encoding) String() string {
	if c := e.Codec(); c != nil {
		return c.name
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ToUnicode returns the code point for byte b, 0 if unmapped.
func (e Encoding) ToUnicode(b byte) CodePoint {
	c := e.Codec()
	if c == nil {
		return 0
	}
	return c.ToUnicode(b)
}

// FromUnicode returns the byte for code point cp.
func (e Encoding) FromUnicode(cp CodePoint) (byte, error) {
	c := e.Codec()
	if c == nil {
		return 0, ErrUnknownEncoding
	}
	return c.FromUnicode(cp)
}

// ToASCII decodes b to a 7-bit ASCII character.
func (e Encoding) ToASCII(b byte) (byte, error) {
	c := e.Codec()
	if c == nil {
		return 0, ErrUnknownEncoding
	}
	return c.ToASCII(b)
}

// FromASCII encodes ASCII character a.
func (e Encoding) FromASCII(a byte) byte {
	c := e.Codec()
	if c == nil {
		return 0
	}
	return c.FromASCII(a)
}

// Check that the static reverse pages are exactly the inverse of the
// forward tables.
func init() {
	for _, enc := range Encodings() {
		c := enc.Codec()
		derived := invert(c.toUni)
		assert(samePages(&c.fromUni, derived), "reverse pages of "+c.name+" do not match forward table")
		tracer().Debugf("code page %s verified, %d reverse pages", c.name, c.fromUni.NumPages())
	}
}
