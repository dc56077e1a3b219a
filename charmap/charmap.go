// Package charmap adapts EBCDIC code pages to golang.org/x/text/encoding,
// for converting whole byte streams rather than single characters.
package charmap

import (
	"unicode/utf8"

	"github.com/npillmayer/ebcdic"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// replacement is '?' in all of the built-in EBCDIC code pages.
const replacement = 0x6F

// Built-in code pages as encoding.Encoding.
var (
	IBM037   encoding.Encoding = New(ebcdic.IBM037.Codec())
	IBM290   encoding.Encoding = New(ebcdic.IBM290.Codec())
	EBCDICUK encoding.Encoding = New(ebcdic.EBCDICUK.Codec())
	EBCDICUS encoding.Encoding = New(ebcdic.EBCDICUS.Codec())
	EBCDICES encoding.Encoding = New(ebcdic.EBCDICES.Codec())
)

// RepertoireError is returned by an encoder for runes the code page cannot
// represent. It carries the replacement byte, which makes it usable with
// encoding.ReplaceUnsupported.
type RepertoireError byte

func (RepertoireError) Error() string {
	return "encoding: rune not supported by encoding."
}

// Replacement returns the byte substituted for an unsupported rune.
func (r RepertoireError) Replacement() byte {
	return byte(r)
}

// Charmap is a single-byte EBCDIC code page usable as encoding.Encoding.
type Charmap struct {
	codec       *ebcdic.Codec
	replacement byte
}

// New wraps a code page, e.g. one loaded with package mapfile. A nil codec
// yields an empty code page that decodes every non-zero byte to
// utf8.RuneError and encodes nothing.
func New(codec *ebcdic.Codec) *Charmap {
	return &Charmap{codec: codec, replacement: replacement}
}

// NewDecoder implements the encoding.Encoding interface.
func (m *Charmap) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: charmapDecoder{charmap: m}}
}

// NewEncoder implements the encoding.Encoding interface.
func (m *Charmap) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: charmapEncoder{charmap: m}}
}

// String returns the code page's name.
func (m *Charmap) String() string {
	return m.codec.Name()
}

// DecodeByte returns the rune for byte b. Bytes without a mapping decode to
// utf8.RuneError.
func (m *Charmap) DecodeByte(b byte) rune {
	cp := m.codec.ToUnicode(b)
	if cp == 0 && b != 0 {
		return utf8.RuneError
	}
	return rune(cp)
}

// EncodeRune returns the byte for rune r. ok is whether r is in the code
// page's repertoire. If not, b is set to the replacement byte.
func (m *Charmap) EncodeRune(r rune) (b byte, ok bool) {
	if r < 0 {
		return m.replacement, false
	}
	b, err := m.codec.FromUnicode(ebcdic.CodePoint(r))
	if err != nil {
		return m.replacement, false
	}
	return b, true
}

// charmapDecoder implements transform.Transformer by decoding to UTF-8.
type charmapDecoder struct {
	transform.NopResetter
	charmap *Charmap
}

func (m charmapDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for i, c := range src {
		r := m.charmap.DecodeByte(c)
		if r < utf8.RuneSelf {
			if nDst >= len(dst) {
				err = transform.ErrShortDst
				break
			}
			dst[nDst] = byte(r)
			nDst++
			nSrc = i + 1
			continue
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc = i + 1
	}
	return nDst, nSrc, err
}

// charmapEncoder implements transform.Transformer by encoding from UTF-8.
type charmapEncoder struct {
	transform.NopResetter
	charmap *Charmap
}

func (m charmapEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 {
				// Invalid UTF-8, or we haven't seen the full character yet.
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					err = transform.ErrShortSrc
				} else {
					err = RepertoireError(m.charmap.replacement)
				}
				break
			}
		}
		b, ok := m.charmap.EncodeRune(r)
		if !ok {
			err = RepertoireError(m.charmap.replacement)
			break
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, err
}
