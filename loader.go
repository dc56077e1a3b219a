package ebcdic

import (
	"fmt"
	"io"
)

// MappingReader yields byte to code point mappings one-by-one.
// It should return io.EOF when the stream is exhausted.
type MappingReader interface {
	Next() (b byte, cp CodePoint, err error)
}

// LoadCodePage builds a code page from a streaming, format-agnostic source.
//
// Bytes 0x00..0x1F start out as the identity, but explicit mappings override
// them: real tables such as CP037 remap several C0 bytes, e.g. 0x05 to
// HORIZONTAL TABULATION. Other bytes never mentioned by reader stay unmapped. If a byte appears more than once, the last mapping
// wins. Targets outside the Basic Multilingual Plane are rejected.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package mapfile to parse concrete formats and feed this API.
func LoadCodePage(name string, reader MappingReader) (*Codec, error) {
	if name == "" {
		return nil, fmt.Errorf("code page needs a name")
	}
	toUni := new([256]CodePoint)
	for b := CodePoint(0); b < 0x20; b++ {
		toUni[b] = b
	}
	count := 0
	for {
		b, cp, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if cp > maxBMP {
			return nil, fmt.Errorf("code page %s: byte %#02x maps to U+%04X outside the BMP", name, b, cp)
		}
		toUni[b] = cp
		count++
	}
	c := &Codec{name: name, toUni: toUni}
	c.fromUni = *invert(toUni)
	tracer().Infof("loaded code page %s: %d mappings, %d reverse pages", name, count, c.fromUni.NumPages())
	return c, nil
}
