/*
Package ebcdic converts single characters between legacy EBCDIC code pages and
Unicode code points.

Supported code pages are

	IBM037     EBCDIC US/Canada Latin-1
	IBM290     EBCDIC Japanese Katakana
	EBCDIC-UK
	EBCDIC-US
	EBCDIC-ES

Each code page has a forward table (byte to code point, 256 entries) and a
reverse page map (code point to byte). The reverse direction is split into
256-entry pages, one per 0x100-aligned Unicode block the code page reaches:
IBM290 needs page 0x30 for Katakana, EBCDIC-ES needs page 0x20 for the peseta
sign. Every lookup is two array reads.

A value of 0 in either direction means "no mapping", except for byte 0x00 and
U+0000, which map onto each other. The ambiguity is inherited from the
reference code page data and kept as is.

Example usage:

	cp := ebcdic.IBM037.ToUnicode(0xC1)         // 'A'
	b, err := ebcdic.IBM290.FromUnicode(0x30A2) // 0x81, Katakana 'ア'

Code pages may also be loaded at run time (see LoadCodePage and package
mapfile) and looked up by name (see Lookup). Package charmap adapts code pages
to golang.org/x/text/encoding for whole-string conversion.

Further Reading

	https://www.ibm.com/docs/en/zos/2.3.0?topic=sets-coded-character-sorted-by-ccsid
	https://www.compart.com/en/unicode/search?q=EBCDIC#char-sets

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package ebcdic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ebcdic'
func tracer() tracing.Trace {
	return tracing.Select("ebcdic")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
