package ebcdic

import "github.com/npillmayer/ebcdic/pagemap"

// invert derives the reverse page map of a forward table. Bytes without a
// mapping are skipped, byte 0x00 is kept as the inverse of U+0000. If
// several bytes decode to the same code point, the lowest byte wins.
func invert(toUni *[256]CodePoint) *pagemap.Map {
	m := &pagemap.Map{}
	m.EnsurePage(0x00) // ASCII and C0 controls always have a page
	for b := 255; b >= 0; b-- {
		cp := toUni[b]
		if (cp == 0 && b != 0) || cp > maxBMP {
			continue
		}
		m.Set(uint16(cp), byte(b))
	}
	return m
}

// samePages reports whether two page maps answer every BMP lookup alike,
// including which blocks are present.
func samePages(a, b *pagemap.Map) bool {
	for hi := 0; hi < 256; hi++ {
		pa, pb := a.Top[hi], b.Top[hi]
		if (pa == 0) != (pb == 0) {
			return false
		}
		if pa != 0 && *a.Pages[pa-1] != *b.Pages[pb-1] {
			return false
		}
	}
	return true
}
