package pagemap

// Map maps BMP code units (0..65535) to single bytes of a legacy code page.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages holds one 256-entry page per populated high byte.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 256 * 2 = 512 bytes
//   - Each populated page: 256 bytes
//
// Pages handed to Attach are shared, not copied. Set must not be called on
// a map whose pages are static tables.
type Map struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []*[256]byte
}

// Lookup returns the byte for a BMP code unit. ok is false if the code
// unit's block has no page. An entry of 0 inside a present page is returned
// with ok == true.
func (m *Map) Lookup(bmp uint16) (b byte, ok bool) {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0, false
	}
	return m.Pages[pi-1][bmp&0xFF], true
}

// Byte returns the byte for a BMP code unit.
// Returns 0 if absent.
func (m *Map) Byte(bmp uint16) byte {
	b, _ := m.Lookup(bmp)
	return b
}

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.Pages) }

// Blocks returns the high bytes of all populated pages in ascending order.
func (m *Map) Blocks() []uint8 {
	blocks := make([]uint8, 0, len(m.Pages))
	for hi, pi := range m.Top {
		if pi != 0 {
			blocks = append(blocks, uint8(hi))
		}
	}
	return blocks
}

// Attach installs page as the page for high byte hi, replacing any
// existing page for that block. Returns the 1-based page index.
func (m *Map) Attach(hi uint8, page *[256]byte) uint16 {
	if pi := m.Top[hi]; pi != 0 {
		m.Pages[pi-1] = page
		return pi
	}
	m.Pages = append(m.Pages, page)
	pi := uint16(len(m.Pages))
	m.Top[hi] = pi
	return pi
}

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *Map) EnsurePage(hi uint8) uint16 {
	if pi := m.Top[hi]; pi != 0 {
		return pi
	}
	return m.Attach(hi, new([256]byte))
}

// Set sets mapping bmp -> b (b may be 0 to clear).
func (m *Map) Set(bmp uint16, b byte) {
	hi := uint8(bmp >> 8)
	pi := m.Top[hi]
	if pi == 0 {
		if b == 0 {
			return
		}
		pi = m.EnsurePage(hi)
	}
	m.Pages[pi-1][bmp&0xFF] = b
}
