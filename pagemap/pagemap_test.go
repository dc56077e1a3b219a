package pagemap

import (
	"reflect"
	"testing"
)

func TestSetAndLookup(t *testing.T) {
	var m Map
	m.Set(0x0041, 0xC1)
	m.Set(0x30A2, 0x81)
	if got := m.Byte(0x0041); got != 0xC1 {
		t.Fatalf("expected 0xC1 for U+0041, got %#x", got)
	}
	if got := m.Byte(0x30A2); got != 0x81 {
		t.Fatalf("expected 0x81 for U+30A2, got %#x", got)
	}
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
	if _, ok := m.Lookup(0x2603); ok {
		t.Fatalf("block 0x26 should be absent")
	}
	b, ok := m.Lookup(0x30A3)
	if !ok || b != 0 {
		t.Fatalf("expected unfilled entry in present page, got %#x, %v", b, ok)
	}
}

func TestSetZeroDoesNotAllocate(t *testing.T) {
	var m Map
	m.Set(0x2000, 0)
	if m.NumPages() != 0 {
		t.Fatalf("clearing an absent entry must not allocate a page")
	}
}

func TestAttachSharesPage(t *testing.T) {
	page := [256]byte{0xA7: 0x5B}
	var m Map
	if pi := m.Attach(0x20, &page); pi != 1 {
		t.Fatalf("expected page index 1, got %d", pi)
	}
	if got := m.Byte(0x20A7); got != 0x5B {
		t.Fatalf("expected 0x5B for U+20A7, got %#x", got)
	}
	replacement := [256]byte{0xA7: 0x7B}
	if pi := m.Attach(0x20, &replacement); pi != 1 {
		t.Fatalf("re-attaching must reuse the page slot, got index %d", pi)
	}
	if got := m.Byte(0x20A7); got != 0x7B {
		t.Fatalf("expected replaced page to answer 0x7B, got %#x", got)
	}
	if m.NumPages() != 1 {
		t.Fatalf("expected 1 page, got %d", m.NumPages())
	}
}

func TestBlocks(t *testing.T) {
	var m Map
	m.EnsurePage(0x30)
	m.EnsurePage(0x00)
	m.EnsurePage(0x30)
	if got, want := m.Blocks(), []uint8{0x00, 0x30}; !reflect.DeepEqual(got, want) {
		t.Fatalf("blocks mismatch: got %v, want %v", got, want)
	}
}

func TestAllBlocks(t *testing.T) {
	var m Map
	for hi := 0; hi < 256; hi++ {
		m.Set(uint16(hi<<8|hi), byte(hi)|1)
	}
	if m.NumPages() != 256 {
		t.Fatalf("expected 256 pages, got %d", m.NumPages())
	}
	for hi := 0; hi < 256; hi++ {
		if got := m.Byte(uint16(hi<<8 | hi)); got != byte(hi)|1 {
			t.Fatalf("block %#x: expected %#x, got %#x", hi, byte(hi)|1, got)
		}
	}
}
