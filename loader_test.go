package ebcdic

import (
	"errors"
	"io"
	"testing"
)

type mapping struct {
	b  byte
	cp CodePoint
}

type sliceMappingReader struct {
	entries []mapping
	index   int
	err     error
}

func (r *sliceMappingReader) Next() (byte, CodePoint, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return 0, 0, r.err
		}
		return 0, 0, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.b, entry.cp, nil
}

func TestLoadCodePage(t *testing.T) {
	c, err := LoadCodePage("test-kana", &sliceMappingReader{
		entries: []mapping{
			{0x40, ' '},
			{0xC1, 'A'},
			{0x81, 0x30A2},
			{0x82, 0x30A4},
			{0x83, 0x30A2}, // duplicate target, lowest byte wins
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "test-kana" {
		t.Fatalf("unexpected name %q", c.Name())
	}
	if cp := c.ToUnicode(0x82); cp != 0x30A4 {
		t.Fatalf("0x82 should decode to U+30A4, got U+%04X", cp)
	}
	if b, err := c.FromUnicode(0x30A2); err != nil || b != 0x81 {
		t.Fatalf("U+30A2 should encode to 0x81, got %#02x, %v", b, err)
	}
	if cp := c.ToUnicode(0x83); cp != 0x30A2 {
		t.Fatalf("0x83 should still decode to U+30A2, got U+%04X", cp)
	}
	if b := c.FromASCII('A'); b != 0xC1 {
		t.Fatalf("FromASCII('A') = %#02x, want 0xc1", b)
	}
	for b := 0; b < 0x20; b++ {
		if cp := c.ToUnicode(byte(b)); cp != CodePoint(b) {
			t.Fatalf("control byte %#02x should be identity, got %#x", b, cp)
		}
	}
	if _, err := c.FromUnicode('B'); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("B was never mapped, got %v", err)
	}
	if got := c.Blocks(); len(got) != 2 || got[0] != 0x00 || got[1] != 0x30 {
		t.Fatalf("unexpected blocks %v", got)
	}
}

func TestLoadCodePageLastMappingWins(t *testing.T) {
	c, err := LoadCodePage("override", &sliceMappingReader{
		entries: []mapping{{0xC1, 'A'}, {0xC1, 'B'}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if cp := c.ToUnicode(0xC1); cp != 'B' {
		t.Fatalf("expected later mapping to win, got U+%04X", cp)
	}
	if _, err := c.FromUnicode('A'); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("A was overridden, got %v", err)
	}
}

func TestLoadCodePageRemapsControls(t *testing.T) {
	c, err := LoadCodePage("remapped-c0", &sliceMappingReader{
		entries: []mapping{
			{0x05, 0x0009},
			{0x07, 0x007F},
			{0x25, 0x000A},
			{0x0A, 0x008E},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if cp := c.ToUnicode(0x05); cp != 0x09 {
		t.Fatalf("0x05 should decode to U+0009, got U+%04X", cp)
	}
	if cp := c.ToUnicode(0x09); cp != 0x09 {
		t.Fatalf("unmentioned control 0x09 should keep the identity, got U+%04X", cp)
	}
	if b, err := c.FromUnicode(0x09); err != nil || b != 0x05 {
		t.Fatalf("U+0009 should encode to the lower byte 0x05, got %#02x, %v", b, err)
	}
	if b, err := c.FromUnicode(0x0A); err != nil || b != 0x25 {
		t.Fatalf("U+000A should encode to 0x25, got %#02x, %v", b, err)
	}
	if _, err := c.FromUnicode(0x07); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("U+0007 lost its byte, got %v", err)
	}
	if a, err := c.ToASCII(0x07); err != nil || a != 0x7F {
		t.Fatalf("ToASCII(0x07) = %#02x, %v, want 0x7f", a, err)
	}
}

func TestLoadCodePageErrors(t *testing.T) {
	readErr := errors.New("broken stream")
	tests := []struct {
		name   string
		reader *sliceMappingReader
	}{
		{name: "outside-bmp", reader: &sliceMappingReader{entries: []mapping{{0xC1, 0x1F600}}}},
		{name: "stream", reader: &sliceMappingReader{err: readErr}},
	}
	for _, tt := range tests {
		if _, err := LoadCodePage(tt.name, tt.reader); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
	if _, err := LoadCodePage("stream", &sliceMappingReader{err: readErr}); !errors.Is(err, readErr) {
		t.Fatalf("reader error should be passed through, got %v", err)
	}
	if _, err := LoadCodePage("", &sliceMappingReader{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
