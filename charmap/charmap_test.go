package charmap

import (
	"strings"
	"testing"

	"github.com/npillmayer/ebcdic"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		enc  encoding.Encoding
		src  []byte
		want string
	}{
		{enc: IBM037, src: []byte{0xC8, 0x85, 0x93, 0x93, 0x96, 0x40, 0xE6, 0x96, 0x99, 0x93, 0x84}, want: "Hello World"},
		{enc: IBM037, src: []byte{0x41, 0x4A}, want: "\u00a0¢"},
		{enc: IBM290, src: []byte{0x81, 0x82, 0x41}, want: "アイ。"},
		{enc: EBCDICUK, src: []byte{0x5B, 0xF1, 0xF0}, want: "£10"},
		{enc: EBCDICES, src: []byte{0xF5, 0x5B}, want: "5₧"},
		{enc: EBCDICUS, src: []byte{0x00, 0x41}, want: "\x00\ufffd"},
	}
	for _, tt := range tests {
		got, err := tt.enc.NewDecoder().Bytes(tt.src)
		if err != nil {
			t.Fatalf("%v: decode failed: %v", tt.enc, err)
		}
		if string(got) != tt.want {
			t.Fatalf("%v: decoded %q, want %q", tt.enc, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	got, err := IBM037.NewEncoder().String("Hello World")
	if err != nil {
		t.Fatal(err)
	}
	if want := "\xc8\x85\x93\x93\x96\x40\xe6\x96\x99\x93\x84"; got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
	got, err = IBM290.NewEncoder().String("アイ。")
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x81\x82\x41"; got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if _, err := EBCDICUS.NewEncoder().String("café"); err == nil {
		t.Fatalf("expected repertoire error for é")
	}
	got, err := encoding.ReplaceUnsupported(EBCDICUS.NewEncoder()).String("café☃")
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x83\x81\x86\x6f\x6f"; got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestRoundTripThroughReader(t *testing.T) {
	text := strings.Repeat("EBCDIC 037 round trip, ÄÖÜ äöü ß. ", 200)
	encoded, err := IBM037.NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	r := transform.NewReader(strings.NewReader(encoded), IBM037.NewDecoder())
	var sb strings.Builder
	buf := make([]byte, 7) // force short destination buffers
	for {
		n, err := r.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	if sb.String() != text {
		t.Fatalf("round trip through reader lost data")
	}
}

func TestCustomCodePage(t *testing.T) {
	m := New(ebcdic.EBCDICES.Codec())
	if m.String() != "EBCDIC-ES" {
		t.Fatalf("unexpected name %q", m.String())
	}
	if r := m.DecodeByte(0x5B); r != '₧' {
		t.Fatalf("expected peseta sign, got %q", r)
	}
	if b, ok := m.EncodeRune('₧'); !ok || b != 0x5B {
		t.Fatalf("expected 0x5b, got %#02x, %v", b, ok)
	}
	if b, ok := m.EncodeRune('€'); ok || b != replacement {
		t.Fatalf("expected replacement for €, got %#02x, %v", b, ok)
	}
}

func TestNilCodec(t *testing.T) {
	m := New(nil)
	got, err := m.NewDecoder().String("\x00\xc1")
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x00\ufffd"; got != want {
		t.Fatalf("decoded %q, want %q", got, want)
	}
	if _, err := m.NewEncoder().String("A"); err == nil {
		t.Fatalf("expected repertoire error from an empty code page")
	}
	if b, ok := m.EncodeRune('A'); ok || b != replacement {
		t.Fatalf("expected replacement for A, got %#02x, %v", b, ok)
	}
}
