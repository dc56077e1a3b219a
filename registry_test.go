package ebcdic

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "IBM037", want: "ibm037"},
		{name: "EBCDIC-JP-kana", want: "ebcdicjpkana"},
		{name: "ebcdic_cp_us", want: "ebcdiccpus"},
		{name: " EBCDIC.UK ", want: "ebcdicuk"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.name); got != tt.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLookupBuiltins(t *testing.T) {
	tests := []struct {
		name string
		want Encoding
	}{
		{name: "IBM037", want: IBM037},
		{name: "cp037", want: IBM037},
		{name: "EBCDIC-CP-US", want: IBM037},
		{name: "ibm-290", want: IBM290},
		{name: "EBCDIC-JP-kana", want: IBM290},
		{name: "EBCDIC-UK", want: EBCDICUK},
		{name: "ebcdic_us", want: EBCDICUS},
		{name: "csEBCDICES", want: EBCDICES},
	}
	for _, tt := range tests {
		c, ok := Lookup(tt.name)
		if !ok {
			t.Fatalf("code page %q not found", tt.name)
		}
		if c != tt.want.Codec() {
			t.Fatalf("%q resolved to %s, want %s", tt.name, c, tt.want)
		}
	}
	if _, ok := Lookup("IBM1047"); ok {
		t.Fatalf("IBM1047 is not a built-in code page")
	}
	if _, ok := Lookup("IBM"); ok {
		t.Fatalf("a prefix must not resolve to a code page")
	}
}

func TestNamesByPrefix(t *testing.T) {
	got := Names("ebcdic-cp")
	want := []string{"ebcdiccpca", "ebcdiccpnl", "ebcdiccpus", "ebcdiccpwt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("names mismatch: got %v, want %v", got, want)
	}
	if names := Names("nosuchprefix"); len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}
	all := Names("")
	if len(all) < 5 {
		t.Fatalf("expected at least the built-in names, got %v", all)
	}
}

func TestRegisterConflict(t *testing.T) {
	c := &Codec{name: "IBM037-test", toUni: &ibm037ToUnicode}
	err := Register(c, "cp037")
	if err == nil {
		t.Fatalf("expected conflict for alias cp037")
	}
	if !strings.Contains(err.Error(), `"cp037" already bound to IBM037`) {
		t.Fatalf("conflict error should name the bound code page, got %q", err)
	}
	if _, ok := Lookup("IBM037-test"); ok {
		t.Fatalf("failed registration must not bind any name")
	}
	if err := Register(IBM037.Codec(), "cp037"); err != nil {
		t.Fatalf("re-registering the same codec should succeed: %v", err)
	}
	if err := Register(nil); err == nil {
		t.Fatalf("expected error for nil codec")
	}
}
