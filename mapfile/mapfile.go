package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/ebcdic"
)

// Reader streams byte to code point mappings from unicode.org style mapping
// tables.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadCodePage parses a mapping table and returns a ready-to-use code page.
//
// Mapping tables have one mapping per line, as two hexadecimal columns
// followed by an optional comment:
//
//	#
//	#    Name:     cp037_IBMUSCanada to Unicode
//	#
//	0x40	0x0020	#SPACE
//	0x41	0x00A0	#NO-BREAK SPACE
//	 ...
//	0xC1	0x0041	#LATIN CAPITAL LETTER A
//	0xFE	 	#UNDEFINED
//
// Rows without a target column are skipped and leave the byte unmapped.
func LoadCodePage(name string, reader io.Reader) (*ebcdic.Codec, error) {
	return ebcdic.LoadCodePage(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next mapping as (byte, code point).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (byte, ebcdic.CodePoint, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		b, err := parseHex(fields[0], 8)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: invalid byte %q: %w", r.line, fields[0], err)
		}
		cp, err := parseHex(fields[1], 32)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: invalid code point %q: %w", r.line, fields[1], err)
		}
		return byte(b), ebcdic.CodePoint(cp), nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, io.EOF
}

// parseHex parses a 0x-prefixed hexadecimal number. Mapping tables never
// use other bases.
func parseHex(s string, bitSize int) (uint64, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		if digits, ok = strings.CutPrefix(s, "0X"); !ok {
			return 0, fmt.Errorf("missing 0x prefix")
		}
	}
	return strconv.ParseUint(digits, 16, bitSize)
}

// Write emits codec as a mapping table. Unmapped bytes are left out; byte
// 0x00 is always written.
func Write(w io.Writer, codec *ebcdic.Codec) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#\n#    Name:     %s to Unicode\n#\n", codec.Name())
	for b := 0; b < 256; b++ {
		cp := codec.ToUnicode(byte(b))
		if cp == 0 && b != 0 {
			continue
		}
		fmt.Fprintf(bw, "0x%02X\t0x%04X\n", b, cp)
	}
	return bw.Flush()
}
