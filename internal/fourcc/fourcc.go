// Package fourcc converts between 32-bit integers and four-character codes.
//
// A FourCC is stored on disk as a little-endian uint32: the least significant
// byte is the first character. Every byte value 0-255 is a valid character,
// including NUL and other control bytes, so a Code is kept as raw bytes and is
// never re-encoded as UTF-8.
package fourcc

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the length of every FourCC in bytes.
const Size = 4

// Code is a decoded four-character code. Code[0] holds the least significant
// byte of the integer it came from.
type Code [Size]byte

// Decode splits v into its four bytes, least significant first.
func Decode(v uint32) Code {
	return Code{
		byte(v),
		byte(v >> 8),
		byte(v >> 16),
		byte(v >> 24),
	}
}

// Encode is the inverse of Decode.
func Encode(c Code) uint32 {
	return uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16 | uint32(c[3])<<24
}

// Uint32 returns the integer value of the code.
func (c Code) Uint32() uint32 {
	return Encode(c)
}

// String returns the four raw bytes. Embedded NULs are preserved.
func (c Code) String() string {
	return string(c[:])
}

// Printable reports whether every byte is printable ASCII (0x20-0x7E).
func (c Code) Printable() bool {
	for _, b := range c {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// OutputFormat selects how a Code is rendered for display.
type OutputFormat string

const (
	FormatRaw    OutputFormat = "raw"    // the four bytes as-is
	FormatQuoted OutputFormat = "quoted" // Go string literal, non-printables escaped
	FormatHex    OutputFormat = "hex"    // 0x41 0x39 0x3a 0x38
)

// ValidFormats lists all supported output formats.
var ValidFormats = []OutputFormat{FormatRaw, FormatQuoted, FormatHex}

// ParseFormat converts a format name into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	for _, f := range ValidFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (valid: %v)", s, ValidFormats)
}

// Format renders the code in the given format. Unknown formats fall back to raw.
func (c Code) Format(f OutputFormat) string {
	switch f {
	case FormatQuoted:
		return strconv.Quote(c.String())
	case FormatHex:
		parts := make([]string, Size)
		for i, b := range c {
			parts[i] = fmt.Sprintf("0x%02x", b)
		}
		return strings.Join(parts, " ")
	default:
		return c.String()
	}
}

// ByteLabel renders a single byte for tables: the character itself when
// printable, an escape sequence otherwise.
func ByteLabel(b byte) string {
	if b >= 0x20 && b <= 0x7e {
		return string(rune(b))
	}
	q := strconv.Quote(string([]byte{b}))
	return q[1 : len(q)-1]
}
