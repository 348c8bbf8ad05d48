package fourcc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxValue is the largest integer that fits in a FourCC.
const MaxValue uint32 = math.MaxUint32

// ParseValue parses s as a base-10 unsigned 32-bit integer.
//
// Only ASCII digits are accepted: no sign, whitespace, underscores or base
// prefixes. A '-' followed by a nonzero digit string is a negative integer and
// is reported as OutOfRange; "-0" (and "-000") is not below zero, so like any
// other signed text it is InvalidInput.
func ParseValue(s string) (uint32, error) {
	if len(s) > 0 && s[0] == '-' && isDigits(s[1:]) {
		if strings.Trim(s[1:], "0") == "" {
			return 0, &Error{Kind: InvalidInput, Input: s, Reason: "signed zero is not a valid value"}
		}
		return 0, &Error{Kind: OutOfRange, Input: s}
	}
	if !isDigits(s) {
		return 0, &Error{Kind: InvalidInput, Input: s}
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{Kind: OutOfRange, Input: s}
		}
		return 0, &Error{Kind: InvalidInput, Input: s}
	}
	return uint32(v), nil
}

// DecodeString parses s and decodes the result.
func DecodeString(s string) (Code, error) {
	v, err := ParseValue(s)
	if err != nil {
		return Code{}, err
	}
	return Decode(v), nil
}

// ParseCode converts a 4-byte string into a Code. Bytes are taken as-is.
func ParseCode(s string) (Code, error) {
	var c Code
	if len(s) != Size {
		return c, &Error{Kind: InvalidInput, Input: s, Reason: "a FourCC is exactly 4 bytes"}
	}
	copy(c[:], s)
	return c, nil
}

// EncodeString converts a 4-byte string into its little-endian integer.
func EncodeString(s string) (uint32, error) {
	c, err := ParseCode(s)
	if err != nil {
		return 0, err
	}
	return Encode(c), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
