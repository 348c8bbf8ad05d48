package fourcc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		want     uint32
		wantKind ErrorKind
	}{
		{input: "0", want: 0},
		{input: "65", want: 65},
		{input: "0065", want: 65},
		{input: "942948929", want: 942948929},
		{input: "4294967295", want: 4294967295},

		{input: "4294967296", wantKind: OutOfRange},
		{input: "18446744073709551616", wantKind: OutOfRange},
		{input: "99999999999999999999999999", wantKind: OutOfRange},
		{input: "-1", wantKind: OutOfRange},
		{input: "-0", wantKind: InvalidInput},
		{input: "-000", wantKind: InvalidInput},
		{input: "-0001", wantKind: OutOfRange},

		{input: "", wantKind: InvalidInput},
		{input: "abc", wantKind: InvalidInput},
		{input: "+5", wantKind: InvalidInput},
		{input: " 5", wantKind: InvalidInput},
		{input: "5\n", wantKind: InvalidInput},
		{input: "0x41", wantKind: InvalidInput},
		{input: "1_000", wantKind: InvalidInput},
		{input: "1.5", wantKind: InvalidInput},
		{input: "-", wantKind: InvalidInput},
		{input: "--1", wantKind: InvalidInput},
		{input: "-abc", wantKind: InvalidInput},
		{input: "١٢", wantKind: InvalidInput},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if tt.wantKind == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.Zero(t, got)
		})
	}
}

func TestDecodeString(t *testing.T) {
	c, err := DecodeString("65")
	require.NoError(t, err)
	assert.Equal(t, "A\x00\x00\x00", c.String())

	_, err = DecodeString("abc")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DecodeString("4294967296")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	_, err := ParseValue("4294967296")
	wrapped := fmt.Errorf("decode argument: %w", err)

	assert.True(t, errors.Is(wrapped, ErrOutOfRange))
	assert.False(t, errors.Is(wrapped, ErrMissingArgument))
	assert.Equal(t, OutOfRange, KindOf(wrapped))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("other")))
}

func TestErrorMessages(t *testing.T) {
	_, err := ParseValue("abc")
	assert.EqualError(t, err, `invalid input "abc": expected a base-10 non-negative integer`)

	_, err = ParseValue("4294967296")
	assert.EqualError(t, err, "value 4294967296 out of range: must be between 0 and 4294967295")

	assert.EqualError(t, ErrMissingArgument, "missing argument: expected one decimal integer")

	_, err = ParseCode("toolong")
	assert.EqualError(t, err, `invalid input "toolong": a FourCC is exactly 4 bytes`)
}

func TestSignedZeroMessage(t *testing.T) {
	_, err := ParseValue("-0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotContains(t, err.Error(), "out of range")
	assert.EqualError(t, err, `invalid input "-0": signed zero is not a valid value`)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "missing argument", MissingArgument.String())
	assert.Equal(t, "invalid input", InvalidInput.String())
	assert.Equal(t, "out of range", OutOfRange.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode("AB24")
	require.NoError(t, err)
	assert.Equal(t, Code{'A', 'B', '2', '4'}, c)

	c, err = ParseCode("A\x00\x00\x00")
	require.NoError(t, err)
	assert.Equal(t, uint32(65), Encode(c))

	for _, s := range []string{"", "ABC", "ABCDE"} {
		_, err := ParseCode(s)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", s)
	}
}

func TestEncodeString(t *testing.T) {
	v, err := EncodeString("A9:8")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x383A3941), v)

	v, err = EncodeString("\xff\xff\xff\xff")
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), v)

	_, err = EncodeString("é")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
