package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fourcc/cmd/fourcc/ui"
	"fourcc/internal/fourcc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommand(t *testing.T) {
	stdout, stderr, code := runCLI(t, "encode", "AB24")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "875708993\n", stdout)

	stdout, _, code = runCLI(t, "encode", "fmt ")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "544501094\n", stdout)

	stdout, _, code = runCLI(t, "encode", "A\x00\x00\x00")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "65\n", stdout)
}

func TestEncodeCommandErrors(t *testing.T) {
	_, stderr, code := runCLI(t, "encode")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "missing argument: expected one 4-character code")

	_, stderr, code = runCLI(t, "encode", "ABCDE")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "exactly 4 bytes")
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "65", "875708993", "943339841", "4294967295"} {
		raw, _, code := runCLI(t, v)
		require.Equal(t, exitOK, code)

		back, _, code := runCLI(t, "encode", strings.TrimSuffix(raw, "\n"))
		require.Equal(t, exitOK, code)
		assert.Equal(t, v+"\n", back)
	}
}

func TestDescribeCommand(t *testing.T) {
	stdout, stderr, code := runCLI(t, "describe", "875708993")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "Bytes (little-endian)")
	assert.Contains(t, stdout, "0x41")
	assert.Contains(t, stdout, "0x34")
	assert.Contains(t, stdout, "Value: 875708993 (0x34324241)")
	assert.Contains(t, stdout, `Code:  "AB24"`)
	assert.Contains(t, stdout, "Known: ABGR8888 (drm)")
	assert.NotContains(t, stdout, "non-printable")
}

func TestDescribeCommandUnknownNonPrintable(t *testing.T) {
	stdout, _, code := runCLI(t, "describe", "65")
	require.Equal(t, exitOK, code)

	assert.Contains(t, stdout, `\x00`)
	assert.Contains(t, stdout, "Known: -")
	assert.Contains(t, stdout, "non-printable")

	_, _, code = runCLI(t, "describe", "4294967296")
	assert.Equal(t, exitOutOfRange, code)
}

func TestDescribeUsesConfiguredCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fourcc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codes:\n  \"A9:8\": test pattern\n"), 0644))

	stdout, stderr, code := runCLI(t, "--config", path, "describe", "943339841")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Known: test pattern (user)")
}

func TestKnownCommand(t *testing.T) {
	stdout, stderr, code := runCLI(t, "known")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Known codes")
	assert.Contains(t, stdout, "ABGR8888")
	assert.Contains(t, stdout, "875708993")
	assert.Contains(t, stdout, "RIFF")

	stdout, _, code = runCLI(t, "known", "--family", "riff")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "WAVE")
	assert.NotContains(t, stdout, "ABGR8888")

	_, stderr, code = runCLI(t, "known", "--family", "nope")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "no known codes")

	_, _, code = runCLI(t, "known", "extra")
	assert.Equal(t, exitUsage, code)
}

func TestDescribeRender(t *testing.T) {
	r, err := fourcc.NewRegistry(nil)
	require.NoError(t, err)

	out := describe(fourcc.Decode(1179011410), r, ui.DefaultStyles())
	assert.Contains(t, out, "Known: RIFF container header (riff)")
	assert.Contains(t, out, "Value: 1179011410 (0x46464952)")
}
