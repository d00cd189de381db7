package textenc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, name, input string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, name)
	require.NoError(t, err)
	_, err = w.Write([]byte(input))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestASCIIDropsNonASCII(t *testing.T) {
	got := encode(t, "ascii", "Québec—DMR")
	assert.Equal(t, "QubecDMR", string(got))
}

func TestASCIIPassthrough(t *testing.T) {
	got := encode(t, "ascii", "No.,Channel Name\r\n")
	assert.Equal(t, "No.,Channel Name\r\n", string(got))
}

func TestUTF8(t *testing.T) {
	got := encode(t, "utf-8", "Québec")
	assert.Equal(t, "Québec", string(got))
}

func TestUTF8SigWritesBOM(t *testing.T) {
	got := encode(t, "utf-8-sig", "abc")
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, 'a', 'b', 'c'}, got)
}

func TestWindows1252(t *testing.T) {
	got := encode(t, "windows-1252", "Québec")
	assert.Equal(t, []byte{'Q', 'u', 0xE9, 'b', 'e', 'c'}, got)
}

func TestWindows1252SubstitutesUnmappable(t *testing.T) {
	got := encode(t, "windows-1252", "a世b")
	assert.Equal(t, []byte{'a', 0x1A, 'b'}, got)
}

func TestLatin1Alias(t *testing.T) {
	got := encode(t, "iso-8859-1", "Québec")
	assert.Equal(t, []byte{'Q', 'u', 0xE9, 'b', 'e', 'c'}, got)
}

func TestEmptyNameDefaultsToASCII(t *testing.T) {
	got := encode(t, "", "plain")
	assert.Equal(t, "plain", string(got))
}

func TestUnknownEncoding(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWriter(&buf, "ebcdic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ebcdic")
}
