package talkgroup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteContacts(t *testing.T) {
	list := []Talkgroup{
		{ID: 91, Name: "Worldwide"},
		{ID: 3100, Name: "USA Bridge"},
		{ID: 9990, Name: "Parrot"},
		{ID: 31656, Name: "América Link Extended Name"},
	}

	var buf bytes.Buffer
	private := PrivateCallSet(DefaultPrivateCallIDs)
	require.NoError(t, WriteContacts(&buf, list, 16, private))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "No.,Name,ID,Type", lines[0])
	assert.Equal(t, "1,Worldwide,91,Group Call", lines[1])
	assert.Equal(t, "3,Parrot,9990,Private Call", lines[3])
	// Accents transliterated, name truncated to the field width.
	assert.Equal(t, "4,America Link Ext,31656,Group Call", lines[4])
	assert.True(t, strings.HasSuffix(out, "\r\n"), "expected CRLF line endings")
}

func TestWriteContactsRowCountMatchesInput(t *testing.T) {
	list := []Talkgroup{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 3, Name: "Three"}}

	var buf bytes.Buffer
	require.NoError(t, WriteContacts(&buf, list, 16, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	assert.Len(t, lines, len(list)+1)
}

func TestLoadContacts(t *testing.T) {
	in := strings.Join([]string{
		"No.,Name,ID,Type",
		"1,Worldwide,91,Group Call",
		"2,Deutschland?,262,Group Call",
		"3,TAC 310,310,Group Call",
		"4,USA Bridge,3100,Group Call",
	}, "\r\n") + "\r\n"

	list, err := LoadContacts(strings.NewReader(in), 2)
	require.NoError(t, err)

	// The name with a disallowed character is skipped, the rest sorted by
	// ID and limited to the requested count.
	require.Equal(t, []Talkgroup{
		{ID: 91, Name: "Worldwide"},
		{ID: 310, Name: "TAC 310"},
	}, list)
}

func TestLoadContactsNoLimit(t *testing.T) {
	in := "No.,Name,ID,Type\n1,Worldwide,91,Group Call\n2,TAC 310,310,Group Call\n"

	list, err := LoadContacts(strings.NewReader(in), 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
