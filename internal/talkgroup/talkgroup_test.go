package talkgroup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrandmeisterCleansAndSorts(t *testing.T) {
	in := strings.Join([]string{
		"Country,Talkgroup,Name",
		"Worldwide,91.0,Worldwide",
		"USA,3100,USA Bridge",
		"USA,3100,USA Bridge Duplicate",
		"Nowhere,,Missing ID",
		"Nowhere,abc,Bad ID",
		"Nowhere,42,",
		"Germany,262, Deutschland ",
	}, "\n")

	list, sum, err := ParseBrandmeister(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []Talkgroup{
		{ID: 91, Name: "Worldwide"},
		{ID: 262, Name: "Deutschland"},
		{ID: 3100, Name: "USA Bridge"},
	}, list)

	assert.Equal(t, 7, sum.Read)
	assert.Equal(t, 3, sum.Dropped)
	assert.Equal(t, 1, sum.Duplicates)
	assert.Equal(t, 3, sum.Kept)
}

func TestParseBrandmeisterIDColumn(t *testing.T) {
	in := "ID,Name\n91,Worldwide\n93,North America\n"

	list, sum, err := ParseBrandmeister(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 91, list[0].ID)
	assert.Equal(t, 2, sum.Kept)
}

func TestParseBrandmeisterDedupKeepsFirst(t *testing.T) {
	in := "Talkgroup,Name\n310,TAC 310 First\n310,TAC 310 Second\n"

	list, _, err := ParseBrandmeister(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TAC 310 First", list[0].Name)
}

func TestParseBrandmeisterBadCSV(t *testing.T) {
	_, _, err := ParseBrandmeister(strings.NewReader(`Talkgroup,Name` + "\n" + `91,"unterminated`))
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	private := PrivateCallSet(DefaultPrivateCallIDs)

	assert.Equal(t, PrivateCall, Classify(9990, private))
	assert.Equal(t, PrivateCall, Classify(9998, private))
	assert.Equal(t, GroupCall, Classify(91, private))
	assert.Equal(t, GroupCall, Classify(9990, nil))
}
