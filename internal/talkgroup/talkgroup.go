// Package talkgroup imports and normalizes BrandMeister talkgroup exports
// into the contact list format used by the DM-32 CPS.
package talkgroup

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// Talkgroup is a single DMR talkgroup: a numeric network ID and a
// human-readable name.
type Talkgroup struct {
	ID   int
	Name string
}

// CallType is the DM-32 contact call classification.
type CallType string

const (
	GroupCall   CallType = "Group Call"
	PrivateCall CallType = "Private Call"
)

// DefaultPrivateCallIDs lists talkgroup IDs that should be imported as
// private calls rather than group calls. Parrot/Echo test servers answer
// individually, so the radio must place a private call to reach them.
var DefaultPrivateCallIDs = []int{9990, 9998}

// Classify returns the call type for a talkgroup ID given the set of
// private-call IDs.
func Classify(id int, private map[int]bool) CallType {
	if private[id] {
		return PrivateCall
	}
	return GroupCall
}

// PrivateCallSet converts a list of private-call IDs into a lookup set.
func PrivateCallSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Summary reports what happened to the input rows during import.
type Summary struct {
	Read       int // rows present in the input file
	Dropped    int // rows without a usable ID or name
	Duplicates int // rows removed because their ID was already seen
	Kept       int // rows surviving into the output
}

// brandmeisterRow matches the columns of a BrandMeister talkgroup export.
// Some exports label the numeric column "Talkgroup", others "ID"; both are
// mapped and coalesced. Extra columns (country, hyperlinks) are ignored.
type brandmeisterRow struct {
	Country   string `csv:"Country"`
	Talkgroup string `csv:"Talkgroup"`
	ID        string `csv:"ID"`
	Name      string `csv:"Name"`
}

// ParseBrandmeister reads a BrandMeister talkgroup CSV and returns the
// cleaned talkgroup list: rows without a valid ID or name dropped,
// duplicate IDs removed keeping the first occurrence, sorted ascending
// by ID. Names are whitespace-trimmed but not yet sanitized; call
// SanitizeName when writing them into a fixed-width field.
func ParseBrandmeister(r io.Reader) ([]Talkgroup, Summary, error) {
	var rows []*brandmeisterRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, Summary{}, fmt.Errorf("parse talkgroup csv: %w", err)
	}

	sum := Summary{Read: len(rows)}
	seen := make(map[int]bool, len(rows))
	var list []Talkgroup

	for _, row := range rows {
		raw := row.Talkgroup
		if raw == "" {
			raw = row.ID
		}
		id, ok := parseID(raw)
		name := strings.TrimSpace(row.Name)
		if !ok || name == "" {
			sum.Dropped++
			continue
		}
		if seen[id] {
			sum.Duplicates++
			continue
		}
		seen[id] = true
		list = append(list, Talkgroup{ID: id, Name: name})
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	sum.Kept = len(list)
	return list, sum, nil
}

// parseID converts a raw CSV cell into a talkgroup ID. Some exports write
// IDs as floats ("91.0"), so the value is parsed as a float and truncated.
func parseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
