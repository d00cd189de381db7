package talkgroup

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"

	"github.com/gocarina/gocsv"
)

// contactRow is the DM-32 CPS contact list schema.
type contactRow struct {
	Index int      `csv:"No."`
	Name  string   `csv:"Name"`
	ID    int      `csv:"ID"`
	Type  CallType `csv:"Type"`
}

// WriteContacts writes the talkgroup list as a DM-32 contact CSV. Names are
// sanitized and truncated to maxLen, rows are numbered from 1, and IDs in
// the private set are tagged as private calls. Line endings are CRLF, which
// the CPS import expects.
func WriteContacts(w io.Writer, list []Talkgroup, maxLen int, private map[int]bool) error {
	rows := make([]*contactRow, 0, len(list))
	for i, tg := range list {
		rows = append(rows, &contactRow{
			Index: i + 1,
			Name:  SanitizeName(tg.Name, maxLen),
			ID:    tg.ID,
			Type:  Classify(tg.ID, private),
		})
	}
	return gocsv.MarshalCSV(&rows, crlfWriter(w))
}

func crlfWriter(w io.Writer) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return gocsv.NewSafeCSVWriter(cw)
}

// cleanName matches contact names consisting only of plain ASCII letters,
// digits, spaces and light punctuation. Used to skip entries whose names
// came through transliteration badly, favouring English names.
var cleanName = regexp.MustCompile(`^[A-Za-z0-9 .&/-]+$`)

// LoadContacts reads a DM-32 contact CSV (as written by WriteContacts) and
// returns up to count talkgroups sorted ascending by ID. Entries whose
// names contain characters outside the clean ASCII set are skipped.
func LoadContacts(r io.Reader, count int) ([]Talkgroup, error) {
	var rows []*contactRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse contact csv: %w", err)
	}

	var list []Talkgroup
	for _, row := range rows {
		if !cleanName.MatchString(row.Name) {
			continue
		}
		list = append(list, Talkgroup{ID: row.ID, Name: row.Name})
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if count > 0 && len(list) > count {
		list = list[:count]
	}
	return list, nil
}
