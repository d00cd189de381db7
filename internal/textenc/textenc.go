// Package textenc selects the byte encoding used for generated CSV files.
// Most CPS versions want plain ASCII; some installations need UTF-8 with a
// BOM so Excel round-trips cleanly, or a legacy Windows code page.
package textenc

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// utf8BOM is the byte-order mark written for utf-8-sig output.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Names returns the supported encoding names.
func Names() []string {
	return []string{"ascii", "utf-8", "utf-8-sig", "windows-1252", "latin-1"}
}

// NewWriter wraps w so that everything written to the returned writer comes
// out in the named encoding. For "ascii", runes outside the ASCII range are
// silently dropped; the legacy code pages substitute unmappable runes.
// The returned writer must be closed to flush pending bytes.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(name) {
	case "", "ascii":
		t := runes.Remove(runes.Predicate(func(r rune) bool {
			return r > unicode.MaxASCII
		}))
		return transform.NewWriter(w, t), nil
	case "utf-8", "utf8":
		return nopCloser{w}, nil
	case "utf-8-sig":
		if _, err := w.Write(utf8BOM); err != nil {
			return nil, fmt.Errorf("write BOM: %w", err)
		}
		return nopCloser{w}, nil
	case "windows-1252":
		enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
		return transform.NewWriter(w, enc), nil
	case "latin-1", "iso-8859-1":
		enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
		return transform.NewWriter(w, enc), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)",
			name, strings.Join(Names(), ", "))
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
