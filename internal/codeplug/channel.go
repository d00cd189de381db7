// Package codeplug builds DM-32 channel and zone plans from static
// frequency catalogs, configured repeaters, and an imported talkgroup list,
// and writes them in the CSV layout the DM-32 CPS imports.
package codeplug

import (
	"fmt"
	"strconv"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// Mode is the channel operating mode.
type Mode string

const (
	ModeAnalog  Mode = "Analog"
	ModeDigital Mode = "Digital"
)

// Power is the transmit power level.
type Power string

const (
	PowerHigh   Power = "High"
	PowerMiddle Power = "Middle"
	PowerLow    Power = "Low"
)

// Bandwidth is the channel bandwidth as the CPS spells it.
type Bandwidth string

const (
	BandwidthNarrow Bandwidth = "12.5KHz"
	BandwidthWide   Bandwidth = "25KHz"
)

// MaxChannelName is the radio's channel name field width. Zone member
// lists reference channels by name, so every name written anywhere must
// pass through TruncateName to keep the two files consistent.
const MaxChannelName = 16

// Channel is one row of the DM-32 channel list. RX and TX are MHz strings
// already formatted to the precision the CPS displays. CTCSS applies to
// analog channels only; ColorCode, TimeSlot and the talkgroup fields apply
// to digital channels only.
type Channel struct {
	Name      string
	RX        string
	TX        string
	Mode      Mode
	Power     Power
	Bandwidth Bandwidth
	CTCSS     string // tone in Hz, empty for carrier squelch
	ColorCode int
	TimeSlot  int
	TGName    string
	TGID      int
}

// DisplayName returns the channel name truncated to the radio's field width.
func (c Channel) DisplayName() string {
	return TruncateName(c.Name)
}

// TruncateName clips a channel name to the 16-character limit.
func TruncateName(name string) string {
	if len(name) > MaxChannelName {
		return name[:MaxChannelName]
	}
	return name
}

// FormatMHz renders a frequency in MHz with the given number of decimals,
// matching the fixed-width strings found in CPS exports.
func FormatMHz(mhz float64, decimals int) string {
	return strconv.FormatFloat(mhz, 'f', decimals, 64)
}

// TalkgroupChannelName builds a channel name for an imported talkgroup:
// the abbreviated name plus the numeric ID, squeezed into the 16-character
// field. With appendID false only the abbreviated name is used.
func TalkgroupChannelName(tg talkgroup.Talkgroup, appendID bool) string {
	abbr := talkgroup.Abbreviate(tg.Name)
	if !appendID {
		return TruncateName(abbr)
	}
	idStr := strconv.Itoa(tg.ID)
	maxName := MaxChannelName - len(idStr) - 1
	if maxName < 1 {
		maxName = 1
	}
	if len(abbr) > maxName {
		abbr = abbr[:maxName]
	}
	return fmt.Sprintf("%s %s", abbr, idStr)
}
