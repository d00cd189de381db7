package codeplug

import (
	"fmt"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// The static catalogs below carry the standard US frequency allocations
// that make up the analog half of the codeplug. Frequencies are in MHz.

// frsGMRS lists the 22 shared FRS/GMRS channels per the FCC table.
// Channels 8-14 are the low-power 467 MHz interstitials.
var frsGMRS = []float64{
	462.5625, 462.5875, 462.6125, 462.6375,
	462.6625, 462.6875, 462.7125, 467.5625,
	467.5875, 467.6125, 467.6375, 467.6625,
	467.6875, 467.7125, 462.55, 462.575,
	462.6, 462.625, 462.65, 462.675,
	462.7, 462.725,
}

// FRSGMRSChannels returns the FRS/GMRS simplex channels. Repeater inputs
// are omitted; these are the simplex allocations only.
func FRSGMRSChannels() []Channel {
	channels := make([]Channel, 0, len(frsGMRS))
	for i, freq := range frsGMRS {
		f := FormatMHz(freq, 5)
		channels = append(channels, Channel{
			Name:      fmt.Sprintf("GMRS/FRS %02d", i+1),
			RX:        f,
			TX:        f,
			Mode:      ModeAnalog,
			Power:     PowerHigh,
			Bandwidth: BandwidthNarrow,
		})
	}
	return channels
}

// mursFrequencies lists the five license-free MURS channels. 4 and 5 are
// the "Blue Dot" and "Green Dot" business frequencies.
var mursFrequencies = []float64{151.820, 151.880, 151.940, 154.570, 154.600}

// MURSChannels returns the MURS VHF channels as narrow analog FM.
func MURSChannels() []Channel {
	channels := make([]Channel, 0, len(mursFrequencies))
	for i, freq := range mursFrequencies {
		f := FormatMHz(freq, 3)
		channels = append(channels, Channel{
			Name:      fmt.Sprintf("MURS %d", i+1),
			RX:        f,
			TX:        f,
			Mode:      ModeAnalog,
			Power:     PowerHigh,
			Bandwidth: BandwidthNarrow,
		})
	}
	return channels
}

type namedFrequency struct {
	Name string
	MHz  float64
}

// airband covers emergency, air-to-air and unicom uses for receive.
var airband = []namedFrequency{
	{"121.5 Emergency", 121.500},
	{"122.75 Air-to-Air", 122.750},
	{"122.8 Unicom", 122.800},
	{"123.0 Unicom", 123.000},
	{"123.025 Helicopter", 123.025},
	{"123.45 Air-to-Air", 123.450},
	{"123.1 SAR", 123.100},
}

// AirbandChannels returns the common aviation frequencies as wide analog FM.
func AirbandChannels() []Channel {
	channels := make([]Channel, 0, len(airband))
	for _, a := range airband {
		f := FormatMHz(a.MHz, 3)
		channels = append(channels, Channel{
			Name:      "Air " + a.Name,
			RX:        f,
			TX:        f,
			Mode:      ModeAnalog,
			Power:     PowerHigh,
			Bandwidth: BandwidthWide,
		})
	}
	return channels
}

// marine covers distress/calling (16), bridge-to-bridge (13), recreational
// hailing (9) and the Coast Guard liaison channel (22A).
var marine = []namedFrequency{
	{"Marine Ch16 Distress", 156.8},
	{"Marine Ch13 Nav", 156.65},
	{"Marine Ch09 Calling", 156.45},
	{"Marine Ch22A USCG", 157.1},
}

// MarineChannels returns the common marine VHF channels.
func MarineChannels() []Channel {
	channels := make([]Channel, 0, len(marine))
	for _, m := range marine {
		f := FormatMHz(m.MHz, 3)
		channels = append(channels, Channel{
			Name:      m.Name,
			RX:        f,
			TX:        f,
			Mode:      ModeAnalog,
			Power:     PowerHigh,
			Bandwidth: BandwidthWide,
		})
	}
	return channels
}

// hamCalling lists the national FM simplex calling frequencies.
var hamCalling = []namedFrequency{
	{"2m Calling", 146.520},
	{"70cm Calling", 446.000},
	{"1.25m Calling", 223.500},
	{"6m Calling", 50.125},
	{"10m FM Calling", 29.600},
}

// HamCallingChannels returns the ham simplex calling channels.
func HamCallingChannels() []Channel {
	channels := make([]Channel, 0, len(hamCalling))
	for _, h := range hamCalling {
		f := FormatMHz(h.MHz, 3)
		channels = append(channels, Channel{
			Name:      h.Name,
			RX:        f,
			TX:        f,
			Mode:      ModeAnalog,
			Power:     PowerHigh,
			Bandwidth: BandwidthNarrow,
		})
	}
	return channels
}

// noaaWX lists the seven NOAA Weather Radio broadcast frequencies.
var noaaWX = []float64{162.400, 162.425, 162.450, 162.475, 162.500, 162.525, 162.550}

// NOAAWeatherChannels returns the NOAA weather broadcast channels WX1-WX7.
func NOAAWeatherChannels() []Channel {
	channels := make([]Channel, 0, len(noaaWX))
	for i, freq := range noaaWX {
		f := FormatMHz(freq, 3)
		channels = append(channels, Channel{
			Name:      fmt.Sprintf("NOAA WX %d", i+1),
			RX:        f,
			TX:        f,
			Mode:      ModeAnalog,
			Power:     PowerHigh,
			Bandwidth: BandwidthWide,
		})
	}
	return channels
}

// PopularTalkgroups is a curated set of widely used BrandMeister talkgroups
// offered as ready-made hotspot channels: worldwide and regional bridges,
// the TAC channels, and activity programs.
var PopularTalkgroups = []talkgroup.Talkgroup{
	{ID: 91, Name: "Worldwide"},
	{ID: 93, Name: "North America"},
	{ID: 3100, Name: "USA Bridge"},
	{ID: 31656, Name: "America Link"},
	{ID: 310847, Name: "SkyHub Link"},
	{ID: 3169, Name: "Midwest Regional"},
	{ID: 3172, Name: "Northeast Regional"},
	{ID: 3173, Name: "MidAtlantic Regional"},
	{ID: 3175, Name: "TX-OK Regional"},
	{ID: 3176, Name: "Southwest Regional"},
	{ID: 3177, Name: "Mountain Regional"},
	{ID: 31121, Name: "First Coast"},
	{ID: 310, Name: "TAC 310"},
	{ID: 311, Name: "TAC 311"},
	{ID: 312, Name: "TAC 312"},
	{ID: 313, Name: "TAC 313"},
	{ID: 314, Name: "TAC 314"},
	{ID: 315, Name: "TAC 315"},
	{ID: 316, Name: "TAC 316"},
	{ID: 317, Name: "TAC 317"},
	{ID: 318, Name: "TAC 318"},
	{ID: 319, Name: "TAC 319"},
	{ID: 907, Name: "JOTA"},
	{ID: 3181, Name: "POTA"},
	{ID: 973, Name: "SOTA"},
	{ID: 9990, Name: "Parrot"},
}

// PopularTalkgroupChannels returns digital channels for the curated
// talkgroups on the given simplex frequency. The contact name is prefixed
// with "Fav " so these entries never collide with the same talkgroup
// imported from a BrandMeister list.
func PopularTalkgroupChannels(rx, tx string, appendID bool) []Channel {
	channels := make([]Channel, 0, len(PopularTalkgroups))
	for _, tg := range PopularTalkgroups {
		channels = append(channels, Channel{
			Name:      TalkgroupChannelName(tg, appendID),
			RX:        rx,
			TX:        tx,
			Mode:      ModeDigital,
			Power:     PowerMiddle,
			Bandwidth: BandwidthNarrow,
			ColorCode: 1,
			TimeSlot:  2,
			TGName:    "Fav " + tg.Name,
			TGID:      tg.ID,
		})
	}
	return channels
}
