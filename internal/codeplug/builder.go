package codeplug

import (
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// Repeater is a local analog repeater: receive/transmit pair plus an
// optional CTCSS tone in Hz.
type Repeater struct {
	Name  string
	RX    string
	TX    string
	CTCSS string
}

// Channel converts the repeater into an analog channel entry.
func (r Repeater) Channel() Channel {
	return Channel{
		Name:      r.Name,
		RX:        r.RX,
		TX:        r.TX,
		Mode:      ModeAnalog,
		Power:     PowerHigh,
		Bandwidth: BandwidthNarrow,
		CTCSS:     r.CTCSS,
	}
}

// DMRSlot assigns a talkgroup to one time slot of a DMR repeater.
// A zero TGID marks an open slot: the channel is named "<base> Local" and
// keys up talkgroup 1.
type DMRSlot struct {
	TGName string
	TGID   int
}

// DMRRepeater describes a DMR repeater or hotspot with talkgroup
// assignments for both time slots.
type DMRRepeater struct {
	Name      string
	RX        string
	TX        string
	ColorCode int
	Slot1     DMRSlot
	Slot2     DMRSlot
}

// Channels expands the repeater into one digital channel per time slot.
func (r DMRRepeater) Channels() []Channel {
	channels := make([]Channel, 0, 2)
	slots := []struct {
		num  int
		slot DMRSlot
	}{{1, r.Slot1}, {2, r.Slot2}}
	for _, entry := range slots {
		name := r.Name + " " + entry.slot.TGName
		tgName := entry.slot.TGName
		tgID := entry.slot.TGID
		if tgID == 0 {
			name = r.Name + " Local"
			if tgName == "" {
				tgName = "Local"
			}
			tgID = 1
		}
		channels = append(channels, Channel{
			Name:      name,
			RX:        r.RX,
			TX:        r.TX,
			Mode:      ModeDigital,
			Power:     PowerHigh,
			Bandwidth: BandwidthNarrow,
			ColorCode: r.ColorCode,
			TimeSlot:  entry.num,
			TGName:    tgName,
			TGID:      tgID,
		})
	}
	return channels
}

// Categories selects which static frequency catalogs go into the plan.
type Categories struct {
	FRSGMRS    bool
	MURS       bool
	Airband    bool
	Marine     bool
	HamCalling bool
	NOAA       bool
}

// AllCategories enables every static catalog.
func AllCategories() Categories {
	return Categories{FRSGMRS: true, MURS: true, Airband: true, Marine: true, HamCalling: true, NOAA: true}
}

// PlanOptions carries everything needed to assemble a channel/zone plan.
type PlanOptions struct {
	// Talkgroups imported from a contact CSV; each becomes a digital
	// simplex channel on the hotspot frequency.
	Talkgroups []talkgroup.Talkgroup

	SimplexRX      string // hotspot/simplex receive frequency, MHz
	SimplexTX      string // hotspot/simplex transmit frequency, MHz
	ColorCode      int
	TimeSlot       int
	TalkgroupPower Power
	AppendID       bool   // append the talkgroup ID to channel names
	TalkgroupZone  string // zone label for the imported talkgroups

	AnalogRepeaters []Repeater
	DMRRepeater     *DMRRepeater

	Categories Categories

	// PopularInTalkgroupZone folds the curated talkgroup channels into the
	// talkgroup zone; SeparatePopularZone gives them a zone of their own.
	// Either flag causes the channels to be generated.
	PopularInTalkgroupZone bool
	SeparatePopularZone    bool
}

// Plan is a fully assembled codeplug: the flat channel list plus the zone
// groupings referencing those channels by display name.
type Plan struct {
	Channels []Channel
	Zones    []Zone
}

// Build assembles the channel list and zones in the fixed category order:
// analog repeaters, DMR repeater, imported talkgroups, then the static
// catalogs, then the curated talkgroups.
func Build(opts PlanOptions) Plan {
	var channels []Channel

	for _, rep := range opts.AnalogRepeaters {
		channels = append(channels, rep.Channel())
	}

	var dmrChannels []Channel
	if opts.DMRRepeater != nil {
		dmrChannels = opts.DMRRepeater.Channels()
		channels = append(channels, dmrChannels...)
	}

	tgChannels := make([]Channel, 0, len(opts.Talkgroups))
	for _, tg := range opts.Talkgroups {
		tgChannels = append(tgChannels, Channel{
			Name:      TalkgroupChannelName(tg, opts.AppendID),
			RX:        opts.SimplexRX,
			TX:        opts.SimplexTX,
			Mode:      ModeDigital,
			Power:     opts.TalkgroupPower,
			Bandwidth: BandwidthNarrow,
			ColorCode: opts.ColorCode,
			TimeSlot:  opts.TimeSlot,
			TGName:    tg.Name,
			TGID:      tg.ID,
		})
	}
	channels = append(channels, tgChannels...)

	var frs, air, mar, ham, wx, murs []Channel
	if opts.Categories.FRSGMRS {
		frs = FRSGMRSChannels()
		channels = append(channels, frs...)
	}
	if opts.Categories.Airband {
		air = AirbandChannels()
		channels = append(channels, air...)
	}
	if opts.Categories.Marine {
		mar = MarineChannels()
		channels = append(channels, mar...)
	}
	if opts.Categories.HamCalling {
		ham = HamCallingChannels()
		channels = append(channels, ham...)
	}
	if opts.Categories.NOAA {
		wx = NOAAWeatherChannels()
		channels = append(channels, wx...)
	}
	if opts.Categories.MURS {
		murs = MURSChannels()
		channels = append(channels, murs...)
	}

	var popular []Channel
	if opts.PopularInTalkgroupZone || opts.SeparatePopularZone {
		popular = PopularTalkgroupChannels(opts.SimplexRX, opts.SimplexTX, opts.AppendID)
		if opts.PopularInTalkgroupZone {
			for i := range popular {
				popular[i].Power = opts.TalkgroupPower
			}
		}
		channels = append(channels, popular...)
	}

	var zones []Zone
	if len(opts.AnalogRepeaters) > 0 {
		var names []string
		for _, rep := range opts.AnalogRepeaters {
			names = append(names, TruncateName(rep.Name))
		}
		zones = append(zones, Zone{Name: "Analog Repeaters", Members: names})
	}
	if opts.DMRRepeater != nil {
		zones = append(zones, Zone{Name: opts.DMRRepeater.Name, Members: memberNames(dmrChannels)})
	}
	zones = append(zones, Zone{
		Name:    opts.TalkgroupZone,
		Members: talkgroupZoneMembers(channels, opts),
	})
	if opts.Categories.FRSGMRS {
		zones = append(zones, Zone{Name: "GMRS/FRS", Members: memberNames(frs)})
	}
	if opts.Categories.Airband {
		zones = append(zones, Zone{Name: "Air Band", Members: memberNames(air)})
	}
	if opts.Categories.Marine {
		zones = append(zones, Zone{Name: "Marine", Members: memberNames(mar)})
	}
	if opts.Categories.HamCalling {
		zones = append(zones, Zone{Name: "Ham Calls", Members: memberNames(ham)})
	}
	if opts.Categories.NOAA {
		zones = append(zones, Zone{Name: "NOAA", Members: memberNames(wx)})
	}
	if opts.Categories.MURS {
		zones = append(zones, Zone{Name: "MURS", Members: memberNames(murs)})
	}
	if opts.SeparatePopularZone {
		zones = append(zones, Zone{Name: "Popular TGs", Members: memberNames(popular)})
	}

	return Plan{Channels: channels, Zones: zones}
}

// talkgroupZoneMembers collects the digital channels on the simplex
// frequency whose talkgroup was imported, plus the curated "Fav" channels
// when those share the zone.
func talkgroupZoneMembers(channels []Channel, opts PlanOptions) []string {
	imported := make(map[string]bool, len(opts.Talkgroups))
	for _, tg := range opts.Talkgroups {
		imported[tg.Name] = true
	}

	var names []string
	for _, ch := range channels {
		if ch.Mode != ModeDigital || ch.RX != opts.SimplexRX || ch.TX != opts.SimplexTX {
			continue
		}
		if imported[ch.TGName] || (opts.PopularInTalkgroupZone && strings.HasPrefix(ch.TGName, "Fav ")) {
			names = append(names, ch.DisplayName())
		}
	}
	return names
}
