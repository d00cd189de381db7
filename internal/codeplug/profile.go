package codeplug

import (
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// FromProfile turns a loaded codeplug profile plus an imported talkgroup
// list into plan options. Frequencies are rendered to the 5-decimal MHz
// strings used throughout the channel CSV.
func FromProfile(cfg config.Config, tgs []talkgroup.Talkgroup) PlanOptions {
	opts := PlanOptions{
		Talkgroups:     tgs,
		SimplexRX:      FormatMHz(cfg.Hotspot.RXMHz, 5),
		SimplexTX:      FormatMHz(cfg.Hotspot.TXMHz, 5),
		ColorCode:      cfg.Hotspot.ColorCode,
		TimeSlot:       cfg.Hotspot.TimeSlot,
		TalkgroupPower: Power(cfg.Hotspot.Power),
		AppendID:       cfg.Codeplug.AppendTGID,
		TalkgroupZone:  cfg.Codeplug.TalkgroupZone,
		Categories: Categories{
			FRSGMRS:    cfg.Categories.FRSGMRS,
			MURS:       cfg.Categories.MURS,
			Airband:    cfg.Categories.Airband,
			Marine:     cfg.Categories.Marine,
			HamCalling: cfg.Categories.HamCalling,
			NOAA:       cfg.Categories.NOAA,
		},
		SeparatePopularZone: cfg.Categories.Popular,
	}

	for _, rep := range cfg.AnalogRepeaters {
		opts.AnalogRepeaters = append(opts.AnalogRepeaters, Repeater{
			Name:  rep.Name,
			RX:    FormatMHz(rep.RXMHz, 5),
			TX:    FormatMHz(rep.TXMHz, 5),
			CTCSS: rep.CTCSS,
		})
	}

	if cfg.DMRRepeater.Enabled {
		opts.DMRRepeater = &DMRRepeater{
			Name:      cfg.DMRRepeater.Name,
			RX:        FormatMHz(cfg.DMRRepeater.RXMHz, 5),
			TX:        FormatMHz(cfg.DMRRepeater.TXMHz, 5),
			ColorCode: cfg.DMRRepeater.ColorCode,
			Slot1:     DMRSlot{TGName: cfg.DMRRepeater.Slot1.TGName, TGID: cfg.DMRRepeater.Slot1.TGID},
			Slot2:     DMRSlot{TGName: cfg.DMRRepeater.Slot2.TGName, TGID: cfg.DMRRepeater.Slot2.TGID},
		}
	}

	return opts
}
