// Package config handles loading, defaulting, and validation of the DM-32
// codeplug profile TOML file. Every section maps to a typed struct so the
// generator and wizard get strong typing without manual key lookups.
package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level codeplug profile, mirroring the TOML sections.
type Config struct {
	Codeplug        CodeplugConfig    `toml:"codeplug"        json:"codeplug"`
	Hotspot         HotspotConfig     `toml:"hotspot"         json:"hotspot"`
	Contacts        ContactsConfig    `toml:"contacts"        json:"contacts"`
	Categories      CategoriesConfig  `toml:"categories"      json:"categories"`
	AnalogRepeaters []RepeaterConfig  `toml:"analog_repeater" json:"analog_repeater"`
	DMRRepeater     DMRRepeaterConfig `toml:"dmr_repeater"    json:"dmr_repeater"`
}

type CodeplugConfig struct {
	OutputPrefix   string `toml:"output_prefix"   json:"output_prefix"`
	DMRID          string `toml:"dmr_id"          json:"dmr_id"`
	Encoding       string `toml:"encoding"        json:"encoding"`
	TalkgroupCount int    `toml:"talkgroup_count" json:"talkgroup_count"`
	AppendTGID     bool   `toml:"append_tg_id"    json:"append_tg_id"`
	TalkgroupZone  string `toml:"talkgroup_zone"  json:"talkgroup_zone"`
}

type HotspotConfig struct {
	RXMHz     float64 `toml:"rx_mhz"     json:"rx_mhz"`
	TXMHz     float64 `toml:"tx_mhz"     json:"tx_mhz"`
	ColorCode int     `toml:"color_code" json:"color_code"`
	TimeSlot  int     `toml:"time_slot"  json:"time_slot"`
	Power     string  `toml:"power"      json:"power"`
}

type ContactsConfig struct {
	MaxNameLength  int   `toml:"max_name_length"  json:"max_name_length"`
	PrivateCallIDs []int `toml:"private_call_ids" json:"private_call_ids"`
}

type CategoriesConfig struct {
	FRSGMRS    bool `toml:"frs_gmrs"    json:"frs_gmrs"`
	MURS       bool `toml:"murs"        json:"murs"`
	Airband    bool `toml:"airband"     json:"airband"`
	Marine     bool `toml:"marine"      json:"marine"`
	HamCalling bool `toml:"ham_calling" json:"ham_calling"`
	NOAA       bool `toml:"noaa"        json:"noaa"`
	Popular    bool `toml:"popular"     json:"popular"`
}

type RepeaterConfig struct {
	Name  string  `toml:"name"   json:"name"`
	RXMHz float64 `toml:"rx_mhz" json:"rx_mhz"`
	TXMHz float64 `toml:"tx_mhz" json:"tx_mhz"`
	CTCSS string  `toml:"ctcss"  json:"ctcss"`
}

type DMRRepeaterConfig struct {
	Enabled   bool       `toml:"enabled"    json:"enabled"`
	Name      string     `toml:"name"       json:"name"`
	RXMHz     float64    `toml:"rx_mhz"     json:"rx_mhz"`
	TXMHz     float64    `toml:"tx_mhz"     json:"tx_mhz"`
	ColorCode int        `toml:"color_code" json:"color_code"`
	Slot1     SlotConfig `toml:"slot1"      json:"slot1"`
	Slot2     SlotConfig `toml:"slot2"      json:"slot2"`
}

// SlotConfig assigns a talkgroup to a repeater time slot. A zero ID marks
// an open/local slot.
type SlotConfig struct {
	TGName string `toml:"tg_name" json:"tg_name"`
	TGID   int    `toml:"tg_id"   json:"tg_id"`
}

// Default returns a Config populated with a working example profile.
// Values here are used whenever the TOML file omits a field, and the
// generator runs entirely on them when no profile is given.
func Default() Config {
	return Config{
		Codeplug: CodeplugConfig{
			OutputPrefix:   "DM_32",
			DMRID:          "1234567",
			Encoding:       "ascii",
			TalkgroupCount: 150,
			AppendTGID:     true,
			TalkgroupZone:  "Pi-Star",
		},
		Hotspot: HotspotConfig{
			RXMHz:     430.0,
			TXMHz:     430.0,
			ColorCode: 1,
			TimeSlot:  2,
			Power:     "Middle",
		},
		Contacts: ContactsConfig{
			MaxNameLength:  16,
			PrivateCallIDs: []int{9990, 9998},
		},
		Categories: CategoriesConfig{
			FRSGMRS:    true,
			MURS:       true,
			Airband:    true,
			Marine:     true,
			HamCalling: true,
			NOAA:       true,
			Popular:    true,
		},
		AnalogRepeaters: []RepeaterConfig{
			{Name: "KE8IL UHF", RXMHz: 444.8, TXMHz: 449.8, CTCSS: "100.0"},
			{Name: "K8LOD UHF", RXMHz: 443.45, TXMHz: 448.45, CTCSS: "100.0"},
			{Name: "K8LOD VHF", RXMHz: 147.27, TXMHz: 147.87, CTCSS: "100.0"},
			{Name: "KE8IL 2M", RXMHz: 146.97, TXMHz: 146.37, CTCSS: "100.0"},
		},
		DMRRepeater: DMRRepeaterConfig{
			Enabled:   true,
			Name:      "KB0P DMR",
			RXMHz:     442.2,
			TXMHz:     447.2,
			ColorCode: 1,
			Slot1:     SlotConfig{},
			Slot2:     SlotConfig{TGName: "U.P.TG", TGID: 31268},
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. An error is returned if the file can't be read,
// parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the profile constraints.
func Validate(cfg Config) error {
	if cfg.Codeplug.OutputPrefix == "" {
		return errors.New("codeplug.output_prefix must not be empty")
	}
	if cfg.Codeplug.TalkgroupCount < 1 {
		return errors.New("codeplug.talkgroup_count must be >= 1")
	}
	if cfg.Contacts.MaxNameLength < 1 || cfg.Contacts.MaxNameLength > 16 {
		return errors.New("contacts.max_name_length must be between 1 and 16")
	}
	if cfg.Hotspot.RXMHz <= 0 || cfg.Hotspot.TXMHz <= 0 {
		return errors.New("hotspot.rx_mhz and hotspot.tx_mhz must be > 0")
	}
	if cfg.Hotspot.ColorCode < 1 || cfg.Hotspot.ColorCode > 15 {
		return errors.New("hotspot.color_code must be between 1 and 15")
	}
	if cfg.Hotspot.TimeSlot != 1 && cfg.Hotspot.TimeSlot != 2 {
		return errors.New("hotspot.time_slot must be 1 or 2")
	}
	switch cfg.Hotspot.Power {
	case "High", "Middle", "Low":
	default:
		return errors.New("hotspot.power must be High, Middle or Low")
	}
	for _, rep := range cfg.AnalogRepeaters {
		if rep.Name == "" {
			return errors.New("analog_repeater.name must not be empty")
		}
		if rep.RXMHz <= 0 || rep.TXMHz <= 0 {
			return errors.New("analog_repeater frequencies must be > 0")
		}
	}
	if cfg.DMRRepeater.Enabled {
		if cfg.DMRRepeater.Name == "" {
			return errors.New("dmr_repeater.name must not be empty")
		}
		if cfg.DMRRepeater.RXMHz <= 0 || cfg.DMRRepeater.TXMHz <= 0 {
			return errors.New("dmr_repeater frequencies must be > 0")
		}
		if cfg.DMRRepeater.ColorCode < 1 || cfg.DMRRepeater.ColorCode > 15 {
			return errors.New("dmr_repeater.color_code must be between 1 and 15")
		}
	}
	return nil
}
