package codeplug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

func testOptions() PlanOptions {
	return PlanOptions{
		Talkgroups: []talkgroup.Talkgroup{
			{ID: 91, Name: "Worldwide"},
			{ID: 3100, Name: "USA Bridge"},
		},
		SimplexRX:      "430.00000",
		SimplexTX:      "430.00000",
		ColorCode:      1,
		TimeSlot:       2,
		TalkgroupPower: PowerLow,
		AppendID:       true,
		TalkgroupZone:  "Hotspot",
		AnalogRepeaters: []Repeater{
			{Name: "KE8IL UHF", RX: "444.80000", TX: "449.80000", CTCSS: "100.0"},
		},
		DMRRepeater: &DMRRepeater{
			Name:      "KB0P DMR",
			RX:        "442.20000",
			TX:        "447.20000",
			ColorCode: 1,
			Slot1:     DMRSlot{},
			Slot2:     DMRSlot{TGName: "U.P.TG", TGID: 31268},
		},
		Categories:          AllCategories(),
		SeparatePopularZone: true,
	}
}

func TestBuildChannelCount(t *testing.T) {
	plan := Build(testOptions())

	// 1 analog repeater + 2 DMR slots + 2 talkgroups + 22 FRS + 7 air +
	// 4 marine + 5 ham + 7 NOAA + 5 MURS + curated talkgroups.
	want := 1 + 2 + 2 + 22 + 7 + 4 + 5 + 7 + 5 + len(PopularTalkgroups)
	assert.Len(t, plan.Channels, want)
}

func TestBuildZoneMembersReferenceChannels(t *testing.T) {
	plan := Build(testOptions())

	names := make(map[string]bool, len(plan.Channels))
	for _, ch := range plan.Channels {
		names[ch.DisplayName()] = true
	}

	require.NotEmpty(t, plan.Zones)
	for _, zone := range plan.Zones {
		require.NotEmpty(t, zone.Members, "zone %q", zone.Name)
		for _, member := range zone.Members {
			assert.True(t, names[member], "zone %q references unknown channel %q", zone.Name, member)
			assert.LessOrEqual(t, len(member), MaxChannelName)
		}
	}
}

func TestBuildTalkgroupZone(t *testing.T) {
	plan := Build(testOptions())

	var hotspot *Zone
	for i := range plan.Zones {
		if plan.Zones[i].Name == "Hotspot" {
			hotspot = &plan.Zones[i]
		}
	}
	require.NotNil(t, hotspot)

	// Only the imported talkgroups belong: popular channels live in their
	// own zone in this configuration.
	assert.Equal(t, []string{"Worldwide 91", "USA Bridge 3100"}, hotspot.Members)
}

func TestBuildPopularInTalkgroupZone(t *testing.T) {
	opts := testOptions()
	opts.SeparatePopularZone = false
	opts.PopularInTalkgroupZone = true

	plan := Build(opts)

	var hotspot *Zone
	for i := range plan.Zones {
		if plan.Zones[i].Name == "Hotspot" {
			hotspot = &plan.Zones[i]
		}
		assert.NotEqual(t, "Popular TGs", plan.Zones[i].Name)
	}
	require.NotNil(t, hotspot)
	assert.Len(t, hotspot.Members, 2+len(PopularTalkgroups))

	// Folding the curated talkgroups into the hotspot zone adopts the
	// zone's power level.
	for _, ch := range plan.Channels {
		if strings.HasPrefix(ch.TGName, "Fav ") {
			assert.Equal(t, PowerLow, ch.Power)
		}
	}
}

func TestBuildCategoryToggles(t *testing.T) {
	opts := testOptions()
	opts.Categories = Categories{NOAA: true}
	opts.SeparatePopularZone = false
	opts.AnalogRepeaters = nil
	opts.DMRRepeater = nil

	plan := Build(opts)

	assert.Len(t, plan.Channels, 2+7)
	require.Len(t, plan.Zones, 2)
	assert.Equal(t, "Hotspot", plan.Zones[0].Name)
	assert.Equal(t, "NOAA", plan.Zones[1].Name)
}

func TestDMRRepeaterChannels(t *testing.T) {
	rep := DMRRepeater{
		Name:      "KB0P DMR",
		RX:        "442.20000",
		TX:        "447.20000",
		ColorCode: 1,
		Slot1:     DMRSlot{},
		Slot2:     DMRSlot{TGName: "U.P.TG", TGID: 31268},
	}

	channels := rep.Channels()
	require.Len(t, channels, 2)

	// Open slot keys up talkgroup 1 under a "Local" label.
	assert.Equal(t, "KB0P DMR Local", channels[0].Name)
	assert.Equal(t, 1, channels[0].TGID)
	assert.Equal(t, "Local", channels[0].TGName)
	assert.Equal(t, 1, channels[0].TimeSlot)

	assert.Equal(t, "KB0P DMR U.P.TG", channels[1].Name)
	assert.Equal(t, 31268, channels[1].TGID)
	assert.Equal(t, 2, channels[1].TimeSlot)
}
