package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "DM_32", cfg.Codeplug.OutputPrefix)
	assert.Equal(t, 150, cfg.Codeplug.TalkgroupCount)
	assert.Equal(t, []int{9990, 9998}, cfg.Contacts.PrivateCallIDs)
	assert.True(t, cfg.DMRRepeater.Enabled)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	content := `
[codeplug]
output_prefix = "Custom"
talkgroup_count = 25

[hotspot]
rx_mhz = 438.8
tx_mhz = 438.8

[[analog_repeater]]
name = "W8XYZ"
rx_mhz = 145.23
tx_mhz = 144.63
ctcss = "123.0"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Custom", cfg.Codeplug.OutputPrefix)
	assert.Equal(t, 25, cfg.Codeplug.TalkgroupCount)
	assert.Equal(t, 438.8, cfg.Hotspot.RXMHz)

	// Untouched sections keep their defaults.
	assert.Equal(t, "ascii", cfg.Codeplug.Encoding)
	assert.Equal(t, 16, cfg.Contacts.MaxNameLength)
	assert.Equal(t, 1, cfg.Hotspot.ColorCode)

	// The repeater table replaces the example set entirely.
	require.Len(t, cfg.AnalogRepeaters, 1)
	assert.Equal(t, "W8XYZ", cfg.AnalogRepeaters[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	content := `
[hotspot]
color_code = 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color_code")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "empty prefix",
			mutate: func(c *Config) { c.Codeplug.OutputPrefix = "" },
			want:   "output_prefix",
		},
		{
			name:   "zero talkgroup count",
			mutate: func(c *Config) { c.Codeplug.TalkgroupCount = 0 },
			want:   "talkgroup_count",
		},
		{
			name:   "name length over radio limit",
			mutate: func(c *Config) { c.Contacts.MaxNameLength = 17 },
			want:   "max_name_length",
		},
		{
			name:   "bad time slot",
			mutate: func(c *Config) { c.Hotspot.TimeSlot = 3 },
			want:   "time_slot",
		},
		{
			name:   "bad power",
			mutate: func(c *Config) { c.Hotspot.Power = "Turbo" },
			want:   "power",
		},
		{
			name:   "unnamed analog repeater",
			mutate: func(c *Config) { c.AnalogRepeaters[0].Name = "" },
			want:   "analog_repeater",
		},
		{
			name:   "dmr repeater color code",
			mutate: func(c *Config) { c.DMRRepeater.ColorCode = 0 },
			want:   "dmr_repeater.color_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
