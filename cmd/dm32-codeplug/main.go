// Dm32-codeplug generates the DM-32 channel and zone CSV files from static
// frequency catalogs, the repeaters in a codeplug profile, and a talkgroup
// contact list produced by dm32-contacts.
//
// Without a profile the built-in defaults are used; every profile value
// relevant to a quick run can be overridden on the command line.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

func main() {
	var (
		tgPath   = pflag.StringP("talkgroups", "t", "", "Path to DM-32 formatted talkgroup CSV (from dm32-contacts)")
		prefix   = pflag.StringP("output-prefix", "o", "DM_32", "Prefix for the output CSV files")
		count    = pflag.IntP("count", "c", 150, "Number of talkgroups to include in the talkgroup zone")
		dmrID    = pflag.StringP("dmr-id", "d", "1234567", "DMR ID or callsign string to embed in channel entries")
		cfgPath  = pflag.StringP("config", "C", "", "Path to codeplug profile TOML (optional)")
		noTGID   = pflag.Bool("no-tg-id-in-name", false, "Do not append the talkgroup ID to channel names")
		encoding = pflag.StringP("encoding", "e", "ascii", "Output encoding (ascii, utf-8, utf-8-sig, windows-1252, latin-1)")
	)
	pflag.Parse()

	if *tgPath == "" {
		pflag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.WithError(err).WithField("config", *cfgPath).Fatal("profile load failed")
		}
	}

	// Flags given explicitly on the command line win over the profile.
	if pflag.CommandLine.Changed("output-prefix") {
		cfg.Codeplug.OutputPrefix = *prefix
	}
	if pflag.CommandLine.Changed("count") {
		cfg.Codeplug.TalkgroupCount = *count
	}
	if pflag.CommandLine.Changed("dmr-id") {
		cfg.Codeplug.DMRID = *dmrID
	}
	if pflag.CommandLine.Changed("encoding") {
		cfg.Codeplug.Encoding = *encoding
	}
	if *noTGID {
		cfg.Codeplug.AppendTGID = false
	}
	if err := config.Validate(cfg); err != nil {
		log.WithError(err).Fatal("invalid profile")
	}

	f, err := os.Open(*tgPath)
	if err != nil {
		log.WithError(err).WithField("talkgroups", *tgPath).Fatal("talkgroup file not readable")
	}
	tgs, err := talkgroup.LoadContacts(f, cfg.Codeplug.TalkgroupCount)
	f.Close()
	if err != nil {
		log.WithError(err).WithField("talkgroups", *tgPath).Fatal("talkgroup import failed")
	}

	plan := codeplug.Build(codeplug.FromProfile(cfg, tgs))

	channelsPath, zonesPath, err := codeplug.WriteFiles(
		cfg.Codeplug.OutputPrefix, plan, cfg.Codeplug.DMRID, cfg.Codeplug.Encoding)
	if err != nil {
		log.WithError(err).Fatal("codeplug write failed")
	}

	log.WithFields(log.Fields{
		"channels":      len(plan.Channels),
		"zones":         len(plan.Zones),
		"talkgroups":    len(tgs),
		"channels_file": channelsPath,
		"zones_file":    zonesPath,
	}).Info("wrote DM-32 channel and zone files")
}
