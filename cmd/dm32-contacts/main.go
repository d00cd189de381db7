// Dm32-contacts converts a BrandMeister talkgroup export into the contact
// list CSV the DM-32 CPS imports.
//
// The input is the talkgroup CSV published by BrandMeister (columns
// Country, Talkgroup, Name). Rows without a usable ID or name are dropped,
// duplicate IDs keep their first occurrence, and names are transliterated
// to ASCII and truncated to the radio's field width.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/textenc"
)

func main() {
	var (
		input     = pflag.StringP("input", "i", "", "Path to BrandMeister talkgroup CSV")
		output    = pflag.StringP("output", "o", "", "Path to write the DM-32 formatted CSV")
		maxLength = pflag.IntP("max-length", "m", talkgroup.DefaultMaxNameLength, "Maximum length for contact names")
		encoding  = pflag.StringP("encoding", "e", "ascii", "Output encoding (ascii, utf-8, utf-8-sig, windows-1252, latin-1)")
		cfgPath   = pflag.StringP("config", "C", "", "Path to codeplug profile TOML (optional)")
	)
	pflag.Parse()

	if *input == "" || *output == "" {
		pflag.Usage()
		os.Exit(2)
	}

	maxLen := *maxLength
	private := talkgroup.PrivateCallSet(talkgroup.DefaultPrivateCallIDs)
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.WithError(err).WithField("config", *cfgPath).Fatal("profile load failed")
		}
		private = talkgroup.PrivateCallSet(cfg.Contacts.PrivateCallIDs)
		if !pflag.CommandLine.Changed("max-length") {
			maxLen = cfg.Contacts.MaxNameLength
		}
	}

	in, err := os.Open(*input)
	if err != nil {
		log.WithError(err).WithField("input", *input).Fatal("input file not readable")
	}
	defer in.Close()

	list, sum, err := talkgroup.ParseBrandmeister(in)
	if err != nil {
		log.WithError(err).WithField("input", *input).Fatal("talkgroup import failed")
	}

	out, err := os.Create(*output)
	if err != nil {
		log.WithError(err).WithField("output", *output).Fatal("output file not writable")
	}

	enc, err := textenc.NewWriter(out, *encoding)
	if err != nil {
		out.Close()
		log.WithError(err).Fatal("bad encoding")
	}

	if err := talkgroup.WriteContacts(enc, list, maxLen, private); err != nil {
		out.Close()
		log.WithError(err).Fatal("contact write failed")
	}
	if err := enc.Close(); err != nil {
		log.WithError(err).Fatal("contact write failed")
	}
	if err := out.Close(); err != nil {
		log.WithError(err).Fatal("contact write failed")
	}

	log.WithFields(log.Fields{
		"read":       sum.Read,
		"dropped":    sum.Dropped,
		"duplicates": sum.Duplicates,
		"written":    sum.Kept,
		"output":     *output,
		"encoding":   *encoding,
	}).Info("converted talkgroups to DM-32 contact format")
}
