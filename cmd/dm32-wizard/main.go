// Dm32-wizard is the guided builder for DM-32 channel and zone files. It
// asks a short series of questions on the terminal (talkgroup list, DMR
// ID, simplex frequency, channel categories, optional repeaters) and
// writes the same CSV pair dm32-codeplug produces.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/wizard"
)

func main() {
	encoding := pflag.StringP("encoding", "e", "ascii", "Output encoding (ascii, utf-8, utf-8-sig, windows-1252, latin-1)")
	pflag.Parse()

	ans, err := wizard.Run()
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Println("aborted")
			os.Exit(130)
		}
		log.WithError(err).Fatal("wizard failed")
	}

	f, err := os.Open(ans.TalkgroupPath)
	if err != nil {
		log.WithError(err).WithField("talkgroups", ans.TalkgroupPath).Fatal("talkgroup file not readable")
	}
	tgs, err := talkgroup.LoadContacts(f, ans.TalkgroupCount)
	f.Close()
	if err != nil {
		log.WithError(err).WithField("talkgroups", ans.TalkgroupPath).Fatal("talkgroup import failed")
	}
	ans.Options.Talkgroups = tgs

	plan := codeplug.Build(ans.Options)

	channelsPath, zonesPath, err := codeplug.WriteFiles(ans.OutputPrefix, plan, ans.DMRID, *encoding)
	if err != nil {
		log.WithError(err).Fatal("codeplug write failed")
	}

	wizard.PrintSummary(plan, channelsPath, zonesPath)
}
