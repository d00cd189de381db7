package wizard

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
)

// Answers holds everything the wizard collected. Options is complete
// except for Talkgroups, which the caller fills after loading the contact
// CSV at TalkgroupPath.
type Answers struct {
	TalkgroupPath  string
	TalkgroupCount int
	DMRID          string
	OutputPrefix   string
	Options        codeplug.PlanOptions
}

// Run walks the user through the full prompt flow and returns the
// collected answers. The flow mirrors the flag surface of dm32-codeplug
// but with defaults suitable for someone who has never opened a terminal.
func Run() (Answers, error) {
	Banner()

	var ans Answers

	path, err := askString("Path to DM-32 formatted talkgroups CSV", "DM32_formatted_ascii.csv")
	if err != nil {
		return ans, err
	}
	if _, err := os.Stat(path); err != nil {
		return ans, fmt.Errorf("talkgroup file %q not found; run dm32-contacts first: %w", path, err)
	}
	ans.TalkgroupPath = path

	// Default to a modest number of talkgroups; large contact zones make
	// channel knob navigation painful on the radio.
	ans.TalkgroupCount, err = askInt("How many talkgroups to include in the talkgroup zone?", 50)
	if err != nil {
		return ans, err
	}

	ans.DMRID, err = askString("Your DMR ID / callsign string", "1234567")
	if err != nil {
		return ans, err
	}

	opts := &ans.Options
	opts.TalkgroupZone, err = askString("Name of your talkgroup zone (e.g. hotspot)", "Hotspot")
	if err != nil {
		return ans, err
	}

	isHotspot, err := askConfirm("Is this talkgroup zone for a hotspot (digital simplex)?", true)
	if err != nil {
		return ans, err
	}
	powerDefault := codeplug.PowerMiddle
	if isHotspot {
		powerDefault = codeplug.PowerLow
	}
	opts.TalkgroupPower, err = askPower("Power level for talkgroup channels (High/Middle/Low)", powerDefault)
	if err != nil {
		return ans, err
	}

	rx, err := askFloat("Talkgroup receive frequency (MHz)", 430.000)
	if err != nil {
		return ans, err
	}
	tx, err := askFloat("Talkgroup transmit frequency (MHz)", rx)
	if err != nil {
		return ans, err
	}
	opts.SimplexRX = codeplug.FormatMHz(rx, 5)
	opts.SimplexTX = codeplug.FormatMHz(tx, 5)

	opts.ColorCode, err = askInt("Talkgroup color code (1-15)", 1)
	if err != nil {
		return ans, err
	}
	opts.TimeSlot, err = askSlot("Talkgroup time slot (1 or 2)", 2)
	if err != nil {
		return ans, err
	}
	opts.AppendID = true

	// Hotspot zones usually want the curated talkgroups inline; otherwise
	// offer them as a zone of their own.
	if isHotspot {
		opts.PopularInTalkgroupZone, err = askConfirm("Include popular talkgroups in this zone?", true)
	} else {
		opts.SeparatePopularZone, err = askConfirm("Include a separate zone of popular talkgroups?", true)
	}
	if err != nil {
		return ans, err
	}

	if opts.Categories.FRSGMRS, err = askConfirm("Include GMRS/FRS simplex channels?", true); err != nil {
		return ans, err
	}
	if opts.Categories.MURS, err = askConfirm("Include MURS channels?", true); err != nil {
		return ans, err
	}
	if opts.Categories.Airband, err = askConfirm("Include common airband frequencies?", true); err != nil {
		return ans, err
	}
	if opts.Categories.Marine, err = askConfirm("Include marine VHF channels?", true); err != nil {
		return ans, err
	}
	if opts.Categories.HamCalling, err = askConfirm("Include ham simplex calling frequencies?", true); err != nil {
		return ans, err
	}
	if opts.Categories.NOAA, err = askConfirm("Include NOAA weather channels?", true); err != nil {
		return ans, err
	}

	if opts.AnalogRepeaters, err = askAnalogRepeaters(); err != nil {
		return ans, err
	}
	if opts.DMRRepeater, err = askDMRRepeater(); err != nil {
		return ans, err
	}

	ans.OutputPrefix, err = askString("Output file prefix", "DM_32_Custom")
	if err != nil {
		return ans, err
	}

	return ans, nil
}

// askPower prompts for a transmit power level, re-asking until the answer
// is one of the three levels the radio knows.
func askPower(msg string, def codeplug.Power) (codeplug.Power, error) {
	for {
		s, err := askString(msg, string(def))
		if err != nil {
			return "", err
		}
		switch strings.ToLower(s) {
		case "high":
			return codeplug.PowerHigh, nil
		case "middle":
			return codeplug.PowerMiddle, nil
		case "low":
			return codeplug.PowerLow, nil
		}
		fmt.Println("Please enter High, Middle or Low.")
	}
}

// PrintSummary reports the generated files and their row counts.
func PrintSummary(plan codeplug.Plan, channelsPath, zonesPath string) {
	fmt.Println()
	fmt.Println(header("Generation complete."))
	fmt.Printf("  %s %s\n", colorize(green, fmt.Sprintf("%4d channels", len(plan.Channels))), colorize(dim, "-> "+channelsPath))
	fmt.Printf("  %s %s\n", colorize(green, fmt.Sprintf("%4d zones", len(plan.Zones))), colorize(dim, "-> "+zonesPath))
	fmt.Println(colorize(cyan, "You can now import these files into the DM-32 CPS."))
}
