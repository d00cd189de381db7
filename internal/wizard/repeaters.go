package wizard

import (
	"fmt"
	"strconv"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
)

// askAnalogRepeaters runs the optional loop for entering local analog
// repeaters. An empty name ends the loop.
func askAnalogRepeaters() ([]codeplug.Repeater, error) {
	var repeaters []codeplug.Repeater

	add, err := askConfirm("Would you like to add a local analog repeater?", false)
	if err != nil {
		return nil, err
	}
	for add {
		name, err := askString("Repeater name (blank to stop adding)", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			break
		}
		rx, err := askFloat("Receive frequency (MHz)", 146.520)
		if err != nil {
			return nil, err
		}
		tx, err := askFloat("Transmit frequency (MHz)", rx)
		if err != nil {
			return nil, err
		}
		tone, err := askString("CTCSS tone (Hz)", "100.0")
		if err != nil {
			return nil, err
		}
		repeaters = append(repeaters, codeplug.Repeater{
			Name:  name,
			RX:    codeplug.FormatMHz(rx, 5),
			TX:    codeplug.FormatMHz(tx, 5),
			CTCSS: tone,
		})

		add, err = askConfirm("Add another analog repeater?", false)
		if err != nil {
			return nil, err
		}
	}
	return repeaters, nil
}

// askDMRRepeater runs the optional DMR repeater/hotspot entry. Returns nil
// when the user declines. Entering 0 or blank for a slot's talkgroup ID
// marks the slot as open/local.
func askDMRRepeater() (*codeplug.DMRRepeater, error) {
	add, err := askConfirm("Would you like to add a DMR repeater or hotspot?", false)
	if err != nil || !add {
		return nil, err
	}

	name, err := askString("Repeater/hotspot base name", "DMR Repeater")
	if err != nil {
		return nil, err
	}
	rx, err := askFloat("Receive frequency (MHz)", 442.000)
	if err != nil {
		return nil, err
	}
	tx, err := askFloat("Transmit frequency (MHz)", rx)
	if err != nil {
		return nil, err
	}
	color, err := askInt("Color code (1-15)", 1)
	if err != nil {
		return nil, err
	}

	slot1, err := askSlotAssignment(1)
	if err != nil {
		return nil, err
	}
	slot2, err := askSlotAssignment(2)
	if err != nil {
		return nil, err
	}

	return &codeplug.DMRRepeater{
		Name:      name,
		RX:        codeplug.FormatMHz(rx, 5),
		TX:        codeplug.FormatMHz(tx, 5),
		ColorCode: color,
		Slot1:     slot1,
		Slot2:     slot2,
	}, nil
}

// askSlotAssignment prompts for the talkgroup on one time slot.
func askSlotAssignment(slot int) (codeplug.DMRSlot, error) {
	idStr, err := askString(fmt.Sprintf("Slot %d talkgroup ID (0 or blank for open)", slot), "0")
	if err != nil {
		return codeplug.DMRSlot{}, err
	}
	id, convErr := strconv.Atoi(idStr)
	if convErr != nil {
		id = 0
	}

	nameDefault := "Local"
	if id != 0 {
		nameDefault = fmt.Sprintf("TG %d", id)
	}
	name, err := askString(fmt.Sprintf("Slot %d talkgroup name", slot), nameDefault)
	if err != nil {
		return codeplug.DMRSlot{}, err
	}
	return codeplug.DMRSlot{TGName: name, TGID: id}, nil
}
