package codeplug

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/textenc"
)

// channelRow is the DM-32 CPS channel export schema. The column set and
// order come from a CPS export; the CPS rejects files whose header deviates.
type channelRow struct {
	Index             int    `csv:"No."`
	Name              string `csv:"Channel Name"`
	Mode              Mode   `csv:"Channel Type"`
	RX                string `csv:"RX Frequency[MHz]"`
	TX                string `csv:"TX Frequency[MHz]"`
	Power             Power  `csv:"Power"`
	Bandwidth         string `csv:"Band Width"`
	ScanList          string `csv:"Scan List"`
	TXAdmit           string `csv:"TX Admit"`
	EmergencySystem   string `csv:"Emergency System"`
	SquelchLevel      string `csv:"Squelch Level"`
	APRSReportType    string `csv:"APRS Report Type"`
	ForbidTX          string `csv:"Forbid TX"`
	APRSReceive       string `csv:"APRS Receive"`
	ForbidTalkaround  string `csv:"Forbid Talkaround"`
	AutoScan          string `csv:"Auto Scan"`
	LoneWork          string `csv:"Lone Work"`
	EmergencyInd      string `csv:"Emergency Indicator"`
	EmergencyACK      string `csv:"Emergency ACK"`
	AnalogAPRSPTT     string `csv:"Analog APRS PTT Mode"`
	DigitalAPRSPTT    string `csv:"Digital APRS PTT Mode"`
	TXContact         string `csv:"TX Contact"`
	RXGroupList       string `csv:"RX Group List"`
	ColorCode         string `csv:"Color Code"`
	TimeSlot          string `csv:"Time Slot"`
	Encryption        string `csv:"Encryption"`
	EncryptionID      string `csv:"Encryption ID"`
	APRSReportChannel string `csv:"APRS Report Channel"`
	DirectDualMode    string `csv:"Direct Dual Mode"`
	PrivateConfirm    string `csv:"Private Confirm"`
	ShortDataConfirm  string `csv:"Short Data Confirm"`
	DMRID             string `csv:"DMR ID"`
	CTCDecode         string `csv:"CTC/DCS Decode"`
	CTCEncode         string `csv:"CTC/DCS Encode"`
	Scramble          string `csv:"Scramble"`
	RXSquelchMode     string `csv:"RX Squelch Mode"`
	SignalingType     string `csv:"Signaling Type"`
	PTTID             string `csv:"PTT ID"`
	VOXFunction       string `csv:"VOX Function"`
	PTTIDDisplay      string `csv:"PTT ID Display"`
}

// zoneRow is the DM-32 CPS zone export schema.
type zoneRow struct {
	Index   int    `csv:"No."`
	Name    string `csv:"Zone Name"`
	Members string `csv:"Channel Members"`
}

// channelToRow fills the vendor schema for one channel. Fields the plan
// does not model get the fixed values a stock CPS export carries.
func channelToRow(idx int, ch Channel, dmrID string) *channelRow {
	row := &channelRow{
		Index:             idx,
		Name:              ch.DisplayName(),
		Mode:              ch.Mode,
		RX:                ch.RX,
		TX:                ch.TX,
		Power:             ch.Power,
		Bandwidth:         string(ch.Bandwidth),
		ScanList:          "Scan List 1",
		TXAdmit:           "Allow TX",
		EmergencySystem:   "None",
		SquelchLevel:      "3",
		APRSReportType:    "Off",
		ForbidTX:          "0",
		APRSReceive:       "0",
		ForbidTalkaround:  "0",
		AutoScan:          "0",
		LoneWork:          "0",
		EmergencyInd:      "0",
		EmergencyACK:      "0",
		AnalogAPRSPTT:     "0",
		DigitalAPRSPTT:    "0",
		TXContact:         "None",
		RXGroupList:       "None",
		ColorCode:         "0",
		TimeSlot:          "Slot 1",
		Encryption:        "0",
		EncryptionID:      "None",
		APRSReportChannel: "1",
		DirectDualMode:    "0",
		PrivateConfirm:    "0",
		ShortDataConfirm:  "0",
		DMRID:             dmrID,
		CTCDecode:         "None",
		CTCEncode:         "None",
		Scramble:          "None",
		RXSquelchMode:     "Carrier/CTC",
		SignalingType:     "None",
		PTTID:             "OFF",
		VOXFunction:       "0",
		PTTIDDisplay:      "0",
	}

	if ch.Mode == ModeDigital {
		row.TXAdmit = "Always"
		row.APRSReportType = "Digital"
		row.APRSReceive = "1"
		row.ColorCode = strconv.Itoa(ch.ColorCode)
		row.TimeSlot = fmt.Sprintf("Slot %d", ch.TimeSlot)
		if ch.TGName != "" {
			row.TXContact = ch.TGName
		}
	} else if ch.CTCSS != "" {
		row.CTCDecode = ch.CTCSS
		row.CTCEncode = ch.CTCSS
	}

	return row
}

// WriteChannels writes the channel CSV with CRLF line endings.
func WriteChannels(w io.Writer, channels []Channel, dmrID string) error {
	rows := make([]*channelRow, 0, len(channels))
	for i, ch := range channels {
		rows = append(rows, channelToRow(i+1, ch, dmrID))
	}
	return gocsv.MarshalCSV(&rows, crlfWriter(w))
}

// WriteZones writes the zone CSV. Members are joined with "|" as the CPS
// expects.
func WriteZones(w io.Writer, zones []Zone) error {
	rows := make([]*zoneRow, 0, len(zones))
	for i, z := range zones {
		rows = append(rows, &zoneRow{
			Index:   i + 1,
			Name:    z.Name,
			Members: strings.Join(z.Members, "|"),
		})
	}
	return gocsv.MarshalCSV(&rows, crlfWriter(w))
}

func crlfWriter(w io.Writer) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return gocsv.NewSafeCSVWriter(cw)
}

// WriteFiles writes the plan to "<prefix>_Channels.csv" and
// "<prefix>_Zones.csv" in the requested encoding. Each file is written to a
// temp file in the destination directory and renamed into place so an
// aborted run never leaves a half-written import file.
func WriteFiles(prefix string, plan Plan, dmrID, encodingName string) (channelsPath, zonesPath string, err error) {
	channelsPath = prefix + "_Channels.csv"
	zonesPath = prefix + "_Zones.csv"

	err = writeAtomic(channelsPath, encodingName, func(w io.Writer) error {
		return WriteChannels(w, plan.Channels, dmrID)
	})
	if err != nil {
		return "", "", fmt.Errorf("write %s: %w", channelsPath, err)
	}

	err = writeAtomic(zonesPath, encodingName, func(w io.Writer) error {
		return WriteZones(w, plan.Zones)
	})
	if err != nil {
		return "", "", fmt.Errorf("write %s: %w", zonesPath, err)
	}

	return channelsPath, zonesPath, nil
}

// writeAtomic writes via a temp file and rename, encoding output bytes per
// encodingName.
func writeAtomic(path, encodingName string, fill func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "dm32-*.tmp")
	if err != nil {
		return err
	}

	enc, err := textenc.NewWriter(tmp, encodingName)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := fill(enc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := enc.Close(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
