// Package format renders decoded camera responses for people. It is a
// presentation layer over protocol.Response and is never used for decoding.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/urmzd/kodakam/pkg/protocol"
)

type valueKind int

const (
	kindPlain valueKind = iota
	kindYesNo
	kindWiFi
	kindBattery
	kindTemperature
	kindHumidity
	kindResolution
	kindFlicker
	kindComposite
	kindPercent
	kindSeconds
)

type keyInfo struct {
	label string
	kind  valueKind
}

// Labels and encodings for get_caminfo keys as observed on the cameras.
var known = map[string]keyInfo{
	"flicker":          {"Flicker frequency", kindFlicker},
	"flipup":           {"Image flipped vertically", kindYesNo},
	"fliplr":           {"Image flipped horizontally", kindYesNo},
	"brate":            {"Bitrate (kbps)", kindPlain},
	"svol":             {"Speaker volume", kindPlain},
	"mvol":             {"Microphone volume", kindPlain},
	"wifi":             {"WiFi signal", kindWiFi},
	"bat":              {"Battery", kindBattery},
	"hum":              {"Humidity", kindHumidity},
	"hum_float":        {"Humidity", kindHumidity},
	"tem":              {"Temperature", kindTemperature},
	"tem_float":        {"Temperature", kindTemperature},
	"storage":          {"Storage", kindPlain},
	"md":               {"Motion detection", kindComposite},
	"sd":               {"Sound detection", kindComposite},
	"td":               {"Temperature detection", kindComposite},
	"lbd":              {"Low battery detection", kindComposite},
	"ir":               {"Night vision", kindPlain},
	"lulla":            {"Lullaby playing", kindYesNo},
	"res":              {"Resolution", kindResolution},
	"sdcap":            {"SD card capacity", kindPlain},
	"sdfree":           {"SD card free space", kindPlain},
	"sdatrm":           {"SD card auto-remove", kindYesNo},
	"sdnoclips":        {"SD card clip count", kindPlain},
	"mdled":            {"Motion LED", kindYesNo},
	"charge":           {"Charging", kindYesNo},
	"charge_dur":       {"Charge duration", kindPlain},
	"lulvol":           {"Lullaby volume", kindPlain},
	"lulla_dur":        {"Lullaby duration", kindPlain},
	"ssid1":            {"WiFi network 1", kindPlain},
	"ssid2":            {"WiFi network 2", kindPlain},
	"ssid3":            {"WiFi network 3", kindPlain},
	"hw_id":            {"Hardware ID", kindPlain},
	"dnsm":             {"Primary DNS", kindPlain},
	"dnss":             {"Secondary DNS", kindPlain},
	"localip":          {"Local IP address", kindPlain},
	"rp_pair":          {"Repeater paired", kindYesNo},
	"rp_conn":          {"Repeater connection", kindPlain},
	"blue_led_en":      {"Blue LED enabled", kindYesNo},
	"blue_led_ontime":  {"Blue LED on time", kindSeconds},
	"red_led_affect":   {"Red LED affected", kindYesNo},
	"block_pu_upgrade": {"Block parent unit upgrade", kindYesNo},
	"pu_fw_pkg":        {"Parent unit firmware", kindPlain},
	"advise_homemode":  {"Advise home mode", kindYesNo},
	"snapshot_storage": {"Snapshot storage", kindYesNo},
	"soc_ver":          {"Firmware version", kindPlain},
	"melody_vol":       {"Melody volume", kindPercent},
}

// Label returns the display label for a response key. Unknown keys are
// title-cased from their snake_case form.
func Label(key string) string {
	if info, ok := known[key]; ok {
		return info.label
	}
	if key == "" {
		return "(empty)"
	}
	// Casers are stateful; one per call keeps Label safe for concurrent use.
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// Value renders a raw value for display. Values that do not match the
// expected encoding are returned unchanged.
func Value(key, raw string) string {
	info, ok := known[key]
	if !ok {
		return raw
	}

	switch info.kind {
	case kindYesNo:
		switch raw {
		case "0":
			return "No"
		case "1":
			return "Yes"
		}
	case kindWiFi:
		if n, err := strconv.Atoi(raw); err == nil {
			return fmt.Sprintf("%d%% (%s)", n, wifiBand(n))
		}
	case kindBattery:
		if n, err := strconv.Atoi(raw); err == nil {
			return fmt.Sprintf("%d%% (%s)", n, batteryBand(n))
		}
	case kindTemperature:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			if f <= -273 {
				return "no sensor"
			}
			return strconv.FormatFloat(f, 'f', -1, 64) + " °C"
		}
	case kindHumidity:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			if f < 0 {
				return "no sensor"
			}
			return strconv.FormatFloat(f, 'f', -1, 64) + "%"
		}
	case kindResolution:
		if label, ok := resolutions[raw]; ok {
			return label
		}
	case kindFlicker:
		if _, err := strconv.Atoi(raw); err == nil {
			return raw + " Hz"
		}
	case kindComposite:
		if c, ok := protocol.InterpretComposite(raw); ok {
			return Composite(c)
		}
	case kindPercent:
		if _, err := strconv.Atoi(raw); err == nil {
			return raw + "%"
		}
	case kindSeconds:
		if _, err := strconv.Atoi(raw); err == nil {
			return raw + " s"
		}
	}
	return raw
}

var resolutions = map[string]string{
	"480":  "480p (SD)",
	"720":  "720p (HD)",
	"1080": "1080p (Full HD)",
}

func wifiBand(n int) string {
	switch {
	case n >= 80:
		return "Excellent"
	case n >= 60:
		return "Good"
	case n >= 40:
		return "Fair"
	default:
		return "Weak"
	}
}

func batteryBand(n int) string {
	switch {
	case n >= 75:
		return "Full"
	case n >= 40:
		return "Good"
	case n >= 15:
		return "Low"
	default:
		return "Critical"
	}
}

// Composite renders a detection setting.
func Composite(c protocol.Composite) string {
	state := "Disabled"
	if c.Enabled {
		state = "Enabled"
	}
	return fmt.Sprintf("%s, schedule %d, sensitivity %d", state, c.Schedule, c.Sensitivity)
}

// Line is one rendered field.
type Line struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// Lines renders every field of an ok response, in response order.
func Lines(r protocol.Response) []Line {
	lines := make([]Line, 0, len(r.Fields))
	for _, f := range r.Fields {
		lines = append(lines, Line{
			Key:   f.Key,
			Label: Label(f.Key),
			Value: Value(f.Key, f.Value),
			Raw:   f.Value,
		})
	}
	return lines
}

// Summary is a one-line description of the response outcome.
func Summary(r protocol.Response) string {
	switch r.Outcome {
	case protocol.OutcomeOK:
		return fmt.Sprintf("Command %q returned %d field(s)", r.Command, len(r.Fields))
	case protocol.OutcomeFailed:
		return fmt.Sprintf("Command %q returned -1 (command failed or not supported)", r.Command)
	case protocol.OutcomeEmpty:
		return fmt.Sprintf("Command %q executed successfully (no data returned)", r.Command)
	default:
		if strings.TrimSpace(r.Raw) == "" {
			return fmt.Sprintf("No response received for %q", r.Command)
		}
		return fmt.Sprintf("Raw response for %q: %s", r.Command, r.Raw)
	}
}

// Text renders the summary followed by one "label: value" line per field.
func Text(r protocol.Response) string {
	var b strings.Builder
	b.WriteString(Summary(r))
	for _, l := range Lines(r) {
		b.WriteString("\n  ")
		b.WriteString(l.Label)
		b.WriteString(": ")
		b.WriteString(l.Value)
	}
	return b.String()
}
