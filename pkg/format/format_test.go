package format

import (
	"strings"
	"testing"

	"github.com/urmzd/kodakam/pkg/protocol"
)

func TestValue(t *testing.T) {
	tests := []struct {
		key, raw, want string
	}{
		{"wifi", "82", "82% (Excellent)"},
		{"wifi", "45", "45% (Fair)"},
		{"wifi", "12", "12% (Weak)"},
		{"bat", "14", "14% (Critical)"},
		{"bat", "90", "90% (Full)"},
		{"tem", "-273", "no sensor"},
		{"tem_float", "-273.0", "no sensor"},
		{"tem", "21", "21 °C"},
		{"hum", "-1", "no sensor"},
		{"hum_float", "48.5", "48.5%"},
		{"res", "720", "720p (HD)"},
		{"res", "1080", "1080p (Full HD)"},
		{"res", "360", "360"},
		{"flicker", "50", "50 Hz"},
		{"flipup", "0", "No"},
		{"blue_led_en", "1", "Yes"},
		{"blue_led_en", "2", "2"},
		{"md", "0:0:3:0", "Disabled, schedule 0, sensitivity 3"},
		{"lbd", "1:0:1:0", "Enabled, schedule 0, sensitivity 1"},
		{"md", "garbled", "garbled"},
		{"blue_led_ontime", "180", "180 s"},
		{"unknown_key", "x", "x"},
		{"wifi", "n/a", "n/a"},
	}

	for _, tt := range tests {
		if got := Value(tt.key, tt.raw); got != tt.want {
			t.Errorf("Value(%q, %q) = %q, want %q", tt.key, tt.raw, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label("wifi"); got != "WiFi signal" {
		t.Errorf("Label(wifi) = %q", got)
	}
	if got := Label("sync_channel"); got != "Sync Channel" {
		t.Errorf("Label(sync_channel) = %q", got)
	}
	if got := Label(""); got != "(empty)" {
		t.Errorf("Label(\"\") = %q", got)
	}
}

func TestLines(t *testing.T) {
	r := protocol.Decode("get_caminfo", "get_caminfo: wifi=82&tem=-273&ssid1=Zen+7530&")
	lines := Lines(r)
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].Value != "82% (Excellent)" || lines[0].Raw != "82" {
		t.Errorf("wifi line = %+v", lines[0])
	}
	if lines[2].Value != "Zen 7530" {
		t.Errorf("ssid line = %+v", lines[2])
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"get_version: -1", "not supported"},
		{"get_version: ", "no data returned"},
		{"get_version: v=1&", "1 field(s)"},
		{"Invalid mode (null)", "Raw response"},
		{"", "No response received"},
	}
	for _, tt := range tests {
		got := Summary(protocol.Decode("get_version", tt.raw))
		if !strings.Contains(got, tt.want) {
			t.Errorf("Summary(%q) = %q, want it to contain %q", tt.raw, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	got := Text(protocol.Decode("get_temp_humid", "get_temp_humid: tem=19&hum=40&"))
	if !strings.Contains(got, "Temperature: 19 °C") || !strings.Contains(got, "Humidity: 40%") {
		t.Errorf("unexpected text:\n%s", got)
	}
}
