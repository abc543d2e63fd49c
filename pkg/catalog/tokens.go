package catalog

import "strings"

// Token maps a symbolic command name to its wire token.
type Token struct {
	Name string `json:"name"`
	Wire string `json:"wire"`
}

// Sweepable reports whether the token is a get_ query worth polling.
func (t Token) Sweepable() bool {
	return strings.HasPrefix(t.Wire, "get_")
}

// rawTokens is the broader symbolic table used for bulk polling. It carries
// no parameter schemas. Some entries diverge from the curated catalog
// (GET_FLIPUP_CMD is value_flipup, not get_flipup); they are kept as
// observed until verified against a device.
var rawTokens = []Token{
	{"GET_CAM_INFO_CMD", "get_caminfo"},
	{"GET_VERSION_CMD", "get_version"},
	{"GET_MODEL_CMD", "get_model"},
	{"GET_MAC_ADDRESS_CMD", "get_mac_address"},
	{"GET_UDID_CMD", "get_udid"},
	{"GET_TEMP_HUMID_CMD", "get_temp_humid"},
	{"GET_WIFI_STRENGTH_CMD", "get_wifi_strength"},
	{"GET_WIFI_CONNECTION_STATE_CMD", "get_wifi_connection_state"},
	{"GET_ROUTERS_LIST_CMD", "get_routers_list"},
	{"GET_NIGHT_VISION_CMD", "get_night_vision"},
	{"GET_RESOLUTION_CMD", "get_resolution"},
	{"GET_BRIGHTNESS_CMD", "get_brightness"},
	{"GET_CONTRAST_CMD", "get_contrast"},
	{"GET_BATTERY_PERCENT_CMD", "get_battery_percent"},
	{"GET_MOTION_SENSITIVITY_CMD", "get_motion_sensitivity"},
	{"GET_MOTION_SOURCE_CMD", "get_motion_source"},
	{"GET_SOUND_DETECTION_CMD", "get_sound_detection"},
	{"GET_TEMP_DETECTION_CMD", "get_temp_detection"},
	{"GET_MELODY_VOL_CMD", "get_melody_vol"},
	{"GET_SPEAKER_VOL_CMD", "get_spk_volume"},
	{"GET_TIME_ZONE_CMD", "get_time_zone"},
	{"GET_SESSION_KEY_CMD", "get_session_key"},
	{"GET_SD_CARD_INFO_CMD", "get_sdcard_info"},
	{"GET_BLUE_LED_CMD", "get_blue_led"},
	{"GET_FLIPUP_CMD", "value_flipup"},
	{"GET_FLICKER_CMD", "value_flicker"},
	{"GET_CAMERA_INFO_CMD", "get_caminfo"},
	{"SET_FLIPUP_CMD", "set_flipup"},
	{"SET_FLICKER_CMD", "set_flicker"},
	{"SET_NIGHT_VISION_CMD", "set_night_vision"},
	{"SET_MOTION_SOURCE_CMD", "set_motion_source"},
	{"SET_MOTION_SENSITIVITY_CMD", "set_motion_sensitivity"},
	{"SET_MOTION_STORAGE_CMD", "set_motion_storage"},
	{"SET_SOUND_DETECTION_CMD", "set_sound_detection"},
	{"SET_RESOLUTION_CMD", "set_resolution"},
	{"SET_BLUE_LED_CMD", "set_blue_led"},
	{"SET_MELODY_VOL_CMD", "melody_vol"},
	{"CHANGE_ROUTER_INFO_CMD", "change_router_info"},
	{"MELODY_1_CMD", "melody1"},
	{"MELODY_2_CMD", "melody2"},
	{"MELODY_3_CMD", "melody3"},
	{"MELODY_4_CMD", "melody4"},
	{"MELODY_5_CMD", "melody5"},
	{"MELODY_STOP_CMD", "melodystop"},
	{"RESTART_SYSTEM_CMD", "restart_system"},
	{"PAIR_STOP_CMD", "pair_stop"},
}

// Tokens returns the symbolic token table in declaration order.
func Tokens() []Token {
	out := make([]Token, len(rawTokens))
	copy(out, rawTokens)
	return out
}

// SweepTokens returns the distinct sweepable wire tokens, first occurrence wins.
func SweepTokens() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range rawTokens {
		if !t.Sweepable() || seen[t.Wire] {
			continue
		}
		seen[t.Wire] = true
		out = append(out, t.Wire)
	}
	return out
}
