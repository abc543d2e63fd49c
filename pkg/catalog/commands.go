package catalog

func bound(v float64) *float64 { return &v }

// Camera firmware flags are 0/1.
var onOff = []Option{
	{Label: "Off", Value: 0},
	{Label: "On", Value: 1},
}

var trueFalse = []Option{
	{Label: "True", Value: "true"},
	{Label: "False", Value: "false"},
}

func get(token, description string) Command {
	return Command{Key: token, Token: token, Description: description, Category: CategoryGet}
}

func action(token, description string) Command {
	return Command{Key: token, Token: token, Description: description, Category: CategoryAction}
}

// defaultCommands is the curated command table. Parameter schemas were
// reverse-engineered from observed traffic and are not authoritative.
var defaultCommands = []Command{
	// GET
	get("get_caminfo", "Get full camera information and settings"),
	get("get_temp_humid", "Get temperature and humidity readings"),
	get("get_version", "Get firmware version"),
	get("get_wifi_strength", "Get WiFi signal strength"),
	get("get_night_vision", "Get night vision mode"),
	get("get_resolution", "Get video resolution"),
	get("get_brightness", "Get image brightness"),
	get("get_contrast", "Get image contrast"),
	get("get_mac_address", "Get network MAC address"),
	get("get_model", "Get camera model"),
	get("get_battery_percent", "Get battery level"),
	get("get_motion_sensitivity", "Get motion detection settings"),
	get("get_sound_detection", "Get sound detection settings"),
	get("get_melody_vol", "Get melody volume"),
	get("get_time_zone", "Get camera time zone"),

	// SET
	{
		Key: "set_flipup", Token: "set_flipup", Category: CategorySet,
		Description: "Flip the image vertically",
		Parameters: []Parameter{
			SelectParameter{
				Param: Param{Name: "value", Required: true, Description: "Image orientation"},
				Options: []Option{
					{Label: "Normal", Value: 0},
					{Label: "Flipped", Value: 1},
				},
			},
		},
	},
	{
		Key: "set_flicker", Token: "set_flicker", Category: CategorySet,
		Description: "Set anti-flicker frequency",
		Parameters: []Parameter{
			SelectParameter{
				Param: Param{Name: "value", Required: true, Description: "Mains frequency"},
				Options: []Option{
					{Label: "50 Hz", Value: 50},
					{Label: "60 Hz", Value: 60},
				},
			},
		},
	},
	{
		Key: "set_night_vision", Token: "set_night_vision", Category: CategorySet,
		Description: "Set night vision mode",
		Parameters: []Parameter{
			SelectParameter{
				Param: Param{Name: "mode", Required: true, Description: "Night vision mode"},
				Options: []Option{
					{Label: "Auto", Value: 0},
					{Label: "On", Value: 1},
					{Label: "Off", Value: 2},
				},
			},
			NumberParameter{
				Param: Param{Name: "intensity", Description: "IR LED intensity in percent"},
				Min:   bound(0),
				Max:   bound(100),
			},
		},
	},
	{
		Key: "set_motion_source", Token: "set_motion_source", Category: CategorySet,
		Description: "Set motion detection source",
		Parameters: []Parameter{
			SelectParameter{
				Param: Param{Name: "value", Required: true, Description: "Detection source"},
				Options: []Option{
					{Label: "Video", Value: 0},
					{Label: "PIR sensor", Value: 1},
				},
			},
		},
	},
	{
		Key: "set_motion_sensitivity", Token: "set_motion_sensitivity", Category: CategorySet,
		Description: "Set motion detection sensitivity",
		Parameters: []Parameter{
			NumberParameter{
				Param: Param{Name: "value", Required: true, Description: "Sensitivity level"},
				Min:   bound(0),
				Max:   bound(5),
			},
		},
	},
	{
		Key: "set_motion_storage", Token: "set_motion_storage", Category: CategorySet,
		Description: "Set where motion clips are stored",
		Parameters: []Parameter{
			SelectParameter{
				Param: Param{Name: "value", Required: true, Description: "Storage target"},
				Options: []Option{
					{Label: "Cloud", Value: 0},
					{Label: "SD card", Value: 1},
				},
			},
		},
	},
	{
		Key: "set_sound_detection", Token: "set_sound_detection", Category: CategorySet,
		Description: "Enable or disable sound detection",
		Parameters: []Parameter{
			SelectParameter{
				Param:   Param{Name: "value", Required: true, Description: "Sound detection"},
				Options: onOff,
			},
			NumberParameter{
				Param: Param{Name: "sensitivity", Description: "Sound sensitivity level"},
				Min:   bound(1),
				Max:   bound(5),
			},
		},
	},
	{
		Key: "set_resolution", Token: "set_resolution", Category: CategorySet,
		Description: "Set video resolution",
		Parameters: []Parameter{
			SelectParameter{
				Param: Param{Name: "value", Required: true, Description: "Resolution"},
				Options: []Option{
					{Label: "480p (SD)", Value: 480},
					{Label: "720p (HD)", Value: 720},
					{Label: "1080p (Full HD)", Value: 1080},
				},
			},
		},
	},
	{
		Key: "set_blue_led", Token: "set_blue_led", Category: CategorySet,
		Description: "Configure the blue status LED",
		Parameters: []Parameter{
			BooleanParameter{
				Param:   Param{Name: "enable", Required: true, Description: "LED enabled"},
				Options: trueFalse,
			},
			NumberParameter{
				Param: Param{Name: "ontime", Description: "Seconds the LED stays on"},
				Min:   bound(0),
				Max:   bound(3600),
			},
		},
	},
	{
		Key: "melody_vol", Token: "melody_vol", Category: CategorySet,
		Description: "Set melody volume",
		Parameters: []Parameter{
			NumberParameter{
				Param: Param{Name: "value", Required: true, Description: "Volume in percent"},
				Min:   bound(0),
				Max:   bound(100),
			},
		},
	},
	{
		Key: "change_router_info", Token: "change_router_info", Category: CategorySet,
		Description: "Change the WiFi network the camera joins",
		Parameters: []Parameter{
			TextParameter{Param: Param{Name: "ssid", Required: true, Description: "Network name"}},
			TextParameter{Param: Param{Name: "key", Required: true, Description: "Network password"}},
			SelectParameter{
				Param: Param{Name: "security", Description: "Security mode"},
				Options: []Option{
					{Label: "Open", Value: "open"},
					{Label: "WEP", Value: "wep"},
					{Label: "WPA", Value: "wpa"},
					{Label: "WPA2", Value: "wpa2"},
				},
			},
		},
	},

	// ACTION
	action("melody1", "Play lullaby 1"),
	action("melody2", "Play lullaby 2"),
	action("melody3", "Play lullaby 3"),
	action("melody4", "Play lullaby 4"),
	action("melody5", "Play lullaby 5"),
	action("melodystop", "Stop lullaby playback"),
	action("restart_system", "Restart the camera"),
	action("pair_stop", "Stop pairing mode"),
}
