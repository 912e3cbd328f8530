package profile

// Point2 is a window coordinate pair in the game settings file.
type Point2 struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// Settings mirrors the game client's settings document. Field names are
// fixed by the client; changing a tag breaks the handoff.
type Settings struct {
	Username              string   `json:"username"`
	Password              string   `json:"password"`
	IP                    string   `json:"ip"`
	Port                  uint16   `json:"port"`
	UltimaOnlineDirectory string   `json:"ultimaonlinedirectory"`
	ProfilesPath          string   `json:"profilespath"`
	ClientVersion         string   `json:"clientversion"`
	Language              string   `json:"lang"`
	LastServerNum         uint16   `json:"lastservernum"`
	LastServerName        string   `json:"last_server_name"`
	FPS                   int      `json:"fps"`
	WindowPosition        *Point2  `json:"window_position"`
	WindowSize            *Point2  `json:"window_size"`
	IsWindowMaximized     bool     `json:"is_win_maximized"`
	SaveAccount           bool     `json:"saveaccount"`
	AutoLogin             bool     `json:"autologin"`
	Reconnect             bool     `json:"reconnect"`
	ReconnectTime         int      `json:"reconnect_time"`
	LoginMusic            bool     `json:"login_music"`
	LoginMusicVolume      int      `json:"login_music_volume"`
	ShardType             int      `json:"shard_type"`
	FixedTimeStep         bool     `json:"fixed_time_step"`
	RunMouseInThread      bool     `json:"run_mouse_in_separate_thread"`
	ForceDriver           uint8    `json:"force_driver"`
	UseVerdata            bool     `json:"use_verdata"`
	MapsLayouts           string   `json:"maps_layouts"`
	Encryption            uint8    `json:"encryption"`
	Plugins               []string `json:"plugins"`
}

// DefaultSettings returns the settings a new profile starts from.
func DefaultSettings() Settings {
	return Settings{
		IP:                "openuo.online",
		Port:              2593,
		LastServerNum:     1,
		FPS:               60,
		IsWindowMaximized: true,
		SaveAccount:       true,
		AutoLogin:         true,
		Reconnect:         true,
		ReconnectTime:     1,
		LoginMusic:        true,
		LoginMusicVolume:  70,
		FixedTimeStep:     true,
		RunMouseInThread:  true,
		Plugins:           []string{},
	}
}
