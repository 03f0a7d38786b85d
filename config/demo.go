package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DemoConfig contains the values offered by the showcase menu
type DemoConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
	DefaultVolumeIndex     int
	InputModes             []string
	DifficultyLevels       []int
	DefaultSpeed           float64
	AboutPages             []string
	SettingsPath           string
	AppName                string
}

// Demo is the global showcase configuration
var Demo DemoConfig

func init() {
	Demo = DemoConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex:     2,
		InputModes:             []string{"Keyboard", "Controller"},
		DifficultyLevels:       []int{1, 2, 3, 5, 8},
		DefaultSpeed:           0.25,
		AboutPages: []string{
			"An immediate-mode menu overlay. The whole menu is declared again every frame.",
			"Hold up or down to scroll. Repeats speed up the longer the key is held.",
			"Styles are read from the yaml settings file and applied on the next frame.",
		},
		SettingsPath: "nativemenu.yaml",
		AppName:      "nativemenu",
	}
}
