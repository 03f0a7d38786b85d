package config

import "image/color"

// Sprite names a texture inside a texture dictionary
type Sprite struct {
	Dict string
	Name string
}

// IsZero reports whether no sprite is set
func (s Sprite) IsZero() bool {
	return s.Dict == "" && s.Name == ""
}

// MenuConfig contains all menu styling and layout values.
// Positions and sizes are in normalized screen units (0.0 - 1.0).
type MenuConfig struct {
	// Placement
	X          float64 // Horizontal offset of the menu's left edge
	Y          float64 // Vertical offset of the menu's top edge
	MaxDisplay int     // Option rows shown before the list scrolls

	// Title
	TitleTextColor       color.RGBA
	TitleBackgroundColor color.RGBA
	TitleFont            int

	// Options
	OptionsTextColor             color.RGBA
	OptionsBackgroundColor       color.RGBA
	OptionsTextSelectColor       color.RGBA
	OptionsBackgroundSelectColor color.RGBA
	OptionsFont                  int

	// Subtitle
	SubtitleTextColor       color.RGBA
	SubtitleBackgroundColor color.RGBA

	// Footer and detail pane
	FooterColor     color.RGBA
	FooterTextColor color.RGBA
	DetailTextColor color.RGBA

	// Layout. These depend on one another and are not exposed in the settings file.
	Width             float64
	TextMargin        float64
	OptionRightMargin float64
	OptionHeight      float64
	OptionTextSize    float64
	TitleHeight       float64
	TitleTextSize     float64
	TitleMinTextSize  float64
	TitleTextOffset   float64
	SubtitleHeight    float64
	SubtitleTextSize  float64
	DetailLineHeight  float64
	DetailTextSize    float64
	InfoBoxWidth      float64
	InfoBoxGap        float64

	// Textures
	TitleSprite      Sprite
	BackgroundSprite Sprite
	HighlightSprite  Sprite
	CheckboxOn       Sprite
	CheckboxOff      Sprite
	SubmenuArrow     Sprite
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 191}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Title banner
	Grey         = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Global configuration instances
var C *Config
var Menu MenuConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "nativemenu",
	}

	// Values resemble the classic trainer-style overlay
	Menu = MenuConfig{
		X:          0.0125,
		Y:          0.025,
		MaxDisplay: 10,

		TitleTextColor:       White,
		TitleBackgroundColor: DarkBlue,
		TitleFont:            1,

		OptionsTextColor:             White,
		OptionsBackgroundColor:       color.RGBA{R: 0, G: 0, B: 0, A: 160},
		OptionsTextSelectColor:       Black,
		OptionsBackgroundSelectColor: White,
		OptionsFont:                  0,

		SubtitleTextColor:       LightBlue,
		SubtitleBackgroundColor: Black,

		FooterColor:     BlackOverlay,
		FooterTextColor: White,
		DetailTextColor: White,

		Width:             0.225,
		TextMargin:        0.005,
		OptionRightMargin: 0.015,
		OptionHeight:      0.035,
		OptionTextSize:    0.45,
		TitleHeight:       0.1,
		TitleTextSize:     1.15,
		TitleMinTextSize:  0.5,
		TitleTextOffset:   0.015,
		SubtitleHeight:    0.035,
		SubtitleTextSize:  0.45,
		DetailLineHeight:  0.025,
		DetailTextSize:    0.4,
		InfoBoxWidth:      0.23,
		InfoBoxGap:        0.01,

		TitleSprite:      Sprite{Dict: "commonmenu", Name: "interaction_bgd"},
		BackgroundSprite: Sprite{Dict: "commonmenu", Name: "gradient_bgd"},
		HighlightSprite:  Sprite{Dict: "commonmenu", Name: "gradient_nav"},
		CheckboxOn:       Sprite{Dict: "commonmenu", Name: "shop_box_tick"},
		CheckboxOff:      Sprite{Dict: "commonmenu", Name: "shop_box_blank"},
		SubmenuArrow:     Sprite{Dict: "commonmenu", Name: "arrowright"},
	}
}
