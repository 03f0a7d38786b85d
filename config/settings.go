package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// menuSettingsFile mirrors the settings file. Keys that are absent keep their defaults.
type menuSettingsFile struct {
	Menu struct {
		X          *float64 `yaml:"x"`
		Y          *float64 `yaml:"y"`
		MaxDisplay *int     `yaml:"max_display"`
	} `yaml:"menu"`
	Title struct {
		TextColor       []int `yaml:"text_color"`
		BackgroundColor []int `yaml:"background_color"`
		Font            *int  `yaml:"font"`
	} `yaml:"title"`
	Options struct {
		TextColor             []int `yaml:"text_color"`
		BackgroundColor       []int `yaml:"background_color"`
		TextSelectColor       []int `yaml:"text_select_color"`
		BackgroundSelectColor []int `yaml:"background_select_color"`
		Font                  *int  `yaml:"font"`
	} `yaml:"options"`
	Footer struct {
		Color     []int `yaml:"color"`
		TextColor []int `yaml:"text_color"`
	} `yaml:"footer"`
}

// LoadMenuSettings reads a yaml settings file on top of the compiled-in defaults.
// A missing file is not an error: the defaults are returned as-is.
func LoadMenuSettings(path string) (MenuConfig, error) {
	if path == "" {
		return Menu, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Menu, nil
	}
	if err != nil {
		return Menu, fmt.Errorf("failed to read menu settings %s: %w", path, err)
	}

	settings, err := ParseMenuSettings(data, Menu)
	if err != nil {
		return Menu, fmt.Errorf("failed to parse menu settings %s: %w", path, err)
	}
	return settings, nil
}

// ParseMenuSettings applies the yaml document in data over base.
// base is never modified; on error it is returned unchanged.
func ParseMenuSettings(data []byte, base MenuConfig) (MenuConfig, error) {
	var file menuSettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, err
	}

	out := base
	if file.Menu.X != nil {
		out.X = *file.Menu.X
	}
	if file.Menu.Y != nil {
		out.Y = *file.Menu.Y
	}
	if file.Menu.MaxDisplay != nil {
		if *file.Menu.MaxDisplay < 1 {
			return base, fmt.Errorf("max_display must be at least 1, got %d", *file.Menu.MaxDisplay)
		}
		out.MaxDisplay = *file.Menu.MaxDisplay
	}
	if file.Title.Font != nil {
		out.TitleFont = *file.Title.Font
	}
	if file.Options.Font != nil {
		out.OptionsFont = *file.Options.Font
	}

	colors := []struct {
		key string
		raw []int
		dst *color.RGBA
	}{
		{"title.text_color", file.Title.TextColor, &out.TitleTextColor},
		{"title.background_color", file.Title.BackgroundColor, &out.TitleBackgroundColor},
		{"options.text_color", file.Options.TextColor, &out.OptionsTextColor},
		{"options.background_color", file.Options.BackgroundColor, &out.OptionsBackgroundColor},
		{"options.text_select_color", file.Options.TextSelectColor, &out.OptionsTextSelectColor},
		{"options.background_select_color", file.Options.BackgroundSelectColor, &out.OptionsBackgroundSelectColor},
		{"footer.color", file.Footer.Color, &out.FooterColor},
		{"footer.text_color", file.Footer.TextColor, &out.FooterTextColor},
	}
	for _, c := range colors {
		if c.raw == nil {
			continue
		}
		rgba, err := parseColor(c.raw)
		if err != nil {
			return base, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = rgba
	}

	return out, nil
}

// parseColor accepts [r, g, b] or [r, g, b, a]; alpha defaults to opaque
func parseColor(raw []int) (color.RGBA, error) {
	if len(raw) != 3 && len(raw) != 4 {
		return color.RGBA{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(raw))
	}
	var c [4]uint8
	c[3] = 255
	for i, v := range raw {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("color component %d out of range: %d", i, v)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
