package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/nativemenu/components"
	cfg "github.com/automoto/nativemenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the overlay values stored on disk
type SavedSettings struct {
	VolumeIndex     int     `json:"volumeIndex"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	InputMode       int     `json:"inputMode"`
	Count           int     `json:"count"`
	Speed           float64 `json:"speed"`
	Difficulty      int     `json:"difficulty"`
	ShowGrid        bool    `json:"showGrid"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Demo.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the values bound to the overlay menu
func SaveCurrentSettings(o *components.OverlayData) {
	saved := &SavedSettings{
		VolumeIndex:     o.VolumeIndex,
		Muted:           o.Muted,
		Fullscreen:      o.Fullscreen,
		ResolutionIndex: o.ResolutionIndex,
		InputMode:       o.InputMode,
		Count:           o.Count,
		Speed:           o.Speed,
		Difficulty:      o.Difficulty,
		ShowGrid:        o.ShowGrid,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings copies loaded settings into the overlay and applies them.
// Out-of-range values are left for the menu to snap on its next frame.
func ApplySavedSettings(e *ecs.ECS, o *components.OverlayData, saved *SavedSettings) {
	if saved == nil {
		return
	}

	o.VolumeIndex = saved.VolumeIndex
	o.Muted = saved.Muted
	o.Fullscreen = saved.Fullscreen
	o.ResolutionIndex = saved.ResolutionIndex
	o.InputMode = saved.InputMode
	o.Count = saved.Count
	o.Speed = saved.Speed
	o.Difficulty = saved.Difficulty
	o.ShowGrid = saved.ShowGrid

	applyVolume(e, o)
	applyDisplay(o)
}

// applyVolume pushes the overlay's volume choice to the audio system
func applyVolume(e *ecs.ECS, o *components.OverlayData) {
	steps := cfg.Demo.VolumeSteps
	if o.Muted || len(steps) == 0 {
		SetSFXVolume(e, 0)
		return
	}
	idx := min(max(o.VolumeIndex, 0), len(steps)-1)
	SetSFXVolume(e, steps[idx])
}

// applyDisplay applies the fullscreen and window size choices
func applyDisplay(o *components.OverlayData) {
	ebiten.SetFullscreen(o.Fullscreen)

	// Only resize the window if not fullscreen
	res := cfg.Demo.Resolutions
	if !o.Fullscreen && o.ResolutionIndex >= 0 && o.ResolutionIndex < len(res) {
		ebiten.SetWindowSize(res[o.ResolutionIndex].Width, res[o.ResolutionIndex].Height)
	}
}
