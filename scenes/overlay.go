package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/nativemenu/config"
	"github.com/automoto/nativemenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverlayScene hosts the overlay menu on top of a simple animated backdrop
type OverlayScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

// NewOverlayScene creates a new overlay scene
func NewOverlayScene() *OverlayScene {
	return &OverlayScene{}
}

func (s *OverlayScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *OverlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *OverlayScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	renderer := systems.NewScreenRenderer(cfg.C.Width, cfg.C.Height)
	// Generate menu textures now rather than on the first open
	renderer.Preload(cfg.Menu.HighlightSprite.Dict)

	// Audio system (runs first to initialize audio context)
	s.ecs.AddSystem(systems.UpdateAudio)

	// Input must be polled before the menu reads it
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.NewUpdateOverlay(renderer))

	// The overlay draws on top of the backdrop
	s.ecs.AddRenderer(systems.LayerBackdrop, systems.DrawBackdrop)
	s.ecs.AddRenderer(systems.LayerOverlay, systems.NewDrawOverlay(renderer))
}
