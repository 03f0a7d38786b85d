package main

import (
	"log"

	"github.com/automoto/nativemenu/config"
	"github.com/automoto/nativemenu/fonts"
	"github.com/automoto/nativemenu/scenes"
	"github.com/automoto/nativemenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{scene: scenes.NewOverlayScene()}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := fonts.LoadGoFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Saved values are applied when the overlay is first created
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
