package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/nativemenu/assets"
	cfg "github.com/automoto/nativemenu/config"
	"github.com/automoto/nativemenu/fonts"
	"github.com/automoto/nativemenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// referenceHeight is the screen height at which text scale 1.0 draws fonts.BaseSize pixels
const referenceHeight = 720.0

// ScreenRenderer implements menu.Renderer on top of ebiten. The menu draws
// during Update, so calls are recorded and replayed onto the screen in Draw.
type ScreenRenderer struct {
	width, height int
	commands      []menu.DrawCommand
	sprites       map[cfg.Sprite]*ebiten.Image
	missing       map[cfg.Sprite]bool
	drawOp        ebiten.DrawImageOptions
}

// NewScreenRenderer creates a renderer for a logical screen of the given size
func NewScreenRenderer(width, height int) *ScreenRenderer {
	r := &ScreenRenderer{
		width:   width,
		height:  height,
		sprites: make(map[cfg.Sprite]*ebiten.Image),
		missing: make(map[cfg.Sprite]bool),
	}
	r.drawOp.Filter = ebiten.FilterLinear
	return r
}

// Begin drops the previous frame's recording. Call it once per Update before the menu runs.
func (r *ScreenRenderer) Begin() {
	r.commands = r.commands[:0]
}

// AspectRatio is the logical screen's width over height
func (r *ScreenRenderer) AspectRatio() float64 {
	return float64(r.width) / float64(r.height)
}

func (r *ScreenRenderer) pixelScale(scale float64) float64 {
	return scale * float64(r.height) / referenceHeight
}

func (r *ScreenRenderer) MeasureText(s string, scale float64, id int) float64 {
	face := fonts.ForMenu(id).Get()
	return r.textWidth(face, s, r.pixelScale(scale)) / float64(r.width)
}

// textWidth returns the advance of s in pixels at pixel scale ps
func (r *ScreenRenderer) textWidth(face font.Face, s string, ps float64) float64 {
	return float64(font.MeasureString(face, s)) / 64 * ps
}

func (r *ScreenRenderer) DrawText(s string, id int, x, y, scale float64, c color.RGBA, justify menu.Justify) {
	r.commands = append(r.commands, menu.DrawCommand{
		Kind: menu.CommandText, Text: s, Font: id, X: x, Y: y, Scale: scale, Color: c, Justify: justify,
	})
}

func (r *ScreenRenderer) DrawRect(x, y, w, h float64, c color.RGBA) {
	r.commands = append(r.commands, menu.DrawCommand{Kind: menu.CommandRect, X: x, Y: y, W: w, H: h, Color: c})
}

// DrawSprite records a sprite draw. rotation is in degrees.
func (r *ScreenRenderer) DrawSprite(sprite menu.Sprite, x, y, w, h, rotation float64, c color.RGBA) {
	r.commands = append(r.commands, menu.DrawCommand{
		Kind: menu.CommandSprite, Sprite: sprite, X: x, Y: y, W: w, H: h, Rotation: rotation, Color: c,
	})
}

// Present replays the recorded frame onto screen with every color faded by alpha
func (r *ScreenRenderer) Present(screen *ebiten.Image, alpha float32) {
	for _, c := range r.commands {
		switch c.Kind {
		case menu.CommandRect:
			vector.FillRect(
				screen,
				float32(c.X*float64(r.width)), float32(c.Y*float64(r.height)),
				float32(c.W*float64(r.width)), float32(c.H*float64(r.height)),
				fadeColor(c.Color, alpha),
				false,
			)
		case menu.CommandText:
			r.presentText(screen, c, alpha)
		case menu.CommandSprite:
			r.presentSprite(screen, c, alpha)
		}
	}
}

func (r *ScreenRenderer) presentText(screen *ebiten.Image, c menu.DrawCommand, alpha float32) {
	face := fonts.ForMenu(c.Font).Get()
	ps := r.pixelScale(c.Scale)

	x := c.X * float64(r.width)
	switch c.Justify {
	case menu.JustifyCenter:
		x -= r.textWidth(face, c.Text, ps) / 2
	case menu.JustifyRight:
		x -= r.textWidth(face, c.Text, ps)
	}
	// Text is positioned by its top edge; ebiten draws from the baseline
	ascent := float64(face.Metrics().Ascent) / 64 * ps

	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	r.drawOp.GeoM.Scale(ps, ps)
	r.drawOp.GeoM.Translate(x, c.Y*float64(r.height)+ascent)
	r.drawOp.ColorScale.ScaleWithColor(c.Color)
	r.drawOp.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, c.Text, face, &r.drawOp)
}

func (r *ScreenRenderer) presentSprite(screen *ebiten.Image, c menu.DrawCommand, alpha float32) {
	img := r.sprite(c.Sprite)
	if img == nil {
		return
	}
	b := img.Bounds()
	w := c.W * float64(r.width)
	h := c.H * float64(r.height)

	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	r.drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if c.Rotation != 0 {
		r.drawOp.GeoM.Translate(-w/2, -h/2)
		r.drawOp.GeoM.Rotate(c.Rotation * math.Pi / 180)
		r.drawOp.GeoM.Translate(w/2, h/2)
	}
	r.drawOp.GeoM.Translate(c.X*float64(r.width), c.Y*float64(r.height))
	r.drawOp.ColorScale.ScaleWithColor(c.Color)
	r.drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, &r.drawOp)
}

// Preload generates and caches every texture of dict
func (r *ScreenRenderer) Preload(dict string) {
	for _, name := range assets.SpriteNames(dict) {
		r.sprite(cfg.Sprite{Dict: dict, Name: name})
	}
}

// sprite returns the cached texture for s, generating it on first use
func (r *ScreenRenderer) sprite(s cfg.Sprite) *ebiten.Image {
	if img, ok := r.sprites[s]; ok {
		return img
	}
	if r.missing[s] {
		return nil
	}

	src, ok := assets.GenerateSprite(s)
	if !ok {
		log.Printf("Warning: Unknown sprite %s/%s", s.Dict, s.Name)
		r.missing[s] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.sprites[s] = img
	return img
}

// fadeColor scales a premultiplied color by alpha
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	f := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}
