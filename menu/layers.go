package menu

import "image/color"

// Layer is a deferred draw layer. Layers are flushed in ascending order.
type Layer int

const (
	LayerBackgroundSprites Layer = iota
	LayerBackgroundRects
	LayerHighlightSprites
	LayerForegroundSprites
	LayerText
	layerCount
)

// CommandKind selects which Renderer primitive a DrawCommand replays
type CommandKind int

const (
	CommandText CommandKind = iota
	CommandRect
	CommandSprite
)

// DrawCommand is one recorded draw call
type DrawCommand struct {
	Kind       CommandKind
	X, Y, W, H float64
	Color      color.RGBA

	// Text
	Text    string
	Font    int
	Scale   float64
	Justify Justify

	// Sprite
	Sprite   Sprite
	Rotation float64
}

func (c DrawCommand) replay(r Renderer) {
	switch c.Kind {
	case CommandText:
		r.DrawText(c.Text, c.Font, c.X, c.Y, c.Scale, c.Color, c.Justify)
	case CommandRect:
		r.DrawRect(c.X, c.Y, c.W, c.H, c.Color)
	case CommandSprite:
		r.DrawSprite(c.Sprite, c.X, c.Y, c.W, c.H, c.Rotation, c.Color)
	}
}

func textCommand(text string, font int, x, y, scale float64, c color.RGBA, justify Justify) DrawCommand {
	return DrawCommand{Kind: CommandText, Text: text, Font: font, X: x, Y: y, Scale: scale, Color: c, Justify: justify}
}

func rectCommand(x, y, w, h float64, c color.RGBA) DrawCommand {
	return DrawCommand{Kind: CommandRect, X: x, Y: y, W: w, H: h, Color: c}
}

func spriteCommand(s Sprite, x, y, w, h float64, c color.RGBA) DrawCommand {
	return DrawCommand{Kind: CommandSprite, Sprite: s, X: x, Y: y, W: w, H: h, Color: c}
}

// drawLayers buffers draw commands until the frame's geometry is known
type drawLayers struct {
	layers [layerCount][]DrawCommand
}

func (d *drawLayers) enqueue(l Layer, c DrawCommand) {
	d.layers[l] = append(d.layers[l], c)
}

// Len returns the number of pending commands across all layers
func (d *drawLayers) Len() int {
	n := 0
	for _, l := range d.layers {
		n += len(l)
	}
	return n
}

// Commands returns the pending commands in flush order
func (d *drawLayers) Commands() []DrawCommand {
	out := make([]DrawCommand, 0, d.Len())
	for _, l := range d.layers {
		out = append(out, l...)
	}
	return out
}

// flush replays every layer in order and clears them
func (d *drawLayers) flush(r Renderer) {
	if r != nil {
		for _, l := range d.layers {
			for _, c := range l {
				c.replay(r)
			}
		}
	}
	d.discard()
}

func (d *drawLayers) discard() {
	for i := range d.layers {
		d.layers[i] = d.layers[i][:0]
	}
}
