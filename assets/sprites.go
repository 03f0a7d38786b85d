package assets

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	cfg "github.com/automoto/nativemenu/config"
	"golang.org/x/image/vector"
)

// Textures are generated white on transparent so the renderer can tint them.
type spriteGenerator func() *image.RGBA

var dictionaries = map[string]map[string]spriteGenerator{
	"commonmenu": {
		"interaction_bgd": bannerTexture,
		"gradient_bgd":    backgroundTexture,
		"gradient_nav":    highlightTexture,
		"shop_box_tick":   tickTexture,
		"shop_box_blank":  boxTexture,
		"arrowright":      arrowTexture,
		"preview":         previewTexture,
	},
}

// GenerateSprite renders the texture for s. It returns false for unknown sprites.
func GenerateSprite(s cfg.Sprite) (*image.RGBA, bool) {
	dict, ok := dictionaries[s.Dict]
	if !ok {
		return nil, false
	}
	gen, ok := dict[s.Name]
	if !ok {
		return nil, false
	}
	return gen(), true
}

// SpriteNames lists the textures of a dictionary in sorted order
func SpriteNames(dict string) []string {
	names := make([]string, 0, len(dictionaries[dict]))
	for name := range dictionaries[dict] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// white returns opaque white scaled to alpha a, premultiplied
func white(a uint8) color.RGBA {
	return color.RGBA{R: a, G: a, B: a, A: a}
}

func bannerTexture() *image.RGBA {
	const w, h = 512, 128
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		a := uint8(255 - 55*y/h)
		for x := 0; x < w; x++ {
			c := white(a)
			// Faint diagonal stripes
			if (x+y)/16%2 == 0 {
				c = white(a - 12)
			}
			img.SetRGBA(x, y, c)
		}
	}
	draw.Draw(img, image.Rect(0, h-4, w, h), image.NewUniform(white(255)), image.Point{}, draw.Src)
	return img
}

func backgroundTexture() *image.RGBA {
	const w, h = 64, 256
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		a := uint8(255 - 64*y/h)
		draw.Draw(img, image.Rect(0, y, w, y+1), image.NewUniform(white(a)), image.Point{}, draw.Src)
	}
	return img
}

func highlightTexture() *image.RGBA {
	const w, h = 256, 32
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		a := uint8(255 - 96*x/w)
		draw.Draw(img, image.Rect(x, 0, x+1, h), image.NewUniform(white(a)), image.Point{}, draw.Src)
	}
	return img
}

// boxOutline draws a 64x64 checkbox frame
func boxOutline() *image.RGBA {
	const size, border = 64, 6
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	frame := image.NewUniform(white(255))
	for _, r := range []image.Rectangle{
		image.Rect(4, 4, size-4, 4+border),
		image.Rect(4, size-4-border, size-4, size-4),
		image.Rect(4, 4, 4+border, size-4),
		image.Rect(size-4-border, 4, size-4, size-4),
	} {
		draw.Draw(img, r, frame, image.Point{}, draw.Src)
	}
	return img
}

func boxTexture() *image.RGBA {
	return boxOutline()
}

func tickTexture() *image.RGBA {
	img := boxOutline()
	z := vector.NewRasterizer(64, 64)
	z.MoveTo(16, 33)
	z.LineTo(27, 44)
	z.LineTo(49, 19)
	z.LineTo(54, 25)
	z.LineTo(27, 54)
	z.LineTo(11, 39)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(white(255)), image.Point{})
	return img
}

func arrowTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	z := vector.NewRasterizer(64, 64)
	z.MoveTo(18, 10)
	z.LineTo(50, 32)
	z.LineTo(18, 54)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(white(255)), image.Point{})
	return img
}

// previewTexture is a checkerboard used by info pane images
func previewTexture() *image.RGBA {
	const w, h, cell = 256, 128, 16
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 70, G: 110, B: 170, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 220, G: 220, B: 220, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
