package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Mono    FontName = "mono"
	Italic  FontName = "italic"
	Small   FontName = "small"
)

// BaseSize is the pixel size of a face drawn at text scale 1.0 on a 720p screen
const BaseSize = 32

// menuFaces maps the menu's numeric font ids to faces
var menuFaces = []FontName{Regular, Bold, Mono, Italic}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, BaseSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadGoFonts registers every face the overlay uses, built from the Go font family
func LoadGoFonts() error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, BaseSize},
		{Bold, gobold.TTF, BaseSize},
		{Mono, gomono.TTF, BaseSize},
		{Italic, goitalic.TTF, BaseSize},
		{Small, goregular.TTF, 14},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

// ForMenu returns the face for a menu font id. Unknown ids use Regular.
func ForMenu(id int) FontName {
	if id < 0 || id >= len(menuFaces) {
		return Regular
	}
	return menuFaces[id]
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
