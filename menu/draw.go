package menu

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ImagePrefix marks an OptionPlus extra line as an image:
// "!IMG:<dict>/<name>W<width>H<height>", width and height in pixels.
const ImagePrefix = "!IMG:"

// rowTextPad is the gap between a row's top edge and its text, as a share of the row height
const rowTextPad = 0.15

type zeroMeasurer struct{}

func (zeroMeasurer) MeasureText(string, float64, int) float64 { return 0 }

func (m *Menu) measurer() Measurer {
	if m.renderer == nil {
		return zeroMeasurer{}
	}
	return m.renderer
}

func (m *Menu) aspect() float64 {
	if m.renderer == nil {
		return 16.0 / 9.0
	}
	return aspectRatio(m.renderer)
}

// Title draws the menu banner. Declare it before any other item.
func (m *Menu) Title(text string) {
	m.title(text, m.style.TitleTextSize, m.style.TitleSprite)
}

// TitleScaled draws the banner with a custom text scale
func (m *Menu) TitleScaled(text string, scale float64) {
	m.title(text, scale, m.style.TitleSprite)
}

// TitleSprite draws the banner over a custom texture. Textures should be 4:1.
func (m *Menu) TitleSprite(text string, sprite Sprite) {
	m.title(text, m.style.TitleTextSize, sprite)
}

func (m *Menu) title(text string, scale float64, sprite Sprite) {
	if !m.state.isOpen() {
		return
	}
	s := m.style
	y := s.Y + m.headerHeight

	if sprite.IsZero() {
		m.layers.enqueue(LayerBackgroundRects, rectCommand(s.X, y, s.Width, s.TitleHeight, s.TitleBackgroundColor))
	} else {
		m.layers.enqueue(LayerBackgroundSprites, spriteCommand(sprite, s.X, y, s.Width, s.TitleHeight, s.TitleBackgroundColor))
	}

	scale = FitScale(m.measurer(), text, s.Width-2*s.TextMargin, scale, s.TitleMinTextSize, s.TitleFont)
	m.layers.enqueue(LayerText, textCommand(text, s.TitleFont, s.X+s.Width/2, y+s.TitleTextOffset, scale, s.TitleTextColor, JustifyCenter))
	m.headerHeight += s.TitleHeight
}

// Subtitle draws a strip below the title. Declare it right after Title.
func (m *Menu) Subtitle(text string, allCaps bool) {
	if !m.state.isOpen() {
		return
	}
	s := m.style
	y := s.Y + m.headerHeight
	if allCaps {
		text = strings.ToUpper(text)
	}

	m.layers.enqueue(LayerBackgroundRects, rectCommand(s.X, y, s.Width, s.SubtitleHeight, s.SubtitleBackgroundColor))
	m.layers.enqueue(LayerText, textCommand(text, s.OptionsFont, s.X+s.TextMargin, y+s.SubtitleHeight*rowTextPad, s.SubtitleTextSize, s.SubtitleTextColor, JustifyLeft))
	m.headerHeight += s.SubtitleHeight
}

// Footer replaces the default footer with a solid color.
// Only the first footer call of a frame counts.
func (m *Menu) Footer(c color.RGBA) {
	m.setFooter(footerSpec{kind: footerColor, color: c})
}

// FooterSprite replaces the default footer with a texture
func (m *Menu) FooterSprite(sprite Sprite) {
	m.setFooter(footerSpec{kind: footerSprite, sprite: sprite, color: color.RGBA{R: 255, G: 255, B: 255, A: 255}})
}

func (m *Menu) setFooter(f footerSpec) {
	if m.footerSet {
		return
	}
	m.footer = f
	m.footerSet = true
}

// firstVisible returns the index of the topmost drawn row
func (m *Menu) firstVisible() int {
	return max(0, m.state.selection-m.style.MaxDisplay+1)
}

// drawRows queues the window of rows around the selection. The selection must
// already be clamped to count.
func (m *Menu) drawRows(count int) {
	first := m.firstVisible()
	last := min(count, first+m.style.MaxDisplay)
	for i := first; i < last; i++ {
		e, _ := m.options.entry(i)
		y := m.style.Y + m.headerHeight + float64(i-first)*m.style.OptionHeight
		highlighted := i == m.state.selection
		m.drawRow(e.text, y, highlighted)
		if e.decorate != nil {
			e.decorate(y, highlighted)
		}
	}
}

func (m *Menu) visibleRows(count int) int {
	return min(count, m.style.MaxDisplay)
}

// drawRow queues the row highlight and label for a visible option
func (m *Menu) drawRow(text string, y float64, highlighted bool) {
	s := m.style
	textColor := s.OptionsTextColor
	if highlighted {
		textColor = s.OptionsTextSelectColor
		if s.HighlightSprite.IsZero() {
			m.layers.enqueue(LayerHighlightSprites, rectCommand(s.X, y, s.Width, s.OptionHeight, s.OptionsBackgroundSelectColor))
		} else {
			m.layers.enqueue(LayerHighlightSprites, spriteCommand(s.HighlightSprite, s.X, y, s.Width, s.OptionHeight, s.OptionsBackgroundSelectColor))
		}
	}
	m.layers.enqueue(LayerText, textCommand(text, s.OptionsFont, s.X+s.TextMargin, y+s.OptionHeight*rowTextPad, s.OptionTextSize, textColor, JustifyLeft))
}

// drawValue queues a right-aligned value, bracketed while the row is selected
func (m *Menu) drawValue(value string, y float64, highlighted bool) {
	s := m.style
	textColor := s.OptionsTextColor
	if highlighted {
		textColor = s.OptionsTextSelectColor
		value = "< " + value + " >"
	}
	m.layers.enqueue(LayerText, textCommand(value, s.OptionsFont, s.X+s.Width-s.OptionRightMargin, y+s.OptionHeight*rowTextPad, s.OptionTextSize, textColor, JustifyRight))
}

// drawIcon queues a square sprite at the right edge of a row, or fallback text
// when no sprite is configured
func (m *Menu) drawIcon(sprite Sprite, fallback string, y float64, highlighted bool) {
	if sprite.IsZero() {
		m.drawValue(fallback, y, false)
		return
	}
	s := m.style
	h := s.OptionHeight * 0.8
	w := h / m.aspect()
	x := s.X + s.Width - s.OptionRightMargin/2 - w
	tint := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if highlighted {
		tint = s.OptionsTextSelectColor
	}
	m.layers.enqueue(LayerForegroundSprites, spriteCommand(sprite, x, y+(s.OptionHeight-h)/2, w, h, tint))
}

// drawChrome queues everything that depends on the final option count
func (m *Menu) drawChrome(count int) {
	s := m.style
	bodyY := s.Y + m.headerHeight
	bodyH := float64(m.visibleRows(count)) * s.OptionHeight

	if bodyH > 0 {
		if s.BackgroundSprite.IsZero() {
			m.layers.enqueue(LayerBackgroundRects, rectCommand(s.X, bodyY, s.Width, bodyH, s.OptionsBackgroundColor))
		} else {
			m.layers.enqueue(LayerBackgroundSprites, spriteCommand(s.BackgroundSprite, s.X, bodyY, s.Width, bodyH, s.OptionsBackgroundColor))
		}
	}

	footerY := bodyY + bodyH
	switch m.footer.kind {
	case footerSprite:
		m.layers.enqueue(LayerBackgroundSprites, spriteCommand(m.footer.sprite, s.X, footerY, s.Width, s.OptionHeight, m.footer.color))
	case footerColor:
		m.layers.enqueue(LayerBackgroundRects, rectCommand(s.X, footerY, s.Width, s.OptionHeight, m.footer.color))
	default:
		m.layers.enqueue(LayerBackgroundRects, rectCommand(s.X, footerY, s.Width, s.OptionHeight, s.FooterColor))
	}

	current := 0
	if count > 0 {
		current = m.state.selection + 1
	}
	counter := fmt.Sprintf("%d / %d", current, count)
	m.layers.enqueue(LayerText, textCommand(counter, s.OptionsFont, s.X+s.Width-s.OptionRightMargin, footerY+s.OptionHeight*rowTextPad, s.OptionTextSize, s.FooterTextColor, JustifyRight))

	if e, ok := m.options.entry(m.state.selection); ok && len(e.details) > 0 {
		m.drawDetails(e.details, footerY+s.OptionHeight+s.TextMargin)
	}
}

// drawDetails queues the description pane below the footer
func (m *Menu) drawDetails(details []string, y float64) {
	s := m.style
	maxWidth := s.Width - 2*s.TextMargin

	var lines []string
	for _, d := range details {
		wrapped := Wrap(m.measurer(), d, maxWidth, s.DetailTextSize, s.OptionsFont)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}

	h := float64(len(lines))*s.DetailLineHeight + 2*s.TextMargin
	m.layers.enqueue(LayerBackgroundRects, rectCommand(s.X, y, s.Width, h, s.OptionsBackgroundColor))
	for i, line := range lines {
		ly := y + s.TextMargin + float64(i)*s.DetailLineHeight
		m.layers.enqueue(LayerText, textCommand(line, s.OptionsFont, s.X+s.TextMargin, ly, s.DetailTextSize, s.DetailTextColor, JustifyLeft))
	}
}

// infoImage is a parsed ImagePrefix line
type infoImage struct {
	sprite        Sprite
	width, height int
}

// parseImageLine decodes "!IMG:<dict>/<name>W<w>H<h>"
func parseImageLine(line string) (infoImage, bool) {
	spec, ok := strings.CutPrefix(line, ImagePrefix)
	if !ok {
		return infoImage{}, false
	}
	hIdx := strings.LastIndex(spec, "H")
	if hIdx <= 0 {
		return infoImage{}, false
	}
	wIdx := strings.LastIndex(spec[:hIdx], "W")
	if wIdx <= 0 {
		return infoImage{}, false
	}
	w, err := strconv.Atoi(spec[wIdx+1 : hIdx])
	if err != nil || w <= 0 {
		return infoImage{}, false
	}
	h, err := strconv.Atoi(spec[hIdx+1:])
	if err != nil || h <= 0 {
		return infoImage{}, false
	}

	img := infoImage{width: w, height: h}
	if dict, name, found := strings.Cut(spec[:wIdx], "/"); found {
		img.sprite = Sprite{Dict: dict, Name: name}
	} else {
		img.sprite = Sprite{Name: spec[:wIdx]}
	}
	return img, true
}

// drawInfoBox queues the extra pane shown right of the menu for a selected OptionPlus
func (m *Menu) drawInfoBox(title string, extra []string) {
	s := m.style
	x := s.X + s.Width + s.InfoBoxGap
	y := s.Y + m.headerHeight
	innerW := s.InfoBoxWidth - 2*s.TextMargin

	m.layers.enqueue(LayerBackgroundRects, rectCommand(x, y, s.InfoBoxWidth, s.OptionHeight, s.TitleBackgroundColor))
	m.layers.enqueue(LayerText, textCommand(title, s.OptionsFont, x+s.TextMargin, y+s.OptionHeight*rowTextPad, s.OptionTextSize, s.TitleTextColor, JustifyLeft))

	cursor := y + s.OptionHeight + s.TextMargin
	var body []DrawCommand
	for _, line := range extra {
		if img, ok := parseImageLine(line); ok {
			h := innerW * float64(img.height) / float64(img.width) * m.aspect()
			body = append(body, spriteCommand(img.sprite, x+s.TextMargin, cursor, innerW, h, color.RGBA{R: 255, G: 255, B: 255, A: 255}))
			cursor += h + s.TextMargin
			continue
		}
		wrapped := Wrap(m.measurer(), line, innerW, s.DetailTextSize, s.OptionsFont)
		if len(wrapped) == 0 {
			cursor += s.DetailLineHeight
			continue
		}
		for _, l := range wrapped {
			body = append(body, textCommand(l, s.OptionsFont, x+s.TextMargin, cursor, s.DetailTextSize, s.DetailTextColor, JustifyLeft))
			cursor += s.DetailLineHeight
		}
	}

	bodyTop := y + s.OptionHeight
	m.layers.enqueue(LayerBackgroundRects, rectCommand(x, bodyTop, s.InfoBoxWidth, cursor-bodyTop+s.TextMargin, s.OptionsBackgroundColor))
	for _, c := range body {
		if c.Kind == CommandSprite {
			m.layers.enqueue(LayerForegroundSprites, c)
		} else {
			m.layers.enqueue(LayerText, c)
		}
	}
}
