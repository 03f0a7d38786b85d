package menu

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	cfg "github.com/automoto/nativemenu/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuToggleOpensAndCloses(t *testing.T) {
	h := newHarness(t)
	opened, closed := 0, 0
	h.menu.RegisterOnOpen(func() { opened++ })
	h.menu.RegisterOnClose(func() { closed++ })

	h.frame(options(3))
	assert.False(t, h.menu.IsOpen())
	assert.Empty(t, h.out.calls)

	h.open(options(3))
	require.True(t, h.menu.IsOpen())
	assert.Equal(t, []string{MainMenu}, h.menu.Path())
	assert.Equal(t, 1, opened)
	assert.Equal(t, 3, h.menu.OptionCount())
	assert.Contains(t, h.out.texts(), "Main")
	assert.Contains(t, h.out.texts(), "1 / 3")

	h.tap(ControlToggle, options(3))
	assert.False(t, h.menu.IsOpen())
	assert.Empty(t, h.menu.Path())
	assert.Equal(t, 1, closed)
	assert.Empty(t, h.out.calls)
}

func TestMenuSelectionStaysInRange(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d options", n), func(t *testing.T) {
			h := newHarness(t)
			h.open(options(n))
			for i := 0; i < n+2; i++ {
				h.tap(ControlDown, options(n))
				assert.GreaterOrEqual(t, h.menu.Selection(), 0)
				assert.Less(t, h.menu.Selection(), n)
			}
		})
	}
}

func TestMenuSelectionClampsWhenOptionsShrink(t *testing.T) {
	h := newHarness(t)
	h.open(options(5))
	for i := 0; i < 4; i++ {
		h.tap(ControlDown, options(5))
	}
	require.Equal(t, 4, h.menu.Selection())

	h.frame(options(2))
	assert.Equal(t, 1, h.menu.Selection())
	assert.Contains(t, h.out.texts(), "2 / 2")
}

func TestMenuEmptyMenuIgnoresNavigation(t *testing.T) {
	h := newHarness(t)
	h.open(options(0))

	for _, ctl := range []Control{ControlDown, ControlUp, ControlAccept, ControlLeft, ControlRight} {
		h.tap(ctl, options(0))
		assert.Equal(t, 0, h.menu.Selection())
		assert.Equal(t, []string{MainMenu}, h.menu.Path())
	}
	assert.Contains(t, h.out.texts(), "0 / 0")
}

func TestMenuSelectionWraps(t *testing.T) {
	h := newHarness(t)
	h.open(options(3))

	h.tap(ControlUp, options(3))
	assert.Equal(t, 2, h.menu.Selection())

	h.tap(ControlDown, options(3))
	assert.Equal(t, 0, h.menu.Selection())
}

func TestMenuOptionReturnsTrueOnlyWhenSelected(t *testing.T) {
	h := newHarness(t)
	var first, second bool
	declare := func(m *Menu) {
		first = m.Option("first")
		second = m.Option("second")
	}
	h.open(declare)

	h.press(ControlAccept, declare)
	assert.True(t, first)
	assert.False(t, second)

	h.frame(declare)
	assert.False(t, first)
}

func submenuTree(entered map[string]bool) func(m *Menu) {
	return func(m *Menu) {
		if m.CurrentMenu(MainMenu) {
			m.Title("Main")
			m.Option("zero")
			m.Option("one")
			m.Option("two")
			if m.MenuOption("B", "b") {
				entered["b"] = true
			}
			if m.MenuOption("C", "c") {
				entered["c"] = true
			}
		}
		if m.CurrentMenu("b") {
			m.Title("B")
			m.Option("b0")
			m.Option("b1")
			m.Option("b2")
		}
		if m.CurrentMenu("c") {
			m.Title("C")
			m.Option("c0")
		}
	}
}

func TestMenuSubmenuMemory(t *testing.T) {
	h := newHarness(t)
	entered := map[string]bool{}
	tree := submenuTree(entered)
	h.open(tree)

	for i := 0; i < 3; i++ {
		h.tap(ControlDown, tree)
	}
	require.Equal(t, 3, h.menu.Selection())

	h.tap(ControlAccept, tree)
	assert.True(t, entered["b"])
	assert.Equal(t, []string{MainMenu, "b"}, h.menu.Path())
	assert.Equal(t, 0, h.menu.Selection())
	assert.Contains(t, h.out.texts(), "B")

	h.tap(ControlDown, tree)
	h.tap(ControlDown, tree)
	require.Equal(t, 2, h.menu.Selection())

	h.tap(ControlBack, tree)
	assert.Equal(t, []string{MainMenu}, h.menu.Path())
	assert.Equal(t, 3, h.menu.Selection())

	// Visit another submenu in between
	h.tap(ControlDown, tree)
	h.tap(ControlAccept, tree)
	assert.Equal(t, []string{MainMenu, "c"}, h.menu.Path())
	h.tap(ControlBack, tree)
	assert.Equal(t, 4, h.menu.Selection())

	h.tap(ControlUp, tree)
	h.tap(ControlAccept, tree)
	assert.Equal(t, []string{MainMenu, "b"}, h.menu.Path())
	assert.Equal(t, 0, h.menu.Selection())

	h.tap(ControlBack, tree)
	assert.Equal(t, 3, h.menu.Selection())
}

func TestMenuBackAtRootCloses(t *testing.T) {
	h := newHarness(t)
	closed := 0
	h.menu.RegisterOnClose(func() { closed++ })
	h.open(options(2))

	h.press(ControlBack, options(2))
	assert.False(t, h.menu.IsOpen())
	assert.Equal(t, 1, closed)
	assert.Empty(t, h.out.calls)
}

func TestMenuCloseAndReopen(t *testing.T) {
	h := newHarness(t)
	h.open(options(5))
	h.tap(ControlDown, options(5))
	h.tap(ControlDown, options(5))
	require.Equal(t, 2, h.menu.Selection())

	// Hold down long enough to accelerate, then close while still holding it
	h.input[ControlDown] = true
	for i := 0; i < 40; i++ {
		h.frame(options(5))
	}
	require.Greater(t, h.menu.Controls().Tier(ControlDown), 0)
	held := h.menu.Selection()

	h.press(ControlToggle, options(5))
	require.False(t, h.menu.IsOpen())
	assert.Equal(t, 0, h.menu.Controls().Tier(ControlDown))

	delete(h.input, ControlDown)
	h.frame(options(5))

	h.open(options(5))
	require.True(t, h.menu.IsOpen())
	assert.Equal(t, held, h.menu.Selection())
	assert.Equal(t, 0, h.menu.Controls().Tier(ControlDown))
}

func TestMenuCloseDiscardsPendingDraws(t *testing.T) {
	h := newHarness(t)
	h.open(options(1))

	var after bool
	h.frame(func(m *Menu) {
		m.Title("Main")
		m.Option("a")
		m.CloseMenu()
		after = m.Option("b")
	})
	assert.Empty(t, h.out.calls)
	assert.Empty(t, h.menu.Pending())
	assert.Equal(t, 0, h.menu.OptionCount())
	assert.False(t, after)
}

func TestMenuIntOption(t *testing.T) {
	h := newHarness(t)
	v, other := 0, 50
	var changed bool
	declare := func(m *Menu) {
		changed = m.IntOption("value", &v, 0, 10, 2)
		m.IntOption("other", &other, 0, 10, 1)
	}
	h.open(declare)
	assert.Equal(t, 10, other, "out-of-range value snaps to the nearest bound")

	h.press(ControlLeft, declare)
	assert.True(t, changed)
	assert.Equal(t, 10, v)
	assert.Contains(t, h.out.texts(), "< 10 >")
	h.frame(declare)
	assert.False(t, changed)

	h.tap(ControlRight, declare)
	assert.Equal(t, 0, v)
	h.tap(ControlRight, declare)
	assert.Equal(t, 2, v)

	h.press(ControlAccept, declare)
	assert.True(t, changed)
	assert.Equal(t, 2, v)
}

func TestMenuFloatOptionFormatsByStep(t *testing.T) {
	h := newHarness(t)
	f := 0.25
	declare := func(m *Menu) {
		m.FloatOption("float", &f, 0, 1, 0.25)
	}
	h.open(declare)
	assert.Contains(t, h.out.texts(), "< 0.25 >")

	h.tap(ControlRight, declare)
	assert.InDelta(t, 0.5, f, 1e-9)
	assert.Contains(t, h.out.texts(), "< 0.50 >")
}

func TestMenuBoolOption(t *testing.T) {
	h := newHarness(t)
	on := false
	var accepted bool
	declare := func(m *Menu) {
		accepted = m.BoolOption("toggle", &on)
	}
	h.open(declare)

	h.press(ControlAccept, declare)
	assert.True(t, accepted)
	assert.True(t, on)

	h.frame(declare)
	h.tap(ControlLeft, declare)
	assert.True(t, on, "left and right do not toggle")

	h.tap(ControlAccept, declare)
	assert.False(t, on)
}

func TestMenuStringArray(t *testing.T) {
	h := newHarness(t)
	idx := 5
	values := []string{"low", "mid", "high"}
	declare := func(m *Menu) {
		m.StringArray("quality", values, &idx)
	}
	h.open(declare)
	assert.Equal(t, 2, idx)
	assert.Contains(t, h.out.texts(), "< high >")

	h.tap(ControlRight, declare)
	assert.Equal(t, 0, idx)
	h.tap(ControlLeft, declare)
	assert.Equal(t, 2, idx)
}

func TestMenuEmptyArrayIsDisabled(t *testing.T) {
	h := newHarness(t)
	idx := 3
	var accepted bool
	declare := func(m *Menu) {
		accepted = m.IntArray("empty", nil, &idx)
	}
	h.open(declare)

	for _, ctl := range []Control{ControlAccept, ControlLeft, ControlRight} {
		h.press(ctl, declare)
		assert.False(t, accepted)
		assert.Equal(t, 3, idx)
		h.frame(declare)
	}
}

func TestMenuFloatArray(t *testing.T) {
	h := newHarness(t)
	idx := 0
	declare := func(m *Menu) {
		m.FloatArray("volume", []float64{0, 0.5, 1}, &idx)
	}
	h.open(declare)

	h.tap(ControlRight, declare)
	assert.Equal(t, 1, idx)
	assert.Contains(t, h.out.texts(), "< 0.5 >")
}

func TestMenuOptionPlus(t *testing.T) {
	h := newHarness(t)
	lefts, rights := 0, 0
	var highlighted, otherHighlighted bool
	declare := func(m *Menu) {
		m.OptionPlus("plus", []string{"first line", ImagePrefix + "commonmenu/preview" + "W64H32"}, PlusOptions{
			OnLeft:      func() { lefts++ },
			OnRight:     func() { rights++ },
			Highlighted: &highlighted,
		})
		m.OptionPlus("other", []string{"hidden"}, PlusOptions{Title: "Other", Highlighted: &otherHighlighted})
	}
	h.open(declare)
	assert.True(t, highlighted)
	assert.False(t, otherHighlighted)
	assert.Contains(t, h.out.texts(), "Info")
	assert.Contains(t, h.out.texts(), "first line")
	assert.NotContains(t, h.out.texts(), "hidden")

	var preview bool
	for _, c := range h.out.calls {
		if c.Kind == CommandSprite && c.Sprite == (Sprite{Dict: "commonmenu", Name: "preview"}) {
			preview = true
		}
	}
	assert.True(t, preview)

	h.tap(ControlLeft, declare)
	h.tap(ControlRight, declare)
	h.tap(ControlRight, declare)
	assert.Equal(t, 1, lefts)
	assert.Equal(t, 2, rights)
}

func TestParseImageLine(t *testing.T) {
	img, ok := parseImageLine("!IMG:dict/nameW128H64")
	require.True(t, ok)
	assert.Equal(t, Sprite{Dict: "dict", Name: "name"}, img.sprite)
	assert.Equal(t, 128, img.width)
	assert.Equal(t, 64, img.height)

	img, ok = parseImageLine("!IMG:WaterHouseW10H20")
	require.True(t, ok)
	assert.Equal(t, Sprite{Name: "WaterHouse"}, img.sprite)

	for _, bad := range []string{"plain text", "!IMG:nameW0H10", "!IMG:nameWxH10", "!IMG:H10", "!IMG:name"} {
		_, ok := parseImageLine(bad)
		assert.False(t, ok, bad)
	}
}

func TestMenuDetailsOfSelectedOption(t *testing.T) {
	h := newHarness(t)
	declare := func(m *Menu) {
		m.Option("first", "first details")
		m.Option("second", "second details")
	}
	h.open(declare)
	assert.Contains(t, h.out.texts(), "first details")
	assert.NotContains(t, h.out.texts(), "second details")

	h.tap(ControlDown, declare)
	assert.Contains(t, h.out.texts(), "second details")
}

func TestMenuDetailsWrap(t *testing.T) {
	h := newHarness(t)
	long := "this description is definitely much wider than the menu pane so it must wrap"
	declare := func(m *Menu) {
		m.Option("option", long)
	}
	h.open(declare)

	style := h.menu.Style()
	maxWidth := style.Width - 2*style.TextMargin
	want := Wrap(h.out, long, maxWidth, style.DetailTextSize, style.OptionsFont)
	require.Greater(t, len(want), 1)
	for _, line := range want {
		assert.Contains(t, h.out.texts(), line)
	}
}

func TestMenuScrollWindow(t *testing.T) {
	h := newHarness(t)
	declare := func(m *Menu) {
		for i := 0; i < 15; i++ {
			m.Option(fmt.Sprintf("o%d", i))
		}
	}
	h.open(declare)
	assert.Contains(t, h.out.texts(), "o9")
	assert.NotContains(t, h.out.texts(), "o10")

	for i := 0; i < 12; i++ {
		h.tap(ControlDown, declare)
	}
	require.Equal(t, 12, h.menu.Selection())

	texts := h.out.texts()
	assert.Contains(t, texts, "o3")
	assert.Contains(t, texts, "o12")
	assert.NotContains(t, texts, "o2")
	assert.NotContains(t, texts, "o13")
	assert.Contains(t, texts, "13 / 15")
}

func TestMenuScrollWindowAfterShrink(t *testing.T) {
	h := newHarness(t)
	n := 15
	declare := func(m *Menu) {
		for i := 0; i < n; i++ {
			m.Option(fmt.Sprintf("o%d", i))
		}
	}
	h.open(declare)
	for i := 0; i < 12; i++ {
		h.tap(ControlDown, declare)
	}
	require.Equal(t, 12, h.menu.Selection())

	n = 3
	h.frame(declare)
	assert.Equal(t, 2, h.menu.Selection())

	texts := h.out.texts()
	for _, label := range []string{"o0", "o1", "o2", "3 / 3"} {
		assert.Contains(t, texts, label)
	}

	highlights := 0
	for _, c := range h.out.calls {
		if c.Kind == CommandSprite && c.Sprite == cfg.Menu.HighlightSprite {
			highlights++
		}
		if c.Kind == CommandText && c.Text == "o2" {
			assert.Equal(t, cfg.Menu.OptionsTextSelectColor, c.Color)
		}
	}
	assert.Equal(t, 1, highlights)
}

func TestMenuFrameDrawOrder(t *testing.T) {
	h := newHarness(t)
	h.open(options(3))

	lastRect, highlight, firstText := -1, -1, -1
	for i, c := range h.out.calls {
		switch {
		case c.Kind == CommandRect:
			lastRect = i
		case c.Kind == CommandSprite && c.Sprite == cfg.Menu.HighlightSprite:
			highlight = i
		case c.Kind == CommandText && firstText < 0:
			firstText = i
		}
	}
	require.GreaterOrEqual(t, highlight, 0)
	assert.Greater(t, highlight, lastRect)
	assert.Greater(t, firstText, highlight)
}

func TestMenuFooterFirstCallWins(t *testing.T) {
	h := newHarness(t)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	h.open(func(m *Menu) {
		m.Option("a")
		m.Footer(red)
		m.Footer(blue)
	})

	var colors []color.RGBA
	for _, c := range h.out.calls {
		if c.Kind == CommandRect {
			colors = append(colors, c.Color)
		}
	}
	assert.Contains(t, colors, red)
	assert.NotContains(t, colors, blue)
}

func TestMenuFooterSprite(t *testing.T) {
	h := newHarness(t)
	footer := Sprite{Dict: "commonmenu", Name: "footer"}
	h.open(func(m *Menu) {
		m.Option("a")
		m.FooterSprite(footer)
	})

	var found bool
	for _, c := range h.out.calls {
		if c.Kind == CommandSprite && c.Sprite == footer {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMenuSubtitleAllCaps(t *testing.T) {
	h := newHarness(t)
	h.open(func(m *Menu) {
		m.Title("Main")
		m.Subtitle("settings", true)
		m.Option("a")
	})
	assert.Contains(t, h.out.texts(), "SETTINGS")
}

func TestMenuLongTitleShrinks(t *testing.T) {
	h := newHarness(t)
	title := "an extraordinarily long menu title"
	h.open(func(m *Menu) {
		m.Title(title)
	})

	style := h.menu.Style()
	for _, c := range h.out.calls {
		if c.Kind == CommandText && c.Text == title {
			assert.Less(t, c.Scale, style.TitleTextSize)
			return
		}
	}
	t.Fatal("title not drawn")
}

func TestMenuReadSettingsAppliesNextFrame(t *testing.T) {
	h := newHarness(t)
	moved := cfg.Menu
	moved.X = 0.5
	var fail bool
	h.menu.settings = func() (cfg.MenuConfig, error) {
		if fail {
			return cfg.Menu, errors.New("broken settings")
		}
		return moved, nil
	}
	h.open(options(1))

	h.frame(func(m *Menu) {
		m.ReadSettings()
		m.Option("a")
		assert.Equal(t, cfg.Menu.X, m.Style().X)
	})
	h.frame(options(1))
	assert.Equal(t, 0.5, h.menu.Style().X)

	fail = true
	h.menu.ReadSettings()
	h.frame(options(1))
	assert.Equal(t, 0.5, h.menu.Style().X)
}

func TestMenuBeeps(t *testing.T) {
	h := newHarness(t)
	var beeps []Beep
	h.menu.RegisterOnBeep(func(b Beep) { beeps = append(beeps, b) })

	h.open(options(3))
	h.tap(ControlDown, options(3))
	h.tap(ControlAccept, options(3))
	h.tap(ControlBack, options(3))

	assert.Equal(t, []Beep{BeepSelect, BeepNavigate, BeepSelect, BeepBack}, beeps)
}

func TestMenuDeclarationsWhileClosed(t *testing.T) {
	h := newHarness(t)
	v := 42
	h.frame(func(m *Menu) {
		assert.False(t, m.CurrentMenu(MainMenu))
		m.Title("Main")
		assert.False(t, m.IntOption("v", &v, 0, 10, 1))
		assert.False(t, m.Option("a"))
	})
	assert.Equal(t, 42, v)
	assert.Empty(t, h.out.calls)
}
