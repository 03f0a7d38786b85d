package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuStateMoveWraps(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)

	s.move(-1, 5)
	assert.Equal(t, 4, s.selection)

	s.move(1, 5)
	assert.Equal(t, 0, s.selection)

	s.move(7, 5)
	assert.Equal(t, 2, s.selection)
}

func TestMenuStateEmptyMenu(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)
	s.selection = 3

	s.move(1, 0)
	assert.Equal(t, 0, s.selection)

	s.selection = 3
	s.clamp(0)
	assert.Equal(t, 0, s.selection)
}

func TestMenuStateClamp(t *testing.T) {
	s := newMenuState()
	for _, tt := range []struct{ selection, count, want int }{
		{7, 3, 2},
		{-2, 3, 0},
		{1, 3, 1},
	} {
		s.selection = tt.selection
		s.clamp(tt.count)
		assert.Equal(t, tt.want, s.selection)
	}
}

func TestMenuStateEnterAndBack(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)
	s.selection = 3

	require.True(t, s.enter("vehicles"))
	assert.Equal(t, []string{MainMenu, "vehicles"}, s.path)
	assert.Equal(t, 0, s.selection)
	s.selection = 2

	assert.False(t, s.back())
	assert.Equal(t, []string{MainMenu}, s.path)
	assert.Equal(t, 3, s.selection)

	// Back does not record where the user was in the popped submenu
	require.True(t, s.enter("vehicles"))
	assert.Equal(t, 0, s.selection)
}

func TestMenuStateReentryUnderAnotherParent(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)
	require.True(t, s.enter("a"))
	s.selection = 3
	require.True(t, s.enter("b"))
	require.True(t, s.enter("a"))
	assert.Equal(t, 3, s.selection)
	s.selection = 1

	assert.False(t, s.back())
	assert.Equal(t, "b", s.current())
	assert.False(t, s.back())
	assert.Equal(t, "a", s.current())
	assert.Equal(t, 3, s.selection)
}

func TestMenuStateBackAtRoot(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)

	assert.True(t, s.back())
	assert.Equal(t, []string{MainMenu}, s.path)
}

func TestMenuStateSelfReentry(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)
	require.True(t, s.enter("loop"))
	require.True(t, s.enter("loop"))
	assert.Equal(t, []string{MainMenu, "loop", "loop"}, s.path)
}

func TestMenuStateDepthLimit(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)
	for i := 1; i < maxDepth; i++ {
		require.True(t, s.enter("nested"))
	}
	assert.False(t, s.enter("nested"))
	assert.Len(t, s.path, maxDepth)
}

func TestMenuStateCloseRemembersTop(t *testing.T) {
	s := newMenuState()
	s.open(MainMenu)
	s.selection = 4
	s.close()

	assert.False(t, s.isOpen())
	assert.Equal(t, "", s.current())
	assert.Equal(t, 0, s.selection)

	s.open(MainMenu)
	assert.Equal(t, 4, s.selection)
}
