package menu

// MainMenu is the identifier of the root menu
const MainMenu = "mainmenu"

// maxDepth guards against a caller nesting a submenu into itself every frame
const maxDepth = 64

// menuState is the navigation state that survives between frames
type menuState struct {
	path      []string
	memory    map[string]int // last selected option per submenu
	selection int
}

func newMenuState() menuState {
	return menuState{memory: make(map[string]int)}
}

func (s *menuState) isOpen() bool {
	return len(s.path) > 0
}

// current returns the submenu on top of the path, or "" when closed
func (s *menuState) current() string {
	if len(s.path) == 0 {
		return ""
	}
	return s.path[len(s.path)-1]
}

func (s *menuState) open(root string) {
	s.path = append(s.path[:0], root)
	s.selection = s.memory[root]
}

// enter pushes name, remembering where the user was in the previous submenu.
// It reports false when the path is already at its maximum depth.
func (s *menuState) enter(name string) bool {
	if len(s.path) >= maxDepth {
		return false
	}
	s.memory[s.current()] = s.selection
	s.path = append(s.path, name)
	s.selection = s.memory[name]
	return true
}

// back pops one level and restores the selection of the new top. Only enter
// and close write memory, so a submenu open at two depths keeps the index of the
// outer visit. At the root it reports true and leaves the path alone: the
// caller closes the menu instead.
func (s *menuState) back() (atRoot bool) {
	if len(s.path) <= 1 {
		return true
	}
	s.path = s.path[:len(s.path)-1]
	s.selection = s.memory[s.current()]
	return false
}

func (s *menuState) close() {
	if s.isOpen() {
		s.memory[s.current()] = s.selection
	}
	s.path = s.path[:0]
	s.selection = 0
}

// move shifts the selection by delta with wraparound over count options
func (s *menuState) move(delta, count int) {
	if count <= 0 {
		s.selection = 0
		return
	}
	s.selection = ((s.selection+delta)%count + count) % count
}

// clamp keeps the selection inside [0, count-1], or 0 for an empty menu
func (s *menuState) clamp(count int) {
	switch {
	case count <= 0 || s.selection < 0:
		s.selection = 0
	case s.selection >= count:
		s.selection = count - 1
	}
}
