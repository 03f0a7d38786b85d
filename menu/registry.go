package menu

// optionEntry is one option declared during the current frame
type optionEntry struct {
	text    string
	submenu string
	details []string

	// decorate queues the row's value or icon once its position is known
	decorate func(y float64, highlighted bool)
}

// registry holds the options declared so far this frame, in declaration order
type registry struct {
	entries []optionEntry
}

// declare registers an option and returns its index
func (r *registry) declare(e optionEntry) int {
	r.entries = append(r.entries, e)
	return len(r.entries) - 1
}

// decorate attaches the value drawing of option i. Negative indexes are ignored.
func (r *registry) decorate(i int, fn func(y float64, highlighted bool)) {
	if i < 0 || i >= len(r.entries) {
		return
	}
	r.entries[i].decorate = fn
}

func (r *registry) count() int {
	return len(r.entries)
}

func (r *registry) entry(i int) (optionEntry, bool) {
	if i < 0 || i >= len(r.entries) {
		return optionEntry{}, false
	}
	return r.entries[i], true
}

func (r *registry) reset() {
	clear(r.entries)
	r.entries = r.entries[:0]
}
