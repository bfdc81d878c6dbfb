package tui

import "github.com/vovakirdan/blockbreak/internal/core"

// heldKeys emulates key-up events, which terminals do not report.
// A direction counts as held for a number of ticks after its last press;
// auto-repeat keeps refreshing it while the key is down.
type heldKeys struct {
	window    int
	remaining map[core.Action]int
}

func newHeldKeys(window int) heldKeys {
	return heldKeys{
		window:    max(window, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press marks a direction as held. Pressing one direction releases the other.
func (h heldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.window
}

// Apply sets every held direction on the frame.
func (h heldKeys) Apply(f *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			f.Set(a)
		}
	}
}

// Tick ages every held direction by one tick.
func (h heldKeys) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Release drops every held direction.
func (h heldKeys) Release() {
	clear(h.remaining)
}
