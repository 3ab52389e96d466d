package input

import "sync"

// Keyboard accumulates key events between ticks and produces one State per tick
// Terminals deliver presses and auto-repeats but no releases, so a pressed key
// stays down for holdTicks snapshots after its last press unless released explicitly
// Press/Release are safe to call from the input goroutine while the tick goroutine snapshots
type Keyboard struct {
	mu        sync.Mutex
	holdTicks int64
	tick      int64
	down      [KeyCount]bool
	lastPress [KeyCount]int64
}

// NewKeyboard creates a keyboard with the given hold window (minimum 1 tick)
func NewKeyboard(holdTicks int) *Keyboard {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Keyboard{holdTicks: int64(holdTicks)}
}

// Press marks k down as of the next snapshot
func (kb *Keyboard) Press(k Key) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.down[k] = true
	kb.lastPress[k] = kb.tick
}

// Release clears k immediately, for backends that report key-up
func (kb *Keyboard) Release(k Key) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.down[k] = false
}

// Reset releases every key
func (kb *Keyboard) Reset() {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.down = [KeyCount]bool{}
}

// Snapshot returns the state for the current tick and advances the hold clock
func (kb *Keyboard) Snapshot() State {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	var s State
	for k := range s {
		if kb.down[k] && kb.tick-kb.lastPress[k] < kb.holdTicks {
			s[k] = true
		} else {
			kb.down[k] = false
		}
	}
	kb.tick++
	return s
}
