package input

// Key identifies one slot of the keyboard state array
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyCount
)

var keyNames = [KeyCount]string{"up", "down", "left", "right", "fire"}

func (k Key) String() string {
	if k >= KeyCount {
		return "invalid"
	}
	return keyNames[k]
}

// State is the per-tick boolean key array consumed by the simulation
// Indexing with a Key outside [0, KeyCount) is a programmer error and panics
type State [KeyCount]bool

// Pressed reports whether k is held this tick
func (s State) Pressed(k Key) bool { return s[k] }

// Snapshot returns s itself, a fixed State is its own Source
func (s State) Snapshot() State { return s }

// Source produces the key state once per tick
type Source interface {
	Snapshot() State
}
