package core

// Handle is a stable reference to a slot in a generational arena
// Lower 32 bits hold the slot index, upper 32 bits the slot generation
// Generation increments when the slot is released, invalidating stale handles
type Handle uint64

// NewHandle packs a slot index and generation
func NewHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) Index() uint32      { return uint32(h) }
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// IsZero reports whether h is the zero handle
// The zero handle addresses a list sentinel and never resolves to a live value
func (h Handle) IsZero() bool { return h == 0 }
