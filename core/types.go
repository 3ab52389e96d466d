package core

// Faction tags the side an entity fights for
// Bullets only damage fighters of the opposing faction
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionAlien
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionAlien:
		return "alien"
	default:
		return "unknown"
	}
}

// ShotMode selects the enemy bullet pattern
type ShotMode uint8

const (
	ShotAimed ShotMode = iota // Directed at the player center with randomized speed
	ShotHeavy                 // Fixed straight shot, ignores player position
)

// Rect is an integer rectangle, top-left origin
type Rect struct {
	X, Y, W, H int
}
