package component

import (
	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/core"
)

// Debris is one falling quadrant of a destroyed fighter
type Debris struct {
	X, Y   float64
	DX, DY float64
	Life   int

	Sprite *asset.Sprite // Source fighter sprite, borrowed
	Rect   core.Rect     // Quadrant of Sprite drawn for this fragment
}

// Particle is one explosion spark
// A doubles as remaining life and draw alpha, it fades to transparent as it counts down
type Particle struct {
	X, Y   float64
	DX, DY float64
	Color  core.RGB
	A      int
}

// Alpha returns the draw alpha, saturated to a byte
func (p *Particle) Alpha() uint8 {
	switch {
	case p.A <= 0:
		return 0
	case p.A > 255:
		return 255
	default:
		return uint8(p.A)
	}
}

// Star is cosmetic background state, reseeded only on stage reset
type Star struct {
	X, Y  float64
	Speed int
}
