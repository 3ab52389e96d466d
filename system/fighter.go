package system

import (
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
	"github.com/lixenwraith/side-fighter/vmath"
)

// FighterSystem integrates fighter movement and resolves ship-to-ship contact
// It only marks deaths, CullSystem unlinks them
type FighterSystem struct {
	world *engine.World
}

// NewFighterSystem creates a new fighter movement system
func NewFighterSystem(world *engine.World) engine.System {
	return &FighterSystem{world: world}
}

func (s *FighterSystem) Init() {}

func (s *FighterSystem) Name() string { return "fighter" }

func (s *FighterSystem) Priority() int { return parameter.PriorityFighter }

func (s *FighterSystem) Update() {
	w := s.world
	height := float64(w.Config.Stage.Height)

	w.Fighters.Range(func(h core.Handle, e *component.Entity) bool {
		e.X += e.DX
		e.Y += e.DY

		if h == w.Player {
			return true
		}

		if e.Faction == core.FactionAlien {
			// Flips on every tick spent past an edge, a spawn above the top edge jitters in place
			if e.Y < 0 || e.Y >= height-float64(e.H) {
				e.DY = -e.DY
			}
		}

		// Left the screen, removed without effects since x is no longer positive
		if e.X < -float64(e.W) {
			e.Health = 0
		}
		return true
	})

	s.resolveContact()
}

// resolveContact kills the player and every fighter touching it
func (s *FighterSystem) resolveContact() {
	w := s.world
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}

	w.Fighters.Range(func(h core.Handle, e *component.Entity) bool {
		if h == w.Player || e.Dead() {
			return true
		}
		if Collides(p, e) {
			p.Health = 0
			e.Health = 0
		}
		return true
	})
}

// Collides tests two entities' bounding boxes
func Collides(a, b *component.Entity) bool {
	return vmath.Overlap(a.X, a.Y, float64(a.W), float64(a.H), b.X, b.Y, float64(b.W), float64(b.H))
}
