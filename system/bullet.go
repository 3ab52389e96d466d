package system

import (
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
)

// BulletSystem moves bullets and resolves hits against opposing fighters
type BulletSystem struct {
	world *engine.World
}

// NewBulletSystem creates a new bullet system
func NewBulletSystem(world *engine.World) engine.System {
	return &BulletSystem{world: world}
}

func (s *BulletSystem) Init() {}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

// Update removes bullets that hit, leave the screen, or stopped moving
func (s *BulletSystem) Update() {
	w := s.world
	w.Bullets.Sweep(func(_ core.Handle, b *component.Entity) bool {
		b.X += b.DX
		b.Y += b.DY

		if s.hitFighter(b) || s.offScreen(b) || b.Inert() {
			return false
		}
		return true
	})
}

// hitFighter damages the first live opposing fighter overlapping b, at most one per bullet
func (s *BulletSystem) hitFighter(b *component.Entity) bool {
	w := s.world
	hit := false

	w.Fighters.Range(func(h core.Handle, f *component.Entity) bool {
		if f.Faction == b.Faction || f.Dead() || !Collides(b, f) {
			return true
		}
		b.Health = 0
		f.Health--
		if h == w.Player && !f.Dead() {
			w.Play(core.SoundPlayerTakeDamage, core.ChannelPlayer)
		}
		hit = true
		return false
	})
	return hit
}

func (s *BulletSystem) offScreen(b *component.Entity) bool {
	stage := s.world.Config.Stage
	return b.X < -float64(b.W) || b.Y < -float64(b.H) ||
		b.X > float64(stage.Width) || b.Y > float64(stage.Height)
}
