package system

import (
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
)

// EffectSystem ages explosion particles and debris fragments
type EffectSystem struct {
	world *engine.World
}

// NewEffectSystem creates a new effect system
func NewEffectSystem(world *engine.World) engine.System {
	return &EffectSystem{world: world}
}

func (s *EffectSystem) Init() {}

func (s *EffectSystem) Name() string { return "effect" }

func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) Update() {
	w := s.world

	w.Explosions.Sweep(func(_ core.Handle, p *component.Particle) bool {
		p.X += p.DX
		p.Y += p.DY
		p.A--
		return p.A > 0
	})

	gravity := w.Config.Effects.Gravity
	w.Debris.Sweep(func(_ core.Handle, d *component.Debris) bool {
		d.X += d.DX
		d.Y += d.DY
		d.DY += gravity
		d.Life--
		return d.Life > 0
	})
}

// SpawnBurst emits the full destruction effect for a fighter: one explosion and one debris burst
func SpawnBurst(w *engine.World, e *component.Entity) {
	cx, cy := e.Center()
	SpawnExplosion(w, cx, cy, w.Config.Effects.ExplosionParticles)
	SpawnDebris(w, e)
}

// SpawnExplosion scatters count particles around (x, y)
// Particles that do not fit are dropped
func SpawnExplosion(w *engine.World, x, y float64, count int) {
	r := w.Rand
	for i := 0; i < count; i++ {
		w.AddParticle(component.Particle{
			X:     x + float64(r.Spread(parameter.ExplosionJitter)),
			Y:     y + float64(r.Spread(parameter.ExplosionJitter)),
			DX:    float64(r.Spread(parameter.ExplosionDriftRange)) / parameter.ExplosionDriftDivisor,
			DY:    float64(r.Spread(parameter.ExplosionDriftRange)) / parameter.ExplosionDriftDivisor,
			Color: core.ExplosionPalette[r.Intn(len(core.ExplosionPalette))],
			A:     1 + r.Intn(parameter.ExplosionLifeRangeTicks),
		})
	}
}

// SpawnDebris splits the fighter sprite into a 2x2 grid and throws each quadrant upward from the center
func SpawnDebris(w *engine.World, e *component.Entity) {
	r := w.Rand
	cx, cy := e.Center()
	qw, qh := e.W/2, e.H/2

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			w.AddDebris(component.Debris{
				X:      cx,
				Y:      cy,
				DX:     float64(r.Spread(parameter.DebrisDriftRange)),
				DY:     -float64(parameter.DebrisLiftMin + r.Intn(parameter.DebrisLiftRange)),
				Life:   w.Config.Effects.DebrisLifeTicks,
				Sprite: e.Sprite,
				Rect:   core.Rect{X: x * qw, Y: y * qh, W: qw, H: qh},
			})
		}
	}
}
