package system

import (
	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
	"github.com/lixenwraith/side-fighter/vmath"
)

// AlienFireSystem counts down each enemy's reload and fires at zero
type AlienFireSystem struct {
	world *engine.World
}

// NewAlienFireSystem creates a new alien fire system
func NewAlienFireSystem(world *engine.World) engine.System {
	return &AlienFireSystem{world: world}
}

func (s *AlienFireSystem) Init() {}

func (s *AlienFireSystem) Name() string { return "alien_fire" }

func (s *AlienFireSystem) Priority() int { return parameter.PriorityAlienFire }

func (s *AlienFireSystem) Update() {
	w := s.world
	player, playerAlive := w.PlayerEntity()

	w.Fighters.Range(func(h core.Handle, e *component.Entity) bool {
		if h == w.Player || e.Faction != core.FactionAlien || e.Dead() {
			return true
		}
		e.Reload--
		if e.Reload > 0 {
			return true
		}

		switch e.Shot {
		case core.ShotHeavy:
			s.fireHeavy(e)
		default:
			// No target to aim at, hold fire until the next reload
			if playerAlive {
				s.fireAimed(e, player)
			}
		}
		e.Reload = 1 + w.Rand.Intn(w.Config.Alien.ReloadRangeTicks)
		return true
	})
}

// fireAimed shoots from the enemy center toward the player center at a randomized speed
func (s *AlienFireSystem) fireAimed(e, target *component.Entity) {
	w := s.world
	cfg := w.Config.Alien

	b := s.bulletFrom(e, w.Sprites.AlienBullet)
	ex, ey := e.Center()
	tx, ty := target.Center()
	dx, dy := vmath.Direction(ex, ey, tx, ty)
	speed := cfg.BulletSpeed + float64(w.Rand.Intn(cfg.BulletSpeedRange))
	b.DX, b.DY = dx*speed, dy*speed

	w.AddBullet(b)
	w.Play(core.SoundAlienFire, core.ChannelAlienFire)
}

// fireHeavy shoots straight left, player position is irrelevant
func (s *AlienFireSystem) fireHeavy(e *component.Entity) {
	w := s.world

	b := s.bulletFrom(e, w.Sprites.AlienHeavyBullet)
	b.DX = -w.Config.Alien.HeavyBulletSpeed

	w.AddBullet(b)
	w.Play(core.SoundAlienFire, core.ChannelAlienFire)
}

// bulletFrom centers a fresh alien bullet on the firer
func (s *AlienFireSystem) bulletFrom(e *component.Entity, sprite *asset.Sprite) component.Entity {
	cx, cy := e.Center()
	b := component.NewEntity(0, 0, sprite, core.FactionAlien, 1)
	b.X = cx - float64(b.W)/2
	b.Y = cy - float64(b.H)/2
	return b
}
