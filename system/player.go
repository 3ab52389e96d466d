package system

import (
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/input"
	"github.com/lixenwraith/side-fighter/parameter"
)

// PlayerSystem turns the key snapshot into player velocity and twin shots
// It also owns the afterburner trailer intensity
type PlayerSystem struct {
	world *engine.World
}

// NewPlayerSystem creates a new player controller
func NewPlayerSystem(world *engine.World) engine.System {
	return &PlayerSystem{world: world}
}

// Init creates a fresh player fighter at the start position
func (s *PlayerSystem) Init() {
	w := s.world
	cfg := w.Config.Player

	e := component.NewEntity(cfg.StartX, cfg.StartY, w.Sprites.Player, core.FactionPlayer, cfg.Health)
	e.Trailer = w.Sprites.Trailer

	h, ptr := w.AddFighter(e)
	if ptr == nil {
		return
	}
	w.Player = h
	w.Trailer = 0
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

// Update sets velocity per held direction, handles reload and firing
func (s *PlayerSystem) Update() {
	w := s.world
	p, ok := w.PlayerEntity()
	if !ok {
		s.decayTrailer()
		return
	}

	speed := w.Config.Player.Speed
	p.DX, p.DY = 0, 0
	// No normalization, diagonals move at full speed on both axes
	if w.Keys.Pressed(input.KeyUp) {
		p.DY = -speed
	}
	if w.Keys.Pressed(input.KeyDown) {
		p.DY = speed
	}
	if w.Keys.Pressed(input.KeyLeft) {
		p.DX = -speed
	}
	if w.Keys.Pressed(input.KeyRight) {
		p.DX = speed
	}

	if p.Reload > 0 {
		p.Reload--
	}
	if w.Keys.Pressed(input.KeyFire) && p.Reload == 0 {
		s.fire(p)
	}

	if p.DX != 0 || p.DY != 0 {
		w.Trailer = min(w.Trailer+parameter.TrailerRamp, parameter.TrailerMax)
	} else {
		s.decayTrailer()
	}
}

// fire spawns one bullet at the top and one at the bottom of the hull, horizontally centered
func (s *PlayerSystem) fire(p *component.Entity) {
	w := s.world
	cfg := w.Config.Player

	x := p.X + float64(p.W/2)
	for _, y := range [2]float64{p.Y, p.Y + float64(p.H)} {
		b := component.NewEntity(x, y, w.Sprites.PlayerBullet, core.FactionPlayer, 1)
		b.DX = cfg.BulletSpeed
		w.AddBullet(b)
	}

	p.Reload = cfg.ReloadTicks
	w.Play(core.SoundPlayerFire, core.ChannelPlayer)
}

func (s *PlayerSystem) decayTrailer() {
	s.world.Trailer = max(s.world.Trailer-parameter.TrailerDecay, 0)
}
