package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
)

// CullSystem removes dead fighters
// It runs after every damage source so a fighter never outlives the tick it died in
type CullSystem struct {
	world *engine.World
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

func (s *CullSystem) Init() {}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Update unlinks dead fighters, bursting those still on screen
func (s *CullSystem) Update() {
	w := s.world
	w.Fighters.Sweep(func(h core.Handle, e *component.Entity) bool {
		if !e.Dead() {
			return true
		}

		if h == w.Player {
			SpawnBurst(w, e)
			w.Play(core.SoundPlayerDie, core.ChannelPlayer)
			// Drop the reference in the same step the node goes away
			w.Player = 0
			w.Log.Info("player destroyed",
				zap.Uint64("tick", w.Tick),
			)
		} else if e.X > 0 {
			SpawnBurst(w, e)
			w.Play(core.SoundAlienDie, core.ChannelExplosion)
		}
		return false
	})
}
