package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
)

// SpawnSystem appends enemy fighters at the right edge on a random interval
type SpawnSystem struct {
	world *engine.World
}

// NewSpawnSystem creates a new enemy spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	return &SpawnSystem{world: world}
}

// Init clears the timer so the first enemy arrives on the next tick
func (s *SpawnSystem) Init() {
	s.world.EnemySpawnTimer = 0
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

// Update counts the timer down and spawns at zero
func (s *SpawnSystem) Update() {
	w := s.world
	w.EnemySpawnTimer--
	if w.EnemySpawnTimer > 0 {
		return
	}

	s.spawnEnemy()
	w.EnemySpawnTimer = w.Config.Alien.SpawnMinTicks + w.Rand.Intn(w.Config.Alien.SpawnRangeTicks)
}

func (s *SpawnSystem) spawnEnemy() {
	w := s.world
	cfg := w.Config

	e := component.NewEntity(float64(cfg.Stage.Width), 0, w.Sprites.Enemy, core.FactionAlien, cfg.Alien.Health)
	// Can land partly above the top edge, where it jitters on the bounce
	e.Y = float64(parameter.EnemySpawnYOffset + (w.Rand.Intn(cfg.Stage.Height) - e.H))
	e.DX = -float64(parameter.EnemyMinSpeed + w.Rand.Intn(parameter.EnemySpeedRange))

	// One coin decides drift direction and weapon together
	if w.Rand.Coin() {
		e.DY = parameter.EnemyDrift
		e.Shot = core.ShotAimed
	} else {
		e.DY = -parameter.EnemyDrift
		e.Shot = core.ShotHeavy
	}
	e.Reload = 1 + w.Rand.Intn(cfg.Alien.ReloadRangeTicks)

	if _, ptr := w.AddFighter(e); ptr != nil {
		w.Log.Debug("enemy spawned",
			zap.Float64("y", e.Y),
			zap.Float64("dx", e.DX),
			zap.Uint8("shot", uint8(e.Shot)),
		)
	}
}
