package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
)

// StageSystem restarts the stage a fixed delay after the player dies
type StageSystem struct {
	world *engine.World
}

// NewStageSystem creates a new stage lifecycle system
func NewStageSystem(world *engine.World) engine.System {
	return &StageSystem{world: world}
}

// Init arms the grace timer
func (s *StageSystem) Init() {
	s.world.StageResetTimer = s.world.Config.Stage.ResetDelayTicks
}

func (s *StageSystem) Name() string { return "stage" }

func (s *StageSystem) Priority() int { return parameter.PriorityStage }

// Update counts down only while the player is gone
func (s *StageSystem) Update() {
	w := s.world
	if w.PlayerAlive() {
		return
	}
	w.StageResetTimer--
	if w.StageResetTimer > 0 {
		return
	}

	w.Resets++
	w.Log.Info("stage reset",
		zap.Int("resets", w.Resets),
		zap.Uint64("tick", w.Tick),
	)
	w.Reset()
}
