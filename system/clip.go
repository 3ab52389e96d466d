package system

import (
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
	"github.com/lixenwraith/side-fighter/vmath"
)

// ClipSystem keeps the player inside the left half of the screen
type ClipSystem struct {
	world *engine.World
}

// NewClipSystem creates a new player clip system
func NewClipSystem(world *engine.World) engine.System {
	return &ClipSystem{world: world}
}

func (s *ClipSystem) Init() {}

func (s *ClipSystem) Name() string { return "clip" }

func (s *ClipSystem) Priority() int { return parameter.PriorityClip }

func (s *ClipSystem) Update() {
	w := s.world
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}
	stage := w.Config.Stage
	p.X = vmath.Clamp(p.X, 0, float64(stage.Width)/2)
	p.Y = vmath.Clamp(p.Y, 0, float64(stage.Height-p.H))
}
