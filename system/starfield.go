package system

import (
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/parameter"
)

// StarfieldSystem scrolls the background and the star layer
type StarfieldSystem struct {
	world *engine.World
}

// NewStarfieldSystem creates a new starfield system
func NewStarfieldSystem(world *engine.World) engine.System {
	return &StarfieldSystem{world: world}
}

// Init reseeds every star and rewinds the background
func (s *StarfieldSystem) Init() {
	w := s.world
	width, height := w.Config.Stage.Width, w.Config.Stage.Height

	w.BackgroundX = 0
	w.Stars = w.Stars[:0]
	for i := 0; i < w.Config.Stage.MaxStars; i++ {
		w.Stars = append(w.Stars, component.Star{
			X:     float64(w.Rand.Intn(width)),
			Y:     float64(w.Rand.Intn(height)),
			Speed: 1 + w.Rand.Intn(parameter.StarSpeedRange),
		})
	}
}

func (s *StarfieldSystem) Name() string { return "starfield" }

func (s *StarfieldSystem) Priority() int { return parameter.PriorityStarfield }

// Update scrolls left, wrapping at the left edge
func (s *StarfieldSystem) Update() {
	w := s.world
	width := w.Config.Stage.Width

	w.BackgroundX -= parameter.BackgroundScrollSpeed
	if w.BackgroundX < -width {
		w.BackgroundX = 0
	}

	for i := range w.Stars {
		star := &w.Stars[i]
		star.X -= float64(star.Speed)
		if star.X < 0 {
			star.X += float64(width)
		}
	}
}
