package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/audio"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/engine"
	"github.com/lixenwraith/side-fighter/input"
	"github.com/lixenwraith/side-fighter/render"
	"github.com/lixenwraith/side-fighter/system"
)

// ErrNoRenderer is returned by Render on a stage built without a renderer
var ErrNoRenderer = errors.New("stage has no renderer")

// Options wires a stage to its collaborators
// Config, Sprites and Input are required, the rest fall back to no-ops
type Options struct {
	Config   *config.Config
	Sprites  asset.Provider
	Audio    audio.Player
	Input    input.Source
	Renderer render.Renderer
	Logger   *zap.Logger
}

// Stage is the simulation core driven by an external fixed-rate loop
// Not safe for concurrent use, Advance and Render must run on one goroutine
type Stage struct {
	world    *engine.World
	input    input.Source
	renderer render.Renderer
	log      *zap.Logger
}

// Stats is a snapshot of stage counters
type Stats struct {
	RunID      string
	Tick       uint64
	Resets     int
	Fighters   int
	Bullets    int
	Debris     int
	Explosions int
	PlayerUp   bool
	Skipped    uint64
}

// NewStage loads sprites, registers the systems and enters the stage
func NewStage(opts Options) (*Stage, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("new stage: %w: nil config", config.ErrInvalid)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("new stage: %w", err)
	}
	if opts.Sprites == nil || opts.Input == nil {
		return nil, errors.New("new stage: sprites and input are required")
	}

	sprites, err := engine.LoadSprites(opts.Sprites)
	if err != nil {
		return nil, fmt.Errorf("new stage: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	w := engine.NewWorld(opts.Config, sprites, opts.Audio, log)
	w.RunID = runID
	system.RegisterAll(w)
	w.Reset()

	log.Info("stage created",
		zap.Int("width", opts.Config.Stage.Width),
		zap.Int("height", opts.Config.Stage.Height),
		zap.Int("list_capacity", opts.Config.Stage.ListCapacity),
	)

	return &Stage{
		world:    w,
		input:    opts.Input,
		renderer: opts.Renderer,
		log:      log,
	}, nil
}

// Advance runs one tick: snapshot input, then every system in priority order
func (s *Stage) Advance() {
	s.world.Keys = s.input.Snapshot()
	s.world.Update()
}

// Render draws the current state
func (s *Stage) Render() error {
	if s.renderer == nil {
		return ErrNoRenderer
	}
	render.Frame(s.world, s.renderer)
	return nil
}

// World exposes the simulation state for inspection
func (s *Stage) World() *engine.World { return s.world }

func (s *Stage) Stats() Stats {
	w := s.world
	return Stats{
		RunID:      w.RunID,
		Tick:       w.Tick,
		Resets:     w.Resets,
		Fighters:   w.Fighters.Len(),
		Bullets:    w.Bullets.Len(),
		Debris:     w.Debris.Len(),
		Explosions: w.Explosions.Len(),
		PlayerUp:   w.PlayerAlive(),
		Skipped:    w.Skipped,
	}
}
