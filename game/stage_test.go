package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/input"
	rmocks "github.com/lixenwraith/side-fighter/render/mocks"
)

func newTestStage(t *testing.T, opts Options) *Stage {
	t.Helper()
	catalog, err := asset.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	if opts.Config == nil {
		opts.Config = config.Default()
		opts.Config.Seed = 99
	}
	opts.Sprites = catalog
	if opts.Input == nil {
		opts.Input = input.State{}
	}
	s, err := NewStage(opts)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	return s
}

// TestNewStage_Entry verifies a fresh stage holds just the player
func TestNewStage_Entry(t *testing.T) {
	s := newTestStage(t, Options{})
	st := s.Stats()

	if st.Fighters != 1 || !st.PlayerUp {
		t.Errorf("Expected lone live player, got %+v", st)
	}
	if st.Bullets+st.Debris+st.Explosions != 0 {
		t.Errorf("Expected empty effect lists, got %+v", st)
	}
	if _, err := uuid.Parse(st.RunID); err != nil {
		t.Errorf("Expected uuid run id, got %q", st.RunID)
	}
	if st.Tick != 0 || st.Resets != 0 {
		t.Errorf("Expected zero counters, got tick %d resets %d", st.Tick, st.Resets)
	}
}

func TestNewStage_Errors(t *testing.T) {
	bad := config.Default()
	bad.Stage.FPS = 0
	if _, err := NewStage(Options{Config: bad, Sprites: &asset.Catalog{}, Input: input.State{}}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}

	if _, err := NewStage(Options{Config: nil}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for nil config, got %v", err)
	}

	catalog, err := asset.ParseCatalog([]byte("{}"))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	_, err = NewStage(Options{Config: config.Default(), Sprites: catalog, Input: input.State{}})
	if !errors.Is(err, asset.ErrSpriteNotFound) {
		t.Errorf("Expected ErrSpriteNotFound, got %v", err)
	}
}

// TestStage_AdvanceUsesInput verifies Advance snapshots input before the systems run
func TestStage_AdvanceUsesInput(t *testing.T) {
	var keys input.State
	keys[input.KeyFire] = true
	s := newTestStage(t, Options{Input: keys})

	s.Advance()

	st := s.Stats()
	if st.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", st.Tick)
	}
	shots := 0
	s.World().Bullets.Range(func(_ core.Handle, b *component.Entity) bool {
		if b.Faction == core.FactionPlayer {
			shots++
		}
		return true
	})
	if shots != 2 {
		t.Errorf("Expected twin shot on first tick, got %d player bullets", shots)
	}
	if st.Fighters != 2 {
		t.Errorf("Expected player plus first enemy, got %d fighters", st.Fighters)
	}
}

// TestStage_Render verifies Render draws one full frame through the renderer
func TestStage_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := rmocks.NewMockRenderer(ctrl)
	s := newTestStage(t, Options{Renderer: r})

	first := r.EXPECT().Begin().Times(1)
	r.EXPECT().Blit(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().After(first)
	r.EXPECT().SetTint(gomock.Any(), gomock.Any()).AnyTimes().After(first)
	r.EXPECT().ResetTint().AnyTimes().After(first)
	r.EXPECT().Present().Times(1).After(first)

	if err := s.Render(); err != nil {
		t.Errorf("Render: %v", err)
	}

	bare := newTestStage(t, Options{})
	if err := bare.Render(); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("Expected ErrNoRenderer, got %v", err)
	}
}

// TestStage_LongRun verifies the stage keeps its invariants and logs resets over many ticks
func TestStage_LongRun(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	cfg := config.Default()
	cfg.Seed = 5
	cfg.Stage.ResetDelayTicks = 10
	s := newTestStage(t, Options{Config: cfg, Logger: zap.New(obs)})

	// Idle player parked in the enemy lane dies eventually, the stage must come back
	w := s.World()
	for i := 0; i < 20000 && s.Stats().Resets == 0; i++ {
		if p, ok := w.PlayerEntity(); ok && i == 0 {
			p.Health = 1
		}
		s.Advance()
		if err := w.Validate(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	if s.Stats().Resets == 0 {
		t.Skip("player survived the whole run, nothing to check")
	}
	if logs.FilterMessage("stage reset").Len() == 0 {
		t.Error("Expected stage reset log entry")
	}
	if logs.FilterMessage("player destroyed").Len() == 0 {
		t.Error("Expected player destroyed log entry")
	}
	st := s.Stats()
	if st.Fighters < 1 || !st.PlayerUp {
		t.Errorf("Expected live player after reset, got %+v", st)
	}
}

// TestStage_RunIDLoggedOnce verifies every entry carries the stage run id exactly once
func TestStage_RunIDLoggedOnce(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Stage.ResetDelayTicks = 3
	s := newTestStage(t, Options{Config: cfg, Logger: zap.New(obs)})

	p, ok := s.World().PlayerEntity()
	if !ok {
		t.Fatal("Expected live player")
	}
	p.Health = 0
	for i := 0; i < 10; i++ {
		s.Advance()
	}

	for _, msg := range []string{"stage created", "stage entered", "player destroyed", "stage reset"} {
		if logs.FilterMessage(msg).Len() == 0 {
			t.Errorf("Expected %q log entry", msg)
		}
	}

	runID := s.Stats().RunID
	for _, entry := range logs.All() {
		count := 0
		for _, f := range entry.Context {
			if f.Key == "run_id" {
				count++
				if f.String != runID {
					t.Errorf("%q: expected run_id %s, got %s", entry.Message, runID, f.String)
				}
			}
		}
		if count != 1 {
			t.Errorf("%q: expected one run_id field, got %d", entry.Message, count)
		}
	}
}
