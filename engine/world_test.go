package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/core"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Init()         { *s.log = append(*s.log, "init:"+s.name) }
func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }

func newTestWorld(capacity int) *World {
	cfg := config.Default()
	cfg.Stage.ListCapacity = capacity
	cfg.Seed = 7
	return NewWorld(cfg, Sprites{}, nil, nil)
}

// TestWorld_SystemOrder verifies systems run by ascending priority regardless of registration order
func TestWorld_SystemOrder(t *testing.T) {
	w := newTestWorld(8)
	var log []string
	w.AddSystem(&recordingSystem{name: "c", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "a", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "b", priority: 20, log: &log})

	w.Update()

	want := []string{"a", "b", "c"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if w.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", w.Tick)
	}
}

// TestWorld_ResetInitsSystems verifies reset drains lists and re-runs Init
func TestWorld_ResetInitsSystems(t *testing.T) {
	w := newTestWorld(8)
	var log []string
	w.AddSystem(&recordingSystem{name: "b", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "a", priority: 10, log: &log})

	w.AddBullet(component.Entity{DX: 1})
	w.AddDebris(component.Debris{Life: 1})
	w.AddParticle(component.Particle{A: 1})
	h, _ := w.AddFighter(component.Entity{Health: 1})
	w.Player = h
	w.Trailer = 100

	w.Reset()

	if w.Fighters.Len()+w.Bullets.Len()+w.Debris.Len()+w.Explosions.Len() != 0 {
		t.Error("Expected all lists drained")
	}
	if !w.Player.IsZero() {
		t.Error("Expected player reference cleared")
	}
	if w.Trailer != 0 {
		t.Errorf("Expected trailer 0, got %d", w.Trailer)
	}
	if len(log) != 2 || log[0] != "init:a" || log[1] != "init:b" {
		t.Errorf("Expected [init:a init:b], got %v", log)
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestWorld_SpawnSkippedWhenFull verifies a full list drops the spawn and counts it
func TestWorld_SpawnSkippedWhenFull(t *testing.T) {
	w := newTestWorld(2)

	for i := 0; i < 2; i++ {
		if _, e := w.AddBullet(component.Entity{DX: 1}); e == nil {
			t.Fatalf("Append %d should succeed", i)
		}
	}
	h, e := w.AddBullet(component.Entity{DX: 1})
	if e != nil || !h.IsZero() {
		t.Error("Expected skipped spawn on full list")
	}
	if w.Skipped != 1 {
		t.Errorf("Expected 1 skipped spawn, got %d", w.Skipped)
	}
	if w.Bullets.Len() != 2 {
		t.Errorf("Expected 2 bullets, got %d", w.Bullets.Len())
	}
	if err := w.Bullets.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestWorld_PlayerReferenceStale verifies a removed player no longer resolves
func TestWorld_PlayerReferenceStale(t *testing.T) {
	w := newTestWorld(4)
	h, _ := w.AddFighter(component.Entity{Faction: core.FactionPlayer, Health: 1})
	w.Player = h

	if !w.PlayerAlive() {
		t.Fatal("Expected player alive")
	}

	w.Fighters.Sweep(func(core.Handle, *component.Entity) bool { return false })
	// Slot reuse must not revive the old reference
	w.AddFighter(component.Entity{Faction: core.FactionAlien, Health: 3})

	if w.PlayerAlive() {
		t.Error("Expected stale player reference to fail")
	}
	if !w.Player.IsZero() {
		t.Error("Expected stale reference to be dropped")
	}
}

type stubProvider map[string]*asset.Sprite

func (p stubProvider) Sprite(name string) (*asset.Sprite, error) {
	if s, ok := p[name]; ok {
		return s, nil
	}
	return nil, asset.ErrSpriteNotFound
}

func TestLoadSprites(t *testing.T) {
	catalog, err := asset.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	s, err := LoadSprites(catalog)
	if err != nil {
		t.Fatalf("LoadSprites: %v", err)
	}
	if s.Player == nil || s.Background == nil || s.AlienHeavyBullet == nil {
		t.Error("Expected every sprite resolved")
	}

	_, err = LoadSprites(stubProvider{asset.SpritePlayer: s.Player})
	if !errors.Is(err, asset.ErrSpriteNotFound) {
		t.Errorf("Expected ErrSpriteNotFound, got %v", err)
	}
}
