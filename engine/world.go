package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/audio"
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/input"
	"github.com/lixenwraith/side-fighter/vmath"
)

// Sprites holds the catalog handles the simulation draws with
// Owned by the asset provider, never mutated here
type Sprites struct {
	Player           *asset.Sprite
	Trailer          *asset.Sprite
	Enemy            *asset.Sprite
	PlayerBullet     *asset.Sprite
	AlienBullet      *asset.Sprite
	AlienHeavyBullet *asset.Sprite
	Explosion        *asset.Sprite
	Star             *asset.Sprite
	Background       *asset.Sprite
}

// LoadSprites resolves every sprite the stage needs, failing on the first missing one
func LoadSprites(p asset.Provider) (Sprites, error) {
	var s Sprites
	targets := []struct {
		name string
		dst  **asset.Sprite
	}{
		{asset.SpritePlayer, &s.Player},
		{asset.SpriteTrailer, &s.Trailer},
		{asset.SpriteEnemy, &s.Enemy},
		{asset.SpritePlayerBullet, &s.PlayerBullet},
		{asset.SpriteAlienBullet, &s.AlienBullet},
		{asset.SpriteAlienHeavyBullet, &s.AlienHeavyBullet},
		{asset.SpriteExplosion, &s.Explosion},
		{asset.SpriteStar, &s.Star},
		{asset.SpriteBackground, &s.Background},
	}
	for _, t := range targets {
		sprite, err := p.Sprite(t.name)
		if err != nil {
			return Sprites{}, fmt.Errorf("load sprite: %w", err)
		}
		*t.dst = sprite
	}
	return s, nil
}

// World is the complete simulation state of one stage
// Single-threaded: only the tick goroutine touches it
type World struct {
	Config  *config.Config
	Rand    *vmath.FastRand
	Sprites Sprites
	Audio   audio.Player
	Log     *zap.Logger
	RunID   string

	Fighters   *List[component.Entity]
	Bullets    *List[component.Entity]
	Debris     *List[component.Debris]
	Explosions *List[component.Particle]
	Stars      []component.Star

	// Keys is the input snapshot for the current tick
	Keys input.State

	// Player is a non-owning reference into Fighters, zero once the player is destroyed
	Player core.Handle

	EnemySpawnTimer int
	StageResetTimer int
	BackgroundX     int
	Trailer         int // Player afterburner intensity, 0..TrailerMax

	Tick    uint64
	Resets  int    // Resets after player death, stage entry excluded
	Skipped uint64 // Spawns dropped on a full list

	systems []System
}

// NewWorld creates an empty world, lists are sized from the stage config
func NewWorld(cfg *config.Config, sprites Sprites, player audio.Player, log *zap.Logger) *World {
	if player == nil {
		player = audio.Silent{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	capacity := cfg.Stage.ListCapacity
	return &World{
		Config:     cfg,
		Rand:       vmath.NewFastRand(cfg.Seed),
		Sprites:    sprites,
		Audio:      player,
		Log:        log,
		Fighters:   NewList[component.Entity](capacity),
		Bullets:    NewList[component.Entity](capacity),
		Debris:     NewList[component.Debris](capacity),
		Explosions: NewList[component.Particle](capacity),
		Stars:      make([]component.Star, 0, cfg.Stage.MaxStars),
		systems:    make([]System, 0),
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs every system once in priority order
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update()
	}
	w.Tick++
}

// Clear drains all four lists and drops the player reference
func (w *World) Clear() {
	w.Fighters.Clear()
	w.Bullets.Clear()
	w.Debris.Clear()
	w.Explosions.Clear()
	w.Player = 0
}

// Reset drains the lists and re-enters the stage
// Each system re-seeds its own state in Init, in priority order
func (w *World) Reset() {
	w.Clear()
	w.Trailer = 0
	for _, s := range w.systems {
		s.Init()
	}
	w.Log.Debug("stage entered", zap.Uint64("tick", w.Tick))
}

// PlayerEntity resolves the player reference, false once the player is gone
func (w *World) PlayerEntity() (*component.Entity, bool) {
	if w.Player.IsZero() {
		return nil, false
	}
	e, ok := w.Fighters.Get(w.Player)
	if !ok {
		// Reference outlived its node, drop it so later checks are cheap
		w.Player = 0
		return nil, false
	}
	return e, true
}

// PlayerAlive reports whether the player fighter still exists
func (w *World) PlayerAlive() bool {
	_, ok := w.PlayerEntity()
	return ok
}

// Play forwards a sound cue to the audio collaborator
func (w *World) Play(sound core.SoundType, channel core.SoundChannel) {
	w.Audio.Play(sound, channel)
}

// AddFighter appends to the fighter list, nil when the list is full
func (w *World) AddFighter(e component.Entity) (core.Handle, *component.Entity) {
	return spawn(w, w.Fighters, "fighter", e)
}

// AddBullet appends to the bullet list, nil when the list is full
func (w *World) AddBullet(e component.Entity) (core.Handle, *component.Entity) {
	return spawn(w, w.Bullets, "bullet", e)
}

// AddDebris appends to the debris list, nil when the list is full
func (w *World) AddDebris(d component.Debris) *component.Debris {
	_, p := spawn(w, w.Debris, "debris", d)
	return p
}

// AddParticle appends to the explosion list, nil when the list is full
func (w *World) AddParticle(p component.Particle) *component.Particle {
	_, ptr := spawn(w, w.Explosions, "explosion", p)
	return ptr
}

// spawn skips the allocation on a full list instead of failing the tick
func spawn[T any](w *World, l *List[T], kind string, v T) (core.Handle, *T) {
	h, ptr, err := l.Append(v)
	if err != nil {
		if errors.Is(err, ErrListFull) {
			w.Skipped++
			w.Log.Debug("spawn skipped",
				zap.String("kind", kind),
				zap.Int("capacity", l.Cap()),
				zap.Uint64("tick", w.Tick),
			)
		}
		return 0, nil
	}
	return h, ptr
}

// Validate checks every list's structural invariants
func (w *World) Validate() error {
	if err := w.Fighters.Validate(); err != nil {
		return fmt.Errorf("fighters: %w", err)
	}
	if err := w.Bullets.Validate(); err != nil {
		return fmt.Errorf("bullets: %w", err)
	}
	if err := w.Debris.Validate(); err != nil {
		return fmt.Errorf("debris: %w", err)
	}
	if err := w.Explosions.Validate(); err != nil {
		return fmt.Errorf("explosions: %w", err)
	}
	return nil
}
