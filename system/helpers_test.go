package system

import (
	"testing"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
)

func testSprite(name string, w, h int) *asset.Sprite {
	return &asset.Sprite{Name: name, W: w, H: h, Color: core.RGBWhite}
}

func testSprites() engine.Sprites {
	return engine.Sprites{
		Player:           testSprite(asset.SpritePlayer, 20, 10),
		Trailer:          testSprite(asset.SpriteTrailer, 10, 5),
		Enemy:            testSprite(asset.SpriteEnemy, 48, 32),
		PlayerBullet:     testSprite(asset.SpritePlayerBullet, 16, 8),
		AlienBullet:      testSprite(asset.SpriteAlienBullet, 16, 16),
		AlienHeavyBullet: testSprite(asset.SpriteAlienHeavyBullet, 24, 16),
		Explosion:        testSprite(asset.SpriteExplosion, 16, 16),
		Star:             testSprite(asset.SpriteStar, 8, 16),
		Background:       testSprite(asset.SpriteBackground, 1280, 720),
	}
}

// newTestWorld returns a world after stage entry: player spawned, stars seeded, timers armed
func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	return newSeededWorld(42)
}

// newSeededWorld is newTestWorld for callers without a *testing.T, such as rapid properties
func newSeededWorld(seed uint64) *engine.World {
	cfg := config.Default()
	cfg.Seed = seed
	w := engine.NewWorld(cfg, testSprites(), nil, nil)
	RegisterAll(w)
	w.Reset()
	return w
}

func mustPlayer(t *testing.T, w *engine.World) *component.Entity {
	t.Helper()
	p, ok := w.PlayerEntity()
	if !ok {
		t.Fatal("Expected live player")
	}
	return p
}

// addEnemy places a stationary enemy that will not fire during the test
func addEnemy(t *testing.T, w *engine.World, x, y float64) (core.Handle, *component.Entity) {
	t.Helper()
	e := component.NewEntity(x, y, w.Sprites.Enemy, core.FactionAlien, w.Config.Alien.Health)
	e.Reload = 1 << 20
	h, ptr := w.AddFighter(e)
	if ptr == nil {
		t.Fatal("Enemy spawn failed")
	}
	return h, ptr
}

func validate(t *testing.T, w *engine.World) {
	t.Helper()
	if err := w.Validate(); err != nil {
		t.Fatalf("List invariant broken: %v", err)
	}
}

func collectBullets(w *engine.World) []component.Entity {
	var out []component.Entity
	w.Bullets.Range(func(_ core.Handle, b *component.Entity) bool {
		out = append(out, *b)
		return true
	})
	return out
}
