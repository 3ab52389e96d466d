package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/parameter"
)

// TestSpawnSystem_Enemy verifies a spawned enemy's placement, velocity ranges and coin coupling
func TestSpawnSystem_Enemy(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSpawnSystem(w)

	for i := 0; i < 50; i++ {
		w.EnemySpawnTimer = 1
		sys.Update()

		timer := w.EnemySpawnTimer
		if timer < parameter.EnemySpawnMinTicks || timer >= parameter.EnemySpawnMinTicks+parameter.EnemySpawnRangeTicks {
			t.Errorf("Spawn timer %d out of range", timer)
		}
	}

	enemies := 0
	w.Fighters.Range(func(h core.Handle, e *component.Entity) bool {
		if h == w.Player {
			return true
		}
		enemies++
		if e.X != float64(w.Config.Stage.Width) {
			t.Errorf("Expected spawn at right edge, got x=%v", e.X)
		}
		minY := float64(parameter.EnemySpawnYOffset - e.H)
		maxY := float64(parameter.EnemySpawnYOffset + w.Config.Stage.Height - 1 - e.H)
		if e.Y < minY || e.Y > maxY {
			t.Errorf("y %v outside [%v,%v]", e.Y, minY, maxY)
		}
		if e.DX > -2 || e.DX < -5 {
			t.Errorf("dx %v outside [-5,-2]", e.DX)
		}
		switch {
		case e.DY == 1 && e.Shot == core.ShotAimed:
		case e.DY == -1 && e.Shot == core.ShotHeavy:
		default:
			t.Errorf("Drift %v does not match shot mode %d", e.DY, e.Shot)
		}
		if e.Health != parameter.EnemyHealth || e.Faction != core.FactionAlien {
			t.Errorf("Expected alien with health %d, got %v health %d", parameter.EnemyHealth, e.Faction, e.Health)
		}
		if e.Reload < 1 || e.Reload > parameter.AlienReloadRangeTicks {
			t.Errorf("Reload %d out of range", e.Reload)
		}
		return true
	})
	if enemies != 50 {
		t.Errorf("Expected 50 enemies, got %d", enemies)
	}
	validate(t, w)
}

// TestSpawnSystem_Interval verifies nothing spawns while the timer is positive
func TestSpawnSystem_Interval(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSpawnSystem(w)

	// Stage entry clears the timer, first enemy arrives on the first tick
	sys.Update()
	if w.Fighters.Len() != 2 {
		t.Fatalf("Expected immediate first spawn, got %d fighters", w.Fighters.Len())
	}

	next := w.EnemySpawnTimer
	for i := 0; i < next-1; i++ {
		sys.Update()
	}
	if w.Fighters.Len() != 2 {
		t.Errorf("Expected no spawn before timer expiry, got %d fighters", w.Fighters.Len())
	}
	sys.Update()
	if w.Fighters.Len() != 3 {
		t.Errorf("Expected second spawn at expiry, got %d fighters", w.Fighters.Len())
	}
}

// TestAlienFire_Heavy verifies heavy shots fly straight left from the firer center
func TestAlienFire_Heavy(t *testing.T) {
	w := newTestWorld(t)
	_, e := addEnemy(t, w, 800, 400)
	e.Shot = core.ShotHeavy
	e.Reload = 1

	NewAlienFireSystem(w).Update()

	bullets := collectBullets(w)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	b := bullets[0]
	if b.DX != -10 || b.DY != 0 {
		t.Errorf("Expected velocity (-10,0), got (%v,%v)", b.DX, b.DY)
	}
	// Enemy 48x32 at (800,400), heavy bullet 24x16
	if b.X != 812 || b.Y != 408 {
		t.Errorf("Expected centered at (812,408), got (%v,%v)", b.X, b.Y)
	}
	if b.Faction != core.FactionAlien {
		t.Errorf("Expected alien faction, got %v", b.Faction)
	}
	if e.Reload < 1 {
		t.Errorf("Expected reload reseeded, got %d", e.Reload)
	}
}

// TestAlienFire_Aimed verifies aimed shots head toward the player center
func TestAlienFire_Aimed(t *testing.T) {
	w := newTestWorld(t)
	p := mustPlayer(t, w)
	_, e := addEnemy(t, w, 800, 100)
	e.Shot = core.ShotAimed
	e.Reload = 1

	NewAlienFireSystem(w).Update()

	bullets := collectBullets(w)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	b := bullets[0]
	speed := math.Hypot(b.DX, b.DY)
	if speed < 6-1e-9 || speed > 8+1e-9 {
		t.Errorf("Speed %v outside [6,8]", speed)
	}

	ex, ey := e.Center()
	px, py := p.Center()
	wantAngle := math.Atan2(py-ey, px-ex)
	if got := math.Atan2(b.DY, b.DX); math.Abs(got-wantAngle) > 1e-9 {
		t.Errorf("Expected heading %v, got %v", wantAngle, got)
	}
}

// TestAlienFire_AimedWithoutPlayer verifies aimed fire is skipped and reload still reseeded
func TestAlienFire_AimedWithoutPlayer(t *testing.T) {
	w := newTestWorld(t)
	mustPlayer(t, w).Health = 0
	NewCullSystem(w).Update()

	_, aimed := addEnemy(t, w, 800, 100)
	aimed.Shot = core.ShotAimed
	aimed.Reload = 1
	_, heavy := addEnemy(t, w, 800, 400)
	heavy.Shot = core.ShotHeavy
	heavy.Reload = 1

	NewAlienFireSystem(w).Update()

	bullets := collectBullets(w)
	if len(bullets) != 1 || bullets[0].DX != -10 {
		t.Errorf("Expected only the heavy shot, got %d bullets", len(bullets))
	}
	if aimed.Reload < 1 {
		t.Errorf("Expected aimed reload reseeded, got %d", aimed.Reload)
	}
}
