package component

import (
	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/core"
)

// Entity is the shared shape of fighters and bullets
// W and H are copied from the sprite at creation and never change
type Entity struct {
	X, Y   float64
	DX, DY float64
	W, H   int

	Faction core.Faction
	Health  int // <= 0 marks the entity dead
	Reload  int // Ticks until the next permitted shot
	Shot    core.ShotMode

	Sprite  *asset.Sprite // Borrowed from the catalog
	Trailer *asset.Sprite // Player afterburner, nil for everything else
}

// NewEntity sizes an entity from its sprite
func NewEntity(x, y float64, sprite *asset.Sprite, faction core.Faction, health int) Entity {
	w, h := sprite.Size()
	return Entity{
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Faction: faction,
		Health:  health,
		Sprite:  sprite,
	}
}

// Dead reports whether health has run out
func (e *Entity) Dead() bool { return e.Health <= 0 }

// Center returns the midpoint of the bounding box
func (e *Entity) Center() (x, y float64) {
	return e.X + float64(e.W)/2, e.Y + float64(e.H)/2
}

// Inert reports a bullet that would never leave the screen
func (e *Entity) Inert() bool { return e.DX == 0 && e.DY == 0 }
