package asset

import (
	"github.com/lixenwraith/side-fighter/core"
)

// Well-known sprite names loaded by the stage
const (
	SpritePlayer           = "player"
	SpriteTrailer          = "trailer"
	SpriteEnemy            = "enemy"
	SpritePlayerBullet     = "playerBullet"
	SpriteAlienBullet      = "alienBullet"
	SpriteAlienHeavyBullet = "alienHeavyBullet"
	SpriteExplosion        = "explosion"
	SpriteStar             = "star"
	SpriteBackground       = "background"
)

// Sprite is a read-only drawable owned by the catalog
// Entities borrow it, the simulation never mutates it
type Sprite struct {
	Name  string
	W, H  int // world units
	Color core.RGB
	Rows  [][]rune
}

// Size returns the intrinsic width and height
func (s *Sprite) Size() (w, h int) {
	return s.W, s.H
}

// Glyph samples the art at a point inside the sprite, nearest neighbour
// Returns ' ' outside the sprite or over transparent art
func (s *Sprite) Glyph(px, py int) rune {
	if px < 0 || py < 0 || px >= s.W || py >= s.H || len(s.Rows) == 0 {
		return ' '
	}
	row := s.Rows[py*len(s.Rows)/s.H]
	if len(row) == 0 {
		return ' '
	}
	return row[px*len(row)/s.W]
}

// Provider resolves sprites by name
type Provider interface {
	Sprite(name string) (*Sprite, error)
}
