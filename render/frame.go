package render

import (
	"github.com/lixenwraith/side-fighter/component"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/engine"
)

// starShade scales star brightness with scroll speed, faster reads closer
const starShade = 32

// Frame draws the world in fixed layer order:
// background, starfield, fighters with trailers, debris, explosions, bullets
func Frame(w *engine.World, r Renderer) {
	r.Begin()
	drawBackground(w, r)
	drawStarfield(w, r)
	drawFighters(w, r)
	drawDebris(w, r)
	drawExplosions(w, r)
	drawBullets(w, r)
	r.Present()
}

// drawBackground tiles the background horizontally from the scroll offset
func drawBackground(w *engine.World, r Renderer) {
	bg := w.Sprites.Background
	if bg == nil || bg.W <= 0 {
		return
	}
	for x := w.BackgroundX; x < w.Config.Stage.Width; x += bg.W {
		r.Blit(bg, x, 0)
	}
}

func drawStarfield(w *engine.World, r Renderer) {
	if len(w.Stars) == 0 {
		return
	}
	for _, s := range w.Stars {
		c := uint8(min(starShade*s.Speed, 255))
		r.SetTint(core.RGB{R: c, G: c, B: c}, 255)
		r.Blit(w.Sprites.Star, int(s.X), int(s.Y))
	}
	r.ResetTint()
}

func drawFighters(w *engine.World, r Renderer) {
	w.Fighters.Range(func(h core.Handle, e *component.Entity) bool {
		if e.Trailer != nil && h == w.Player && w.Trailer > 0 {
			// Afterburner sits behind the hull, vertically centered
			r.SetTint(core.RGBWhite, uint8(w.Trailer))
			r.Blit(e.Trailer, int(e.X)-e.Trailer.W, int(e.Y)+(e.H-e.Trailer.H)/2)
			r.ResetTint()
		}
		r.Blit(e.Sprite, int(e.X), int(e.Y))
		return true
	})
}

func drawDebris(w *engine.World, r Renderer) {
	w.Debris.Range(func(_ core.Handle, d *component.Debris) bool {
		r.BlitRect(d.Sprite, d.Rect, int(d.X), int(d.Y))
		return true
	})
}

func drawExplosions(w *engine.World, r Renderer) {
	w.Explosions.Range(func(_ core.Handle, p *component.Particle) bool {
		r.SetTint(p.Color, p.Alpha())
		r.Blit(w.Sprites.Explosion, int(p.X), int(p.Y))
		r.ResetTint()
		return true
	})
}

func drawBullets(w *engine.World, r Renderer) {
	w.Bullets.Range(func(_ core.Handle, b *component.Entity) bool {
		r.Blit(b.Sprite, int(b.X), int(b.Y))
		return true
	})
}
