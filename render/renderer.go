package render

import (
	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/core"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer is the drawing collaborator, coordinates are world units
// Tint applies to every blit until ResetTint: sprite color is modulated by the tint
// and composited over what is already drawn with the given alpha
type Renderer interface {
	Begin()
	Blit(s *asset.Sprite, x, y int)
	BlitRect(s *asset.Sprite, src core.Rect, x, y int)
	SetTint(tint core.RGB, alpha uint8)
	ResetTint()
	Present()
}
