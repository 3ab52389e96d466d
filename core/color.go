package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RGBRed       = RGB{255, 0, 0}
	RGBRedOrange = RGB{255, 128, 0}
	RGBYellow    = RGB{255, 255, 0}
)

// ExplosionPalette lists the particle colors picked uniformly per explosion particle
var ExplosionPalette = [4]RGB{RGBRed, RGBRedOrange, RGBYellow, RGBWhite}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Modulate multiplies channels pairwise (texture color modulation)
func (c RGB) Modulate(tint RGB) RGB {
	return RGB{
		R: uint8(uint16(c.R) * uint16(tint.R) / 255),
		G: uint8(uint16(c.G) * uint16(tint.G) / 255),
		B: uint8(uint16(c.B) * uint16(tint.B) / 255),
	}
}
