package core

import "math"

// RGBA is a color with straight (non-premultiplied) alpha, components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Predefined colors for game elements.
var (
	ColorBlack     = RGBA{0, 0, 0, 1}
	ColorWhite     = RGBA{1, 1, 1, 1}
	ColorRed       = RGBA{1, 0, 0, 1}
	ColorGreen     = RGBA{0, 1, 0, 1}
	ColorYellow    = RGBA{1, 1, 0, 1}
	ColorLime      = RGBA{0.5, 1, 0, 1}
	ColorCyan      = RGBA{0, 1, 1, 1}
	ColorMagenta   = RGBA{1, 0, 1, 1}
	ColorDarkGray  = RGBA{0.66, 0.66, 0.66, 1}
	ColorLightGray = RGBA{0.83, 0.83, 0.83, 1}
	ColorGold      = RGBA{1, 0.9, 0.2, 1}
)

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = ClampF(a, 0, 1)
	return c
}

// Lerp blends from c toward o by t in [0, 1], alpha included.
func (c RGBA) Lerp(o RGBA, t float64) RGBA {
	t = ClampF(t, 0, 1)
	return RGBA{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
		A: Lerp(c.A, o.A, t),
	}
}

// Over composites c onto dst with normal alpha blending. The result is opaque
// when dst is opaque.
func (c RGBA) Over(dst RGBA) RGBA {
	a := ClampF(c.A, 0, 1)
	return RGBA{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: a + dst.A*(1-a),
	}
}

// Add composites c onto dst additively; channels saturate at 1.
func (c RGBA) Add(dst RGBA) RGBA {
	a := ClampF(c.A, 0, 1)
	return RGBA{
		R: math.Min(1, dst.R+c.R*a),
		G: math.Min(1, dst.G+c.G*a),
		B: math.Min(1, dst.B+c.B*a),
		A: math.Min(1, dst.A+a),
	}
}

// Bytes returns the 8-bit channels.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}
