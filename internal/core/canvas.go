package core

// BlendMode selects how subsequent draw calls composite onto the target.
type BlendMode int

const (
	BlendAlpha    BlendMode = iota // Normal alpha blending
	BlendAdditive                  // Colors add up and saturate (glow)
)

// TextSize is a coarse font size class. Backends map it to their own faces.
type TextSize int

const (
	TextSmall  TextSize = iota // Floating labels
	TextMedium                 // HUD and prompts
	TextLarge                  // Screen titles
)

// Canvas is the renderer contract of the game. Coordinates are playfield units
// (the configured window size), not pixels or cells. Implementations only
// consume finished frame state and never feed back into the simulation.
type Canvas interface {
	// Clear fills the whole target with a color.
	Clear(c RGBA)
	// FillCircle draws a filled disc.
	FillCircle(center Vec2, r float64, c RGBA)
	// StrokePolygon draws a closed outline through pts.
	StrokePolygon(pts []Vec2, width float64, c RGBA)
	// FillRect draws a filled rectangle.
	FillRect(r RectF, c RGBA)
	// Line draws a segment.
	Line(a, b Vec2, width float64, c RGBA)
	// Text draws a string; centered text is centered on pos, otherwise pos is top-left.
	Text(pos Vec2, size TextSize, s string, c RGBA, centered bool)
	// SetBlend switches the blend mode for subsequent calls.
	SetBlend(mode BlendMode)
}
