package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/vector-risk/internal/core"
)

// dotRadius is the radius of the glow sprite in pixels.
const dotRadius = 32

var (
	dotImg   *ebiten.Image
	pixelImg *ebiten.Image
	face     = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	dotImg = ebiten.NewImage(dotRadius*2, dotRadius*2)
	vector.DrawFilledCircle(dotImg, dotRadius, dotRadius, dotRadius, color.White, true)

	pixelImg = ebiten.NewImage(1, 1)
	pixelImg.Fill(color.White)
}

// Canvas draws on an ebiten image. The layout size equals the playfield,
// so playfield units are pixels.
//
// Additive mode applies to discs and rectangles, which are drawn as tinted
// sprites with ebiten.BlendLighter. Lines and text always blend normally.
type Canvas struct {
	dst   *ebiten.Image
	blend core.BlendMode
}

// NewCanvas creates a canvas for one frame.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Clear fills the frame.
func (c *Canvas) Clear(col core.RGBA) {
	c.dst.Fill(toColor(col))
}

// SetBlend switches between normal and additive compositing.
func (c *Canvas) SetBlend(mode core.BlendMode) {
	c.blend = mode
}

// FillCircle draws a filled disc.
func (c *Canvas) FillCircle(center core.Vec2, r float64, col core.RGBA) {
	if r <= 0 || col.A <= 0 {
		return
	}
	if c.blend != core.BlendAdditive {
		vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(r), toColor(col), true)
		return
	}

	s := r / dotRadius
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-dotRadius, -dotRadius)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(toColor(col))
	op.Blend = ebiten.BlendLighter
	c.dst.DrawImage(dotImg, op)
}

// StrokePolygon draws a closed outline.
func (c *Canvas) StrokePolygon(pts []core.Vec2, width float64, col core.RGBA) {
	for i := range pts {
		c.Line(pts[i], pts[(i+1)%len(pts)], width, col)
	}
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(r core.RectF, col core.RGBA) {
	if r.W <= 0 || r.H <= 0 || col.A <= 0 {
		return
	}
	if c.blend != core.BlendAdditive {
		vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toColor(col), false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(toColor(col))
	op.Blend = ebiten.BlendLighter
	c.dst.DrawImage(pixelImg, op)
}

// Line draws an antialiased segment.
func (c *Canvas) Line(a, b core.Vec2, width float64, col core.RGBA) {
	if col.A <= 0 {
		return
	}
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), toColor(col), true)
}

// Text draws s with the 7x13 bitmap face scaled to the size class.
func (c *Canvas) Text(pos core.Vec2, size core.TextSize, s string, col core.RGBA, centered bool) {
	if s == "" || col.A <= 0 {
		return
	}
	scale := textScale(size)

	op := &text.DrawOptions{}
	if centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(toColor(col))
	text.Draw(c.dst, s, face, op)
}

// textScale maps a size class to a multiple of the 13px face.
func textScale(size core.TextSize) float64 {
	switch size {
	case core.TextLarge:
		return 4
	case core.TextMedium:
		return 2
	default:
		return 1.5
	}
}

// toColor converts to a straight-alpha 8-bit color.
func toColor(c core.RGBA) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
