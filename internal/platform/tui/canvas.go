package tui

import (
	"math"

	"github.com/vovakirdan/vector-risk/internal/core"
)

// Glyphs used by the cell rasterizer.
const (
	glyphFill   = '█'
	glyphDot    = '•'
	glyphHoriz  = '─'
	glyphVert   = '│'
	glyphRising = '╱'
	glyphFall   = '╲'
)

// CellCanvas rasterizes playfield draw commands onto a character Screen.
// The whole playfield is stretched over the screen, so one cell covers
// fieldW/width by fieldH/height units.
type CellCanvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
	blend  core.BlendMode
}

// NewCellCanvas creates a canvas that maps a fieldW x fieldH playfield onto screen.
func NewCellCanvas(screen *core.Screen, fieldW, fieldH float64) *CellCanvas {
	return &CellCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Clear blanks the screen.
func (c *CellCanvas) Clear(col core.RGBA) {
	c.screen.Clear()
	if col != core.ColorBlack {
		for y := range c.screen.Height() {
			for x := range c.screen.Width() {
				c.screen.SetCell(x, y, ' ', col)
			}
		}
	}
}

// SetBlend switches between normal and additive compositing.
func (c *CellCanvas) SetBlend(mode core.BlendMode) {
	c.blend = mode
}

// FillCircle fills every cell whose center lies in the disc.
// Discs smaller than a cell light the cell under their center.
func (c *CellCanvas) FillCircle(center core.Vec2, r float64, col core.RGBA) {
	if r <= 0 {
		return
	}
	x0, y0 := c.toCell(core.V(center.X-r, center.Y-r))
	x1, y1 := c.toCell(core.V(center.X+r, center.Y+r))

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.cellCenter(x, y).Sub(center).Len() <= r {
				c.plot(x, y, glyphFill, col)
				hit = true
			}
		}
	}
	if !hit {
		cx, cy := c.toCell(center)
		c.plot(cx, cy, glyphDot, col)
	}
}

// StrokePolygon draws each edge of the closed outline.
func (c *CellCanvas) StrokePolygon(pts []core.Vec2, width float64, col core.RGBA) {
	for i := range pts {
		c.Line(pts[i], pts[(i+1)%len(pts)], width, col)
	}
}

// FillRect fills the cells the rectangle covers. Thin rectangles still cover one column or row.
func (c *CellCanvas) FillRect(r core.RectF, col core.RGBA) {
	sx, sy := c.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(x0+1, int(math.Ceil(r.Right()*sx)))
	y1 := max(y0+1, int(math.Ceil(r.Bottom()*sy)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.plot(x, y, glyphFill, col)
		}
	}
}

// Line walks the segment in cell space and picks a glyph from its slope.
// Width is ignored; every line is one cell thick.
func (c *CellCanvas) Line(a, b core.Vec2, _ float64, col core.RGBA) {
	sx, sy := c.scale()
	ax, ay := a.X*sx, a.Y*sy
	bx, by := b.X*sx, b.Y*sy
	dx, dy := bx-ax, by-ay

	glyph := lineGlyph(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.plot(int(math.Floor(ax)), int(math.Floor(ay)), glyph, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(int(math.Floor(ax+dx*t)), int(math.Floor(ay+dy*t)), glyph, col)
	}
}

// Text writes s one rune per cell. Large text is letter-spaced.
func (c *CellCanvas) Text(pos core.Vec2, size core.TextSize, s string, col core.RGBA, centered bool) {
	runes := []rune(s)
	if size == core.TextLarge {
		spaced := make([]rune, 0, len(runes)*2)
		for i, r := range runes {
			if i > 0 {
				spaced = append(spaced, ' ')
			}
			spaced = append(spaced, r)
		}
		runes = spaced
	}

	x, y := c.toCell(pos)
	if centered {
		x -= len(runes) / 2
	}
	for i, r := range runes {
		c.plot(x+i, y, r, col)
	}
}

// plot composites col into one cell with the current blend mode.
func (c *CellCanvas) plot(x, y int, r rune, col core.RGBA) {
	if col.A <= 0 || x < 0 || y < 0 || x >= c.screen.Width() || y >= c.screen.Height() {
		return
	}
	dst := c.screen.GetCell(x, y).Color
	if c.blend == core.BlendAdditive {
		c.screen.SetCell(x, y, r, col.Add(dst))
		return
	}
	c.screen.SetCell(x, y, r, col.Over(dst))
}

func (c *CellCanvas) scale() (float64, float64) {
	return float64(c.screen.Width()) / c.fieldW, float64(c.screen.Height()) / c.fieldH
}

// toCell returns the cell containing a playfield point.
func (c *CellCanvas) toCell(p core.Vec2) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// cellCenter returns the playfield point at the middle of a cell.
func (c *CellCanvas) cellCenter(x, y int) core.Vec2 {
	return core.V(
		(float64(x)+0.5)*c.fieldW/float64(c.screen.Width()),
		(float64(y)+0.5)*c.fieldH/float64(c.screen.Height()),
	)
}

// ToField maps a terminal cell to the playfield point at its center.
func (c *CellCanvas) ToField(x, y int) core.Vec2 {
	return c.cellCenter(x, y)
}

func lineGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady*2 < adx:
		return glyphHoriz
	case adx*2 < ady:
		return glyphVert
	case (dx > 0) == (dy > 0):
		return glyphFall
	default:
		return glyphRising
	}
}
