// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in continuous playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// V creates a vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns a vector of the given length pointing at angle (radians).
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Circle is a disc used as the hitbox of falling obstacles.
type Circle struct {
	Center Vec2
	R      float64
}

// Triangle is the player's hitbox.
type Triangle struct {
	A, B, C Vec2
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() Vec2 {
	return Vec2{X: (t.A.X + t.B.X + t.C.X) / 3, Y: (t.A.Y + t.B.Y + t.C.Y) / 3}
}

// Points returns the vertices in order.
func (t Triangle) Points() []Vec2 {
	return []Vec2{t.A, t.B, t.C}
}

// Contains reports whether p lies inside or on the edge of the triangle.
// Works for either winding.
func (t Triangle) Contains(p Vec2) bool {
	d1 := cross(t.A, t.B, p)
	d2 := cross(t.B, t.C, p)
	d3 := cross(t.C, t.A, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// RectF is an axis-aligned rectangle in continuous coordinates.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// ClosestPoint returns the point of r closest to p.
func (r RectF) ClosestPoint(p Vec2) Vec2 {
	return Vec2{X: ClampF(p.X, r.X, r.Right()), Y: ClampF(p.Y, r.Y, r.Bottom())}
}

// IntersectsRect reports whether the circle overlaps the rectangle.
// Touching counts as overlap.
func (c Circle) IntersectsRect(r RectF) bool {
	q := r.ClosestPoint(c.Center)
	d := c.Center.Sub(q)
	return d.Dot(d) <= c.R*c.R
}

// IntersectsTriangle reports whether the circle overlaps the triangle.
// True when the center is inside the triangle or any edge comes within R of the center.
func (c Circle) IntersectsTriangle(t Triangle) bool {
	if t.Contains(c.Center) {
		return true
	}
	rr := c.R * c.R
	for _, e := range [3][2]Vec2{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
		q := ClosestOnSegment(e[0], e[1], c.Center)
		d := c.Center.Sub(q)
		if d.Dot(d) <= rr {
			return true
		}
	}
	return false
}

// ClosestOnSegment returns the point on segment ab closest to p.
func ClosestOnSegment(a, b, p Vec2) Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := ClampF(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Scale(t))
}

// RegularPolygon returns the vertices of a regular polygon with its first vertex
// pointing straight up. Used to draw obstacles; collision never uses it.
func RegularPolygon(center Vec2, r float64, sides int) []Vec2 {
	if sides < 3 {
		sides = 3
	}
	pts := make([]Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		pts[i] = center.Add(FromAngle(-math.Pi/2+step*float64(i), r))
	}
	return pts
}

func cross(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
