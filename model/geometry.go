package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in a y-down viewport space (the space
// a rendered text layer lives in). Top is the smaller Y value.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromXYWH creates a rectangle from an origin and a size. The size may be
// negative, as it is for a pointer drag that moves up or to the left; the
// result is always normalized so that Left <= Right and Top <= Bottom.
func RectFromXYWH(x, y, width, height float64) Rect {
	x2 := x + width
	y2 := y + height
	return Rect{
		Left:   math.Min(x, x2),
		Top:    math.Min(y, y2),
		Right:  math.Max(x, x2),
		Bottom: math.Max(y, y2),
	}
}

// RectFromPoints creates a rectangle spanning two corner points
func RectFromPoints(p1, p2 Point) Rect {
	return RectFromXYWH(p1.X, p1.Y, p2.X-p1.X, p2.Y-p1.Y)
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) / 2,
		Y: (r.Top + r.Bottom) / 2,
	}
}

// Contains checks if a point is inside the rectangle (edges included)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersects reports whether two rectangles overlap with a non-zero area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && r.Right > other.Left &&
		r.Top < other.Bottom && r.Bottom > other.Top
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Translate moves the rectangle by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Expand expands the rectangle by a margin on all sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IsFinite reports whether every edge is a finite number
func (r Rect) IsFinite() bool {
	return isFinite(r.Left) && isFinite(r.Top) && isFinite(r.Right) && isFinite(r.Bottom)
}

// Matrix represents a 2D affine transformation matrix [a b c d e f]
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// MatrixFrom converts a transform slice into a Matrix. It returns false when
// the slice has fewer than six elements or any element is not finite.
func MatrixFrom(values []float64) (Matrix, bool) {
	if len(values) < 6 {
		return Matrix{}, false
	}
	var m Matrix
	for i := 0; i < 6; i++ {
		if !isFinite(values[i]) {
			return Matrix{}, false
		}
		m[i] = values[i]
	}
	return m, true
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// FlipY returns a matrix mapping PDF page space (y up, origin bottom-left)
// onto a y-down viewport of the given page height at the given scale.
func FlipY(pageHeight, scale float64) Matrix {
	return Matrix{scale, 0, 0, -scale, 0, pageHeight * scale}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
