package model

import "math"

// Round1 rounds a value to one decimal place. All Token coordinates and font
// sizes are stored at this precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom (page coordinate system, Y increases upward)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// CenterX returns the horizontal center
func (b BBox) CenterX() float64 {
	return b.X + b.Width/2
}

// ContainsX checks if an X coordinate falls within the box horizontally
func (b BBox) ContainsX(x float64) bool {
	return x >= b.Left() && x < b.Right()
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Matrix represents a 2D affine transformation matrix in the conventional
// [a b c d e f] layout used by page description text transforms.
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// TranslateX returns the horizontal translation component (the glyph-run origin X).
func (m Matrix) TranslateX() float64 {
	return m[4]
}

// TranslateY returns the vertical translation component (the glyph-run origin Y).
func (m Matrix) TranslateY() float64 {
	return m[5]
}

// VerticalScale returns the magnitude of the vertical scaling component.
// For text transforms this is the rendered font size.
func (m Matrix) VerticalScale() float64 {
	return math.Hypot(m[1], m[3])
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
