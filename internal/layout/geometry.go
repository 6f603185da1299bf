package layout

import "math"

// Size is a width and height in device-independent pixels
type Size struct {
	Width  float32
	Height float32
}

// NewSize creates a size
func NewSize(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// IsPositive reports whether both extents are strictly positive finite numbers
func (s Size) IsPositive() bool {
	return positive(s.Width) && positive(s.Height)
}

// Ratio returns width divided by height
func (s Size) Ratio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Point is a position relative to some origin
type Point struct {
	X float32
	Y float32
}

// Add returns the point moved by other
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size
type Rect struct {
	Min  Point
	Size Size
}

// NewRect creates a rectangle from its top-left corner and extents
func NewRect(x, y, w, h float32) Rect {
	return Rect{Min: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Max returns the bottom-right corner
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.Width, Y: r.Min.Y + r.Size.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X && p.Y >= r.Min.Y && p.Y < max.Y
}

// ContainsRect reports whether inner lies fully inside r, allowing eps of slack
func (r Rect) ContainsRect(inner Rect, eps float32) bool {
	max, innerMax := r.Max(), inner.Max()
	return inner.Min.X >= r.Min.X-eps && inner.Min.Y >= r.Min.Y-eps &&
		innerMax.X <= max.X+eps && innerMax.Y <= max.Y+eps
}

// Translate returns r moved by offset
func (r Rect) Translate(offset Point) Rect {
	return Rect{Min: r.Min.Add(offset), Size: r.Size}
}

// Inset shrinks r by d on every side. The result never has negative extent.
func (r Rect) Inset(d float32) Rect {
	w := r.Size.Width - 2*d
	h := r.Size.Height - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return NewRect(r.Min.X+d, r.Min.Y+d, w, h)
}

// Insets are the gaps left around content inside a container
type Insets struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32
}

// AspectBox returns a box of the given width whose width/height equals ratio.
// A non-positive ratio yields a zero-height box.
func AspectBox(width float32, ratio float64) Size {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return Size{Width: width}
	}
	return Size{Width: width, Height: float32(float64(width) / ratio)}
}

func positive(v float32) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
