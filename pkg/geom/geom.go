// Package geom provides the integer geometry shared by layout, hit-testing and drawing.
package geom

import "fmt"

// Coord is a position in window pixels (or cells for terminal drivers).
type Coord struct {
	X int
	Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the vector from d to c.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// AddSize returns c translated by s.
func (c Coord) AddSize(s Size) Coord {
	return Coord{X: c.X + s.W, Y: c.Y + s.H}
}

// Get returns the component along the given axis.
func (c Coord) Get(vertical bool) int {
	if vertical {
		return c.Y
	}
	return c.X
}

// Set returns c with the component along the given axis replaced.
func (c Coord) Set(vertical bool, v int) Coord {
	if vertical {
		c.Y = v
	} else {
		c.X = v
	}
	return c
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Size is a non-negative extent.
type Size struct {
	W int
	H int
}

// Get returns the extent along the given axis.
func (s Size) Get(vertical bool) int {
	if vertical {
		return s.H
	}
	return s.W
}

// Set returns s with the extent along the given axis replaced.
func (s Size) Set(vertical bool, v int) Size {
	if vertical {
		s.H = v
	} else {
		s.W = v
	}
	return s
}

// Add returns the componentwise sum.
func (s Size) Add(o Size) Size {
	return Size{W: s.W + o.W, H: s.H + o.H}
}

// Sub returns the componentwise difference, clamped at zero.
func (s Size) Sub(o Size) Size {
	return Size{W: max(s.W-o.W, 0), H: max(s.H-o.H, 0)}
}

// IsEmpty reports whether either extent is zero.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is an axis-aligned rectangle. Pos is inclusive, Pos+Size exclusive.
type Rect struct {
	Pos  Coord
	Size Size
}

// RectXYWH constructs a Rect from position and size components.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{Pos: Coord{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// End returns the exclusive bottom-right corner.
func (r Rect) End() Coord {
	return r.Pos.AddSize(r.Size)
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Pos.X && c.Y >= r.Pos.Y &&
		c.X < r.Pos.X+r.Size.W && c.Y < r.Pos.Y+r.Size.H
}

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Center returns the middle point of r, rounded toward Pos.
func (r Rect) Center() Coord {
	return Coord{X: r.Pos.X + r.Size.W/2, Y: r.Pos.Y + r.Size.H/2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Coord) Rect {
	r.Pos = r.Pos.Add(d)
	return r
}

// Shrink returns r with first removed from the top-left and last from the bottom-right.
func (r Rect) Shrink(first, last Size) Rect {
	r.Pos = r.Pos.AddSize(first)
	r.Size = r.Size.Sub(first.Add(last))
	return r
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	a, b := r.End(), o.End()
	pos := Coord{X: min(r.Pos.X, o.Pos.X), Y: min(r.Pos.Y, o.Pos.Y)}
	end := Coord{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return Rect{Pos: pos, Size: Size{W: end.X - pos.X, H: end.Y - pos.Y}}
}

// Intersect returns the overlap of r and o, or the zero Rect if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	a, b := r.End(), o.End()
	pos := Coord{X: max(r.Pos.X, o.Pos.X), Y: max(r.Pos.Y, o.Pos.Y)}
	end := Coord{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	if end.X <= pos.X || end.Y <= pos.Y {
		return Rect{}
	}
	return Rect{Pos: pos, Size: Size{W: end.X - pos.X, H: end.Y - pos.Y}}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Pos, r.Size)
}

// Direction is a layout or placement direction.
type Direction int

const (
	// Right lays out left to right.
	Right Direction = iota
	// Down lays out top to bottom.
	Down
	// Left lays out right to left.
	Left
	// Up lays out bottom to top.
	Up
)

// IsVertical reports whether d runs along the vertical axis.
func (d Direction) IsVertical() bool {
	return d == Down || d == Up
}

// IsReversed reports whether d runs against the coordinate axis.
func (d Direction) IsReversed() bool {
	return d == Left || d == Up
}

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
