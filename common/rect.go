package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in pixel space.
type Rect struct {
	X, Y, W, H int
}

// Cell addresses one grid square by column and row.
type Cell struct {
	X, Y int
}

// IsZero reports whether c is the (0,0) "unset" destination sentinel.
func (c Cell) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Origin returns the pixel position of the cell's top-left corner.
func (c Cell) Origin() (int, int) {
	return c.X * TileSize, c.Y * TileSize
}

// Cell returns the grid cell containing the rect's top-left corner.
func (r Rect) Cell() Cell {
	return Cell{X: r.X / TileSize, Y: r.Y / TileSize}
}

// BB converts r into a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{
		L: float64(r.X),
		B: float64(r.Y),
		R: float64(r.X + r.W),
		T: float64(r.Y + r.H),
	}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps is the strict AABB test: both axis intervals must intersect with
// positive length. Shared edges do not count.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if !a.BB().Intersects(b.BB()) {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Touches reports whether any corner of r, or its centre, lies inside wall
// (edges inclusive). It is cheaper and looser than Overlaps and can miss a
// thin wall crossed in a single large step.
func Touches(r, wall Rect) bool {
	if wall.Empty() {
		return false
	}
	bb := wall.BB()
	x0, y0 := float64(r.X), float64(r.Y)
	x1, y1 := float64(r.X+r.W), float64(r.Y+r.H)
	points := [5]cp.Vector{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
		{X: float64(r.X + r.W/2), Y: float64(r.Y + r.H/2)},
	}
	for _, p := range points {
		if bb.ContainsVect(p) {
			return true
		}
	}
	return false
}
