package minimap

import "math"

// GridPoint is one point in minimap grid units, produced by the caller every
// update and never retained past the draw call.
type GridPoint struct {
	X, Y  float64
	Color Color
}

// Point returns an uncolored point. Wall points and users that want the
// default color use it.
func Point(x, y float64) GridPoint {
	return GridPoint{X: x, Y: y, Color: NoColor}
}

// ColoredPoint returns a point with an explicit color.
func ColoredPoint(x, y float64, c Color) GridPoint {
	return GridPoint{X: x, Y: y, Color: c}
}

// Cell returns the surface cell that owns the point.
func (p GridPoint) Cell() (int, int) {
	return cell(p.X, p.Y)
}

func cell(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// Grid converts world units to grid units. CellSize is the number of world
// units covered by one minimap pixel: larger cells give a coarser but cheaper
// minimap.
type Grid struct {
	CellSize float64
}

// ToGrid divides world coordinates down to grid coordinates.
func (g Grid) ToGrid(wx, wy float64) (float64, float64) {
	return wx / g.CellSize, wy / g.CellSize
}

// SurfaceSize returns the surface dimensions covering a world of the given
// size: ceil(world / cell) on each axis, never below 1.
func (g Grid) SurfaceSize(worldWidth, worldHeight float64) (int, int) {
	w := int(math.Ceil(worldWidth / g.CellSize))
	h := int(math.Ceil(worldHeight / g.CellSize))
	return max(w, 1), max(h, 1)
}

// Point converts a world position to a colored grid point.
func (g Grid) Point(wx, wy float64, c Color) GridPoint {
	x, y := g.ToGrid(wx, wy)
	return GridPoint{X: x, Y: y, Color: c}
}
