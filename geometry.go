package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Obstacle is a blocked region in pixel coordinates (x right, y down)
type Obstacle struct {
	Polygon orb.Polygon
}

// CellAt maps a pixel to the cell containing it, clamped into the grid
func CellAt(x, y, cellSize int, grid *Grid) Position {
	pos := Position{Row: floorDiv(y, cellSize), Col: floorDiv(x, cellSize)}
	pos.Row = clamp(pos.Row, 0, grid.Height()-1)
	pos.Col = clamp(pos.Col, 0, grid.Width()-1)
	return pos
}

// CellBounds returns the pixel rectangle covered by a cell
func CellBounds(p Position, cellSize int) orb.Bound {
	minX, minY := float64(p.Col*cellSize), float64(p.Row*cellSize)
	return orb.Bound{
		Min: orb.Point{minX, minY},
		Max: orb.Point{minX + float64(cellSize), minY + float64(cellSize)},
	}
}

// CellCenter returns the pixel at the middle of a cell
func CellCenter(p Position, cellSize int) orb.Point {
	return CellBounds(p, cellSize).Center()
}

// Contains reports whether point lies inside the obstacle
func (o Obstacle) Contains(point orb.Point) bool {
	return planar.PolygonContains(o.Polygon, point)
}

// ContainsObstacle reports whether every vertex of other's outer ring lies inside o
// and none of o's holes overlaps other's bounds
func (o Obstacle) ContainsObstacle(other Obstacle) bool {
	if len(o.Polygon) == 0 || len(other.Polygon) == 0 || len(other.Polygon[0]) == 0 {
		return false
	}
	bound := other.Polygon.Bound()
	if !o.Polygon.Bound().Contains(bound.Min) || !o.Polygon.Bound().Contains(bound.Max) {
		return false
	}
	for _, hole := range o.Polygon[1:] {
		if hole.Bound().Intersects(bound) {
			return false
		}
	}
	for _, vertex := range other.Polygon[0] {
		if !o.Contains(vertex) {
			return false
		}
	}
	return true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
