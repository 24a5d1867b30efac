package main

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// ObstacleEntry wraps an obstacle for R-tree storage
type ObstacleEntry struct {
	ID       int // position in the slice given to NewSpatialIndex
	Obstacle Obstacle
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *ObstacleEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// SpatialIndex manages obstacle queries by region
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex creates a new spatial index
func NewSpatialIndex(obstacles []Obstacle) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, obstacle := range obstacles {
		bbox, err := boundToRect(obstacle.Polygon.Bound())
		if err == nil {
			tree.Insert(&ObstacleEntry{ID: i, Obstacle: obstacle, BBox: bbox})
		}
	}

	return &SpatialIndex{tree: tree}
}

// Size returns the number of indexed obstacles
func (si *SpatialIndex) Size() int {
	return si.tree.Size()
}

// QueryRegion returns obstacles whose bounding box intersects bound
func (si *SpatialIndex) QueryRegion(bound orb.Bound) []Obstacle {
	entries := si.queryEntries(bound)
	obstacles := make([]Obstacle, 0, len(entries))
	for _, entry := range entries {
		obstacles = append(obstacles, entry.Obstacle)
	}
	return obstacles
}

func (si *SpatialIndex) queryEntries(bound orb.Bound) []*ObstacleEntry {
	bbox, err := boundToRect(bound)
	if err != nil {
		return nil
	}

	results := si.tree.SearchIntersect(bbox)
	entries := make([]*ObstacleEntry, 0, len(results))
	for _, item := range results {
		entries = append(entries, item.(*ObstacleEntry))
	}
	return entries
}

// IsCellBlocked reports whether the center of cell lies inside any obstacle
func (si *SpatialIndex) IsCellBlocked(cell Position, cellSize int) bool {
	center := CellCenter(cell, cellSize)
	for _, obstacle := range si.QueryRegion(CellBounds(cell, cellSize)) {
		if obstacle.Contains(center) {
			return true
		}
	}
	return false
}

// Rasterize marks each cell of a rows x cols grid blocked by the index
func (si *SpatialIndex) Rasterize(rows, cols, cellSize int) [][]int {
	matrix := make([][]int, rows)
	for row := range matrix {
		matrix[row] = make([]int, cols)
		for col := range matrix[row] {
			if si.IsCellBlocked(Position{Row: row, Col: col}, cellSize) {
				matrix[row][col] = 1
			}
		}
	}
	return matrix
}

// boundToRect converts an orb bound into an rtreego rectangle.
// Degenerate bounds (zero width or height) are rejected by rtreego.
func boundToRect(bound orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{bound.Min.X(), bound.Min.Y()},
		[]float64{bound.Max.X() - bound.Min.X(), bound.Max.Y() - bound.Min.Y()},
	)
}
