package main

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid      = errors.New("grid has no cells")
	ErrNotRectangular = errors.New("obstacle matrix is not rectangular")
	ErrInvalidCell    = errors.New("obstacle matrix cell must be 0 or 1")
	ErrOutOfBounds    = errors.New("position outside grid bounds")
)

// Position identifies a grid cell by row and column
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a fixed-size map of passable and blocked cells.
// It is never modified after NewGrid returns.
type Grid struct {
	height, width int
	obstacles     []bool
}

// successorOffsets fixes the neighbor order: +row, -row, +col, -col.
// Search tie-breaking depends on it.
var successorOffsets = [4]Position{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// NewGrid builds a grid from a rectangular matrix where 1 marks an obstacle
func NewGrid(matrix [][]int) (*Grid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	height, width := len(matrix), len(matrix[0])
	grid := &Grid{
		height:    height,
		width:     width,
		obstacles: make([]bool, height*width),
	}

	for row, cells := range matrix {
		if len(cells) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", row, len(cells), width, ErrNotRectangular)
		}
		for col, value := range cells {
			switch value {
			case 0:
			case 1:
				grid.obstacles[row*width+col] = true
			default:
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", row, col, value, ErrInvalidCell)
			}
		}
	}

	return grid, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// InBounds reports whether p lies inside [0,Height) x [0,Width)
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// IsObstacle reports whether the cell at p blocks movement
func (g *Grid) IsObstacle(p Position) (bool, error) {
	if !g.InBounds(p) {
		return false, fmt.Errorf("%v in %dx%d grid: %w", p, g.height, g.width, ErrOutOfBounds)
	}
	return g.blocked(p), nil
}

func (g *Grid) blocked(p Position) bool {
	return g.obstacles[g.cellIndex(p)]
}

func (g *Grid) cellIndex(p Position) int {
	return p.Row*g.width + p.Col
}

// Neighbors returns the in-bounds, passable cells one step away from p
func (g *Grid) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, len(successorOffsets))
	for _, offset := range successorOffsets {
		next := Position{Row: p.Row + offset.Row, Col: p.Col + offset.Col}
		if g.InBounds(next) && !g.blocked(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// Matrix returns a copy of the obstacle layout as 0/1 rows
func (g *Grid) Matrix() [][]int {
	matrix := make([][]int, g.height)
	for row := range matrix {
		matrix[row] = make([]int, g.width)
		for col := range matrix[row] {
			if g.obstacles[row*g.width+col] {
				matrix[row][col] = 1
			}
		}
	}
	return matrix
}

// PassableCount returns the number of cells that are not obstacles
func (g *Grid) PassableCount() int {
	count := 0
	for _, blocked := range g.obstacles {
		if !blocked {
			count++
		}
	}
	return count
}
