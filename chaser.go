package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Frame is the output of one tick: the pointer's cell and the path to it
type Frame struct {
	Tick      uint64     `json:"tick"`
	Start     Position   `json:"start"`
	Target    Position   `json:"target"`
	Path      []Position `json:"path"`
	Waypoints []Position `json:"waypoints"`
	Blocked   bool       `json:"blocked"`
	State     string     `json:"state"`
	Expanded  int        `json:"expanded"`
}

// Chaser recomputes the path from a fixed start to the pointer's cell
// once per tick. The grid and start never change after NewChaser.
type Chaser struct {
	grid     *Grid
	start    Position
	cellSize int
	options  []SearchOption

	mu    sync.RWMutex
	ticks uint64
	last  Frame
}

// NewChaser validates the start cell and cell size
func NewChaser(grid *Grid, start Position, cellSize int, options ...SearchOption) (*Chaser, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}

	return &Chaser{
		grid:     grid,
		start:    start,
		cellSize: cellSize,
		options:  options,
		last:     Frame{Start: start, Target: start, Path: []Position{}, Waypoints: []Position{}, State: StateIdle.String()},
	}, nil
}

func (c *Chaser) Grid() *Grid     { return c.grid }
func (c *Chaser) Start() Position { return c.start }
func (c *Chaser) CellSize() int   { return c.cellSize }

// CellAt maps pointer pixels to a cell
func (c *Chaser) CellAt(x, y int) Position {
	return CellAt(x, y, c.cellSize, c.grid)
}

// Tick moves the target under the pointer and searches again
func (c *Chaser) Tick(ctx context.Context, x, y int) (Frame, error) {
	return c.Chase(ctx, c.CellAt(x, y))
}

// Chase searches from the start to target and stores the frame
func (c *Chaser) Chase(ctx context.Context, target Position) (Frame, error) {
	result, err := tracedSearch(ctx, c.grid, c.start, target, c.options...)
	if err != nil && !errors.Is(err, ErrUnreachable) {
		return Frame{}, err
	}

	// tracedSearch has already rejected targets outside the grid
	blocked := c.grid.blocked(target)
	frame := Frame{
		Start:     c.start,
		Target:    target,
		Path:      result.Path,
		Waypoints: SimplifyPath(result.Path),
		Blocked:   blocked,
		State:     result.State.String(),
		Expanded:  result.Expanded,
	}

	c.mu.Lock()
	c.ticks++
	frame.Tick = c.ticks
	c.last = frame
	c.mu.Unlock()

	return frame, err
}

// LastFrame returns the most recent frame
func (c *Chaser) LastFrame() Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
