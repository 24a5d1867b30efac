package main

import (
	"errors"
	"fmt"
)

var (
	ErrNilGrid     = errors.New("grid is nil")
	ErrUnreachable = errors.New("target is unreachable from start")
)

// SearchState describes where a search stopped
type SearchState int

const (
	StateIdle SearchState = iota
	StateRunning
	StateFound
	StateExhausted
)

func (s SearchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("SearchState(%d)", int(s))
}

// SearchResult is the outcome of one search
type SearchResult struct {
	Path     []Position
	State    SearchState
	Expanded int // Nodes popped from the frontier
	Cost     int // G of the last node on Path
}

// SearchOptions toggles the two places where the search deviates from
// textbook A*. The zero value keeps the deviations.
type SearchOptions struct {
	UnreachableError bool
	ReopenClosed     bool
}

// SearchOption modifies SearchOptions
type SearchOption func(*SearchOptions)

// WithUnreachableError makes an exhausted search return ErrUnreachable and
// no path, instead of a path to the last expanded cell.
func WithUnreachableError() SearchOption {
	return func(options *SearchOptions) { options.UnreachableError = true }
}

// WithReopenClosed lets a strictly cheaper route move a closed cell back
// into the frontier.
func WithReopenClosed() SearchOption {
	return func(options *SearchOptions) { options.ReopenClosed = true }
}

// Heuristic is the squared Euclidean distance between two cells
func Heuristic(a, b Position) int {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return dr*dr + dc*dc
}

// score weights cost-so-far over the heuristic.
// The conversions round each product before the sum, which stops FMA fusion
// from breaking ties differently across architectures.
func score(g, h int) float64 {
	return float64(float64(g)*0.9) + float64(float64(h)*0.1)
}

// Search returns the cells from start to target inclusive.
// The path is empty when the target or start is an obstacle.
func Search(grid *Grid, start, target Position, options ...SearchOption) ([]Position, error) {
	result, err := SearchWithStats(grid, start, target, options...)
	return result.Path, err
}

// SearchWithStats runs A* on grid and reports how the search ended
func SearchWithStats(grid *Grid, start, target Position, options ...SearchOption) (SearchResult, error) {
	var searchOptions SearchOptions
	for _, option := range options {
		option(&searchOptions)
	}

	if grid == nil {
		return SearchResult{Path: []Position{}}, ErrNilGrid
	}
	if !grid.InBounds(start) {
		return SearchResult{Path: []Position{}}, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}
	if !grid.InBounds(target) {
		return SearchResult{Path: []Position{}}, fmt.Errorf("target %v: %w", target, ErrOutOfBounds)
	}
	if grid.blocked(target) || grid.blocked(start) {
		return SearchResult{Path: []Position{}, State: StateIdle}, nil
	}

	pool := newNodePool(grid)
	openSet := newOpenSet(pool)
	closedSet := newClosedSet()

	openSet.Insert(pool.add(start, 0, 0, 0, noNode))

	state := StateRunning
	current := noNode
	expanded := 0

	for openSet.Len() > 0 {
		current = openSet.ExtractMin()
		currentNode := pool.nodes[current]
		closedSet.Insert(currentNode.Pos)
		expanded++

		if currentNode.Pos == target {
			state = StateFound
			break
		}

		for _, successor := range grid.Neighbors(currentNode.Pos) {
			g := currentNode.G + 1
			h := Heuristic(successor, target)
			f := score(g, h)

			if closedSet.Contains(successor) {
				if !searchOptions.ReopenClosed {
					continue
				}
				closedID := pool.lookup(successor)
				if pool.nodes[closedID].G <= g {
					continue
				}
				closedSet.Remove(successor)
				pool.nodes[closedID].G = g
				pool.nodes[closedID].F = f
				pool.nodes[closedID].Parent = current
				openSet.Insert(closedID)
				continue
			}

			existing, queued := openSet.Get(successor)
			if !queued {
				openSet.Insert(pool.add(successor, g, h, f, current))
			} else if pool.nodes[existing].G > g {
				openSet.Replace(existing, g, f, current)
			}
		}
	}

	if state != StateFound {
		state = StateExhausted
	}

	result := SearchResult{State: state, Expanded: expanded}
	if state == StateExhausted && searchOptions.UnreachableError {
		result.Path = []Position{}
		return result, fmt.Errorf("%v -> %v: %w", start, target, ErrUnreachable)
	}

	result.Path = pool.path(current)
	result.Cost = pool.nodes[current].G
	return result, nil
}
