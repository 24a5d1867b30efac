package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// SimplifyPath reduces a cell path to its endpoints and turning points
// using Douglas-Peucker with zero tolerance
func SimplifyPath(path []Position) []Position {
	if len(path) <= 2 {
		return append([]Position{}, path...)
	}

	line := make(orb.LineString, len(path))
	for i, p := range path {
		line[i] = orb.Point{float64(p.Col), float64(p.Row)}
	}

	simplified := simplify.DouglasPeucker(0).LineString(line)

	waypoints := make([]Position, len(simplified))
	for i, point := range simplified {
		waypoints[i] = Position{Row: int(point.Y()), Col: int(point.X())}
	}
	return waypoints
}
