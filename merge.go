package main

import (
	"log"
)

// MergeOverlappingObstacles drops obstacles that lie fully inside another one.
// Rasterising only needs the outermost regions.
func MergeOverlappingObstacles(obstacles []Obstacle) []Obstacle {
	if len(obstacles) <= 1 {
		return obstacles
	}

	index := NewSpatialIndex(obstacles)
	filtered := make([]Obstacle, 0, len(obstacles))
	for id, obstacle := range obstacles {
		if !index.hasContainer(id, obstacle) {
			filtered = append(filtered, obstacle)
		}
	}

	log.Printf("   Obstacles after removing contained: %d (removed %d)\n",
		len(filtered), len(obstacles)-len(filtered))

	return filtered
}

// hasContainer reports whether another indexed obstacle covers obstacle.
// Of identical obstacles only the last one has no container.
func (si *SpatialIndex) hasContainer(id int, obstacle Obstacle) bool {
	for _, entry := range si.queryEntries(obstacle.Polygon.Bound()) {
		if entry.ID == id || !entry.Obstacle.ContainsObstacle(obstacle) {
			continue
		}
		if entry.ID > id || !obstacle.ContainsObstacle(entry.Obstacle) {
			return true
		}
	}
	return false
}
